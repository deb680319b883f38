// Package cli implements the sival command-line interface: trace
// analysis, log grep and sliding-window statistics over measurement
// files.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config keys and their built-in defaults.
const (
	cfgKeyGrepPattern = "grep.pattern"
	cfgKeyWindowK     = "window.k"

	defaultGrepPattern = "ERROR"
	defaultWindowK     = 3
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	verbose    bool
}

var (
	flags rootFlags

	// cfg is loaded once per invocation by initRuntime.
	cfg *viper.Viper

	// logger starts as a no-op so commands can log unconditionally.
	logger = zap.NewNop()
)

// NewRootCmd creates the top-level "sival" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sival",
		Short: "Silicon validation toolkit",
		Long: `sival bundles the small tools of silicon bring-up: PCIe LTSSM
trace analysis, log grep with context, and sliding-window statistics
over measurement series.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: initRuntime,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: sival.yaml in the working directory)")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newLTSSMCmd())
	root.AddCommand(newGrepCmd())
	root.AddCommand(newWindowCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initRuntime builds the logger and loads configuration before any
// subcommand runs.
func initRuntime(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	zcfg := zap.NewProductionConfig()
	if flags.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	cfg, err = loadConfig(flags.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

// loadConfig reads the optional YAML config and wires SIVAL_* environment
// overrides. A missing default config file is not an error; a missing
// --config file is.
func loadConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyGrepPattern, defaultGrepPattern)
	v.SetDefault(cfgKeyWindowK, defaultWindowK)

	v.SetEnvPrefix("SIVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("sival")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	logger.Debug("config loaded", zap.String("file", v.ConfigFileUsed()))
	return v, nil
}
