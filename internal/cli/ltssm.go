package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sivalab/sival/ltssm"
)

func newLTSSMCmd() *cobra.Command {
	var samplePath string

	cmd := &cobra.Command{
		Use:   "ltssm [trace.csv]",
		Short: "Analyze a PCIe LTSSM trace",
		Long: `Parses a CSV trace of LTSSM states and reports first time to L0,
retrain count, longest Recovery dwell, per-state dwell times and link
speed changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if samplePath != "" {
				return writeSampleTrace(samplePath)
			}
			if len(args) != 1 {
				return fmt.Errorf("expected a trace file, or --sample to generate one")
			}

			logger.Debug("parsing trace", zap.String("file", args[0]))
			a, err := ltssm.ParseFile(args[0])
			if err != nil {
				return err
			}
			return a.Format(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&samplePath, "sample", "", "write the built-in sample trace to this path and exit")
	return cmd
}

func writeSampleTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample trace: %w", err)
	}
	if err := ltssm.WriteSample(f); err != nil {
		f.Close()
		return fmt.Errorf("write sample trace: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close sample trace: %w", err)
	}
	logger.Info("sample trace written", zap.String("path", path))
	return nil
}
