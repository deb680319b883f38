package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sivalab/sival/window"
)

func newWindowCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "window <file>",
		Short: "Sliding min/avg/max over a measurement series",
		Long: `Reads newline-separated float samples (latencies, voltages) and
prints min/avg/max for every window of k consecutive samples.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("k") {
				k = cfg.GetInt(cfgKeyWindowK)
			}

			series, err := readSeries(args[0])
			if err != nil {
				return err
			}
			logger.Debug("computing windows",
				zap.Int("samples", len(series)), zap.Int("k", k))

			stats, err := window.Stats(series, k)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, s := range stats {
				fmt.Fprintf(w, "[%d] %g/%g/%g\n", i, s.Min, s.Avg, s.Max)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&k, "k", defaultWindowK, "window size (default from config, else 3)")
	return cmd
}

// readSeries loads newline-separated floats, skipping blank lines.
func readSeries(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	var series []float64
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad sample %q", line, text)
		}
		series = append(series, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	return series, nil
}
