package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sivalab/sival/loggrep"
)

func newGrepCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "grep <file>",
		Short: "Find log lines with one line of context",
		Long: `Scans a log file for lines containing a pattern and prints each
match with the line before and after, the way a failure signature is
extracted from a console log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				pattern = cfg.GetString(cfgKeyGrepPattern)
			}
			logger.Debug("scanning log",
				zap.String("file", args[0]), zap.String("pattern", pattern))

			matches, err := loggrep.File(args[0], pattern)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, m := range matches {
				if i > 0 {
					fmt.Fprintln(w, "--")
				}
				if m.HasPrev {
					fmt.Fprintf(w, "  %d: %s\n", m.LineNo-1, m.Prev)
				}
				fmt.Fprintf(w, "> %d: %s\n", m.LineNo, m.Line)
				if m.HasNext {
					fmt.Fprintf(w, "  %d: %s\n", m.LineNo+1, m.Next)
				}
			}
			fmt.Fprintf(w, "%d matches\n", len(matches))
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", `substring to search for (default from config, else "ERROR")`)
	return cmd
}
