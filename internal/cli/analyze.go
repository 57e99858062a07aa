package cli

import (
	"bufio"
	"io"

	"github.com/denismitr/pcset/analysis"
	"github.com/denismitr/pcset/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAnalyzeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [set...]",
		Short: "Compute normal order, prime form and interval-class vector",
		Long: `Analyze every set given as an argument, or every line of standard input when
no arguments are given. Lines may carry a label ("major: 0 4 7"); blank lines
and lines starting with # are skipped.

Examples:
  pcset analyze "10 4 9 6" 0148
  pcset analyze --format json "{0, 4, 7}"
  cat sets.txt | pcset analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			inputs := args
			if len(inputs) == 0 {
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			log.Debug("analyzing sets",
				zap.Int("inputs", len(inputs)),
				zap.Int("concurrency", cfg.Concurrency))

			reports, err := analysis.Analyze(cmd.Context(), inputs, analysis.WithConcurrency(cfg.Concurrency))
			if err != nil {
				log.Error("analysis failed", zap.Error(err))
				return err
			}

			log.Debug("analysis finished", zap.Int("reports", len(reports)))
			return render.Reports(cmd.OutOrStdout(), cfg.Format, reports)
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
