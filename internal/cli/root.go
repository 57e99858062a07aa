package cli

import (
	"fmt"

	"github.com/denismitr/pcset/internal/config"
	"github.com/denismitr/pcset/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options are the global flags shared by every subcommand.
type options struct {
	cfgFile     string
	format      string
	concurrency int
	debug       bool
}

// NewRootCommand builds the pcset command tree.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pcset",
		Short: "Pitch-class set analysis",
		Long: `pcset computes the descriptors of atonal set theory for pitch-class sets:
normal order, prime form and interval-class vector, plus set algebra and the
T_n / I_n operators.

Sets are written as separated integers ("0 4 7", "{0, 4, 7}") or in compact
notation with one character per pitch class ("047", "01te").`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default $HOME/.pcset.yaml)")
	pf.StringVarP(&opts.format, "format", "f", config.FormatTable, "output format: table, json or yaml")
	pf.IntVar(&opts.concurrency, "concurrency", 4, "number of sets analyzed in parallel")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newDemoCommand(),
		newAnalyzeCommand(opts),
		newTransformCommand(opts),
		newCompareCommand(opts),
	)

	return rootCmd
}

// load resolves the configuration for a run, flags set on the command line
// taking precedence over file and environment values.
func (o *options) load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(o.cfgFile)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logger.NewLogger(cfg.Debug), nil
}
