package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/de-lang-nlp/internal/config"
	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
	"github.com/az-ai-labs/de-lang-nlp/internal/logger"
)

var timeNow = time.Now

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	output     string
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "denlp",
		Short: "German number, time and date language tools",
		Long: `denlp formats numbers and clock times as German text and extracts
numbers and dates from German utterances.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (DENLP_* prefix, .env is loaded)
3. Config file (--config, ./denlp.toml or ~/.config/denlp/denlp.toml)
4. Default values`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a denlp.toml config file")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		a.pronounceCmd(),
		a.niceNumberCmd(),
		a.niceTimeCmd(),
		a.numberCmd(),
		a.fractionCmd(),
		a.datetimeCmd(),
		a.normalizeCmd(),
		a.batchCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads configuration, applies global flag overrides and starts the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output.Format = a.output
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return errors.WithHint(errors.Wrap(err, "flags"), "see `denlp --help` for accepted values")
	}
	a.cfg = cfg

	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	logger.Named("cli").Debugw("config loaded",
		logger.FieldConfig, a.configPath,
		"command", cmd.Name(),
		"output", cfg.Output.Format,
	)
	return nil
}
