package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
	"github.com/az-ai-labs/de-lang-nlp/internal/fraction"
	"github.com/az-ai-labs/de-lang-nlp/numtext"
	"github.com/az-ai-labs/de-lang-nlp/timetext"
)

type formatOutput struct {
	Input  string `json:"input" yaml:"input"`
	Speech bool   `json:"speech" yaml:"speech"`
	Text   string `json:"text" yaml:"text"`
}

func (a *app) pronounceCmd() *cobra.Command {
	var places int
	cmd := &cobra.Command{
		Use:   "pronounce <number>",
		Short: "Spell out a number in German",
		Example: `  denlp pronounce 42.5
  denlp pronounce -- -3,25 --places 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumberArg(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("places") {
				places = a.cfg.Format.Places
			}
			text := numtext.PronounceNumber(n, places)
			return a.render(cmd.OutOrStdout(),
				formatOutput{Input: args[0], Speech: true, Text: text},
				field{"number", args[0]},
				field{"spoken", text},
			)
		},
	}
	cmd.Flags().IntVar(&places, "places", numtext.DefaultPlaces, "decimal places to read")
	return cmd
}

func (a *app) niceNumberCmd() *cobra.Command {
	var speech bool
	cmd := &cobra.Command{
		Use:   "nice-number <number>",
		Short: "Render a number as a whole part plus fraction",
		Example: `  denlp nice-number 4.5
  denlp nice-number 4.5 --speech`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumberArg(args[0])
			if err != nil {
				return err
			}
			text := numtext.NiceNumber(n, speech, a.cfg.Format.Denominators)
			return a.render(cmd.OutOrStdout(),
				formatOutput{Input: args[0], Speech: speech, Text: text},
				field{"number", args[0]},
				field{"nice", text},
			)
		},
	}
	cmd.Flags().BoolVar(&speech, "speech", false, "spoken form instead of digits")
	return cmd
}

func (a *app) niceTimeCmd() *cobra.Command {
	var speech, use24Hour, useAmPm bool
	cmd := &cobra.Command{
		Use:   "nice-time [HH:MM]",
		Short: "Render a clock time as German text",
		Long:  "Render a clock time as German text. Without an argument the current time is used.",
		Example: `  denlp nice-time 17:30
  denlp nice-time 05:30 --speech --ampm`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := timeNow().In(a.cfg.Datetime.Zone())
			if len(args) == 1 {
				clock, err := time.Parse("15:04", args[0])
				if err != nil {
					return errors.WithHint(
						errors.Wrapf(err, "parse time %q", args[0]),
						"use 24-hour HH:MM, e.g. 17:30",
					)
				}
				t = clock
			}
			if !cmd.Flags().Changed("24h") {
				use24Hour = a.cfg.Format.Use24Hour
			}
			if !cmd.Flags().Changed("ampm") {
				useAmPm = a.cfg.Format.UseAmPm
			}
			text := timetext.NiceTime(t, speech, use24Hour, useAmPm)
			input := t.Format("15:04")
			return a.render(cmd.OutOrStdout(),
				formatOutput{Input: input, Speech: speech, Text: text},
				field{"time", input},
				field{"nice", text},
			)
		},
	}
	cmd.Flags().BoolVar(&speech, "speech", false, "spoken form instead of digits")
	cmd.Flags().BoolVar(&use24Hour, "24h", false, "24-hour clock")
	cmd.Flags().BoolVar(&useAmPm, "ampm", false, "append AM/PM or the time of day")
	return cmd
}

func parseNumberArg(s string) (float64, error) {
	n, ok := fraction.ParseNumber(s)
	if !ok {
		return 0, errors.WithHint(
			errors.Newf("not a number: %q", s),
			"use digits with a point or comma, e.g. 42.5 or 42,5",
		)
	}
	return n, nil
}

// formatFloat prints v without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
