package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/de-lang-nlp/datetime"
	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
	"github.com/az-ai-labs/de-lang-nlp/numtext"
)

type numberOutput struct {
	Input string  `json:"input" yaml:"input"`
	Value float64 `json:"value" yaml:"value"`
}

type datetimeOutput struct {
	Input  string          `json:"input" yaml:"input"`
	Anchor time.Time       `json:"anchor" yaml:"anchor"`
	Result datetime.Result `json:"result" yaml:"result"`
}

func (a *app) numberCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "number <text>",
		Short:   "Extract the first number from German text",
		Example: `  denlp number "ich hätte gern zwei drittel"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			v, ok := numtext.ExtractNumber(text)
			if !ok {
				return errors.WithHint(
					errors.Newf("no number found in %q", text),
					"digits, number words and fractions such as \"zwei drittel\" are recognized",
				)
			}
			return a.render(cmd.OutOrStdout(),
				numberOutput{Input: text, Value: v},
				field{"input", text},
				field{"value", formatFloat(v)},
			)
		},
	}
}

func (a *app) fractionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "fraction <word>",
		Short:   "Look up the value of a German fraction word",
		Example: `  denlp fraction viertel`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := numtext.IsFractional(args[0])
			if !ok {
				err := errors.Newf("not a fraction word: %q", args[0])
				if s := suggest(args[0], numtext.FractionWords()); len(s) > 0 {
					return errors.WithHintf(err, "did you mean %s?", strings.Join(s, ", "))
				}
				return errors.WithHint(err, "try halb, drittel, viertel ... zwölftel")
			}
			return a.render(cmd.OutOrStdout(),
				numberOutput{Input: args[0], Value: v},
				field{"word", args[0]},
				field{"value", formatFloat(v)},
			)
		},
	}
}

func (a *app) datetimeCmd() *cobra.Command {
	var anchorFlag string
	cmd := &cobra.Command{
		Use:   "datetime <text>",
		Short: "Extract a date and time from German text",
		Example: `  denlp datetime "morgen um 3 uhr"
  denlp datetime "nächsten montag" --anchor 2023-01-15T00:00:00Z`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := a.anchor(anchorFlag)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			res, err := datetime.Parse(text, anchor)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(),
				datetimeOutput{Input: text, Anchor: anchor, Result: res},
				field{"input", text},
				field{"anchor", anchor.Format(time.RFC3339)},
				field{"time", res.Time.Format(time.RFC3339)},
				field{"type", res.Type.String()},
				field{"explicit", res.Explicit.String()},
				field{"remainder", res.Remainder},
			)
		},
	}
	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "reference time in RFC 3339 (default now)")
	return cmd
}

// anchor returns the reference time for date extraction: flag when set,
// otherwise now in the configured zone.
func (a *app) anchor(flag string) (time.Time, error) {
	if flag == "" {
		return timeNow().In(a.cfg.Datetime.Zone()), nil
	}
	t, err := time.Parse(time.RFC3339, flag)
	if err != nil {
		return time.Time{}, errors.WithHint(
			errors.Wrapf(err, "parse anchor %q", flag),
			"use RFC 3339, e.g. 2023-01-15T08:00:00+01:00",
		)
	}
	return t, nil
}
