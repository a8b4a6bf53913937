package main

import (
	"bufio"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/de-lang-nlp/datetime"
	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
	"github.com/az-ai-labs/de-lang-nlp/internal/logger"
	"github.com/az-ai-labs/de-lang-nlp/normalize"
	"github.com/az-ai-labs/de-lang-nlp/numtext"
)

// maxLineBytes bounds a single stdin line in batch mode.
const maxLineBytes = 1 << 20

type batchResult struct {
	Line   int    `json:"line" yaml:"line"`
	Input  string `json:"input" yaml:"input"`
	Found  bool   `json:"found" yaml:"found"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// batchOps maps each batch operation to its per-line function.
func (a *app) batchOps(anchor time.Time) map[string]func(string) (string, bool) {
	return map[string]func(string) (string, bool){
		"number": func(line string) (string, bool) {
			v, ok := numtext.ExtractNumber(line)
			return formatFloat(v), ok
		},
		"datetime": func(line string) (string, bool) {
			res, ok := datetime.Extract(line, anchor)
			return res.Time.Format(time.RFC3339), ok
		},
		"normalize": func(line string) (string, bool) {
			return normalize.Normalize(line, a.cfg.Normalize.RemoveArticles), true
		},
	}
}

func (a *app) batchCmd() *cobra.Command {
	var anchorFlag string
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <number|datetime|normalize>",
		Short: "Run an operation on every line of standard input",
		Example: `  printf 'morgen um 3 uhr\nin zwei wochen\n' | denlp batch datetime -o json
  denlp batch normalize < utterances.txt`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"number", "datetime", "normalize"},
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := a.anchor(anchorFlag)
			if err != nil {
				return err
			}
			op, ok := a.batchOps(anchor)[args[0]]
			if !ok {
				return errors.WithHint(
					errors.Newf("unknown batch operation %q", args[0]),
					"use number, datetime or normalize",
				)
			}

			var lines []string
			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
			for sc.Scan() {
				lines = append(lines, sc.Text())
			}
			if err := sc.Err(); err != nil {
				return errors.Wrap(err, "read input")
			}

			results := make([]batchResult, len(lines))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(workers, 1))
			for i, line := range lines {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out, found := op(line)
					results[i] = batchResult{Line: i + 1, Input: line, Found: found}
					if found {
						results[i].Output = out
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return errors.Wrap(err, "batch")
			}
			logger.Named("cli").Debugw("batch done", "op", args[0], logger.FieldResult, len(results))

			fields := make([]field, len(results))
			for i, r := range results {
				fields[i] = field{label: r.Input, value: r.Output}
				if !r.Found {
					fields[i].value = "-"
				}
			}
			return a.render(cmd.OutOrStdout(), results, fields...)
		},
	}
	cmd.Flags().StringVar(&anchorFlag, "anchor", "", "reference time in RFC 3339 (default now)")
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent workers")
	return cmd
}
