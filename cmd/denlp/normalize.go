package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/de-lang-nlp/normalize"
)

type normalizeOutput struct {
	Input          string `json:"input" yaml:"input"`
	RemoveArticles bool   `json:"remove_articles" yaml:"remove_articles"`
	Text           string `json:"text" yaml:"text"`
}

func (a *app) normalizeCmd() *cobra.Command {
	var keepArticles bool
	cmd := &cobra.Command{
		Use:     "normalize <text>",
		Short:   "Expand contractions and number words in German text",
		Example: `  denlp normalize "gibt's noch die zwei äpfel"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			remove := a.cfg.Normalize.RemoveArticles && !keepArticles
			out := normalize.Normalize(text, remove)
			return a.render(cmd.OutOrStdout(),
				normalizeOutput{Input: text, RemoveArticles: remove, Text: out},
				field{"input", text},
				field{"normalized", out},
			)
		},
	}
	cmd.Flags().BoolVar(&keepArticles, "keep-articles", false, "do not drop articles")
	return cmd
}
