package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/de-lang-nlp/internal/config"
	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
)

// field is one labelled line of text output.
type field struct {
	label string
	value string
}

// render writes v in the configured output format. Text output prints
// fields as aligned label/value lines.
func (a *app) render(w io.Writer, v any, fields ...field) error {
	switch a.cfg.Output.Format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encode json")
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}
	for _, f := range fields {
		pad := width - len(f.label)
		pterm.Fprintln(w, pterm.LightCyan(f.label+":")+strings.Repeat(" ", pad+1)+pterm.White(f.value))
	}
	return nil
}
