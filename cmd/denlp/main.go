// Command denlp exposes the German number, time, date and normalization
// routines on the command line.
//
//	denlp pronounce 42.5
//	denlp datetime "morgen um 3 uhr" -o json
//	denlp normalize "gibt's noch die zwei äpfel"
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pterm/pterm"

	"github.com/az-ai-labs/de-lang-nlp/internal/errors"
	"github.com/az-ai-labs/de-lang-nlp/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		pterm.Error.Println(err.Error())
		for _, hint := range errors.GetAllHints(err) {
			pterm.Info.Println(hint)
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
