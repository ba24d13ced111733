package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/analysis"
)

type analyseCommand struct {
	Letters string `long:"letters" description:"letters every set must cover; overrides ANALYSE_LETTERS"`
	Size    int    `long:"size" description:"words per set (default 4)"`
	Limit   int    `long:"limit" description:"stop after this many sets (0 = all)"`

	app *app
}

func (c *analyseCommand) Execute([]string) error {
	return c.run(os.Stdout)
}

func (c *analyseCommand) run(out io.Writer) error {
	letters := c.app.cfg.AnalyseLetters
	if c.Letters != "" {
		letters = c.Letters
	}
	size := c.Size
	if size <= 0 {
		size = analysis.DefaultSize
	}
	fmt.Fprintln(out, "Corpus analysis mode.")
	printed := 0
	n, err := analysis.Scan(c.app.dict, letters, size, func(set []string) bool {
		fmt.Fprintf(out, "Perfect set! %s\n", strings.Join(set, ", "))
		printed++
		return c.Limit <= 0 || printed < c.Limit
	})
	if err != nil {
		return err
	}
	log.Info().Int("sets", n).Str("letters", letters).Msg("analysis finished")
	fmt.Fprintln(out, "Finished.")
	return nil
}
