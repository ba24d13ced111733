// main.go
//
// Command line driver for the solver.
//
// Subcommands:
//   play     interactive console loop (default when no subcommand is given)
//   bench    replay one answer per simulated day and report guess counts
//   analyse  search the dictionary for disjoint-letter opening sets
//
// Configuration comes from the environment (optionally a .env file), see
// internal/config; global flags override it.

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/words"
)

type globalOptions struct {
	LogLevel string `long:"log-level" description:"zerolog level; overrides LOG_LEVEL"`
	Words    string `long:"words" description:"dictionary file, one word per line; overrides WORDS_FILE"`
}

// app carries what every subcommand needs once the environment is loaded.
type app struct {
	cfg  config.Config
	dict *words.Dictionary
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var opts globalOptions
	a := &app{}
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := a.init(opts); err != nil {
			return err
		}
		return cmd.Execute(args)
	}
	mustAdd(parser.AddCommand("play", "Solve a game interactively",
		"Proposes guesses and asks for the G/Y/W response to each one.", &playCommand{app: a}))
	mustAdd(parser.AddCommand("bench", "Replay every simulated day",
		"Plays one answer per day from the epoch and reports how many guesses each took.", &benchCommand{app: a}))
	mustAdd(parser.AddCommand("analyse", "Find disjoint-letter opening sets",
		"Lists sets of words with distinct letters covering the required letters.", &analyseCommand{app: a}))

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"play"}
	}
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Println(ferr.Message)
			return
		}
		log.Fatal().Err(err).Msg("wordle-solver")
	}
}

// init resolves configuration, applies flag overrides and loads the
// dictionary. A dictionary that fails to load is fatal for every command.
func (a *app) init(opts globalOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		if cfg.LogLevel, err = zerolog.ParseLevel(opts.LogLevel); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if opts.Words != "" {
		cfg.WordsFile = opts.Words
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	log.Debug().Int("words", dict.Len()).Str("file", cfg.WordsFile).Msg("dictionary loaded")

	a.cfg, a.dict = cfg, dict
	return nil
}

func mustAdd(_ *flags.Command, err error) {
	if err != nil {
		panic(err)
	}
}
