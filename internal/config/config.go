// internal/config/config.go
//
// Runtime configuration from the environment.
//
// Environment variables (a .env file is loaded by main when present):
//   LOG_LEVEL=info                     zerolog level name
//   WORDS_FILE=/path/to/words.txt      replacement dictionary; embedded list when unset
//   SOLVER_OPENERS=cigar,thumb,...     opening sequence; set to "" or "none" to disable
//   SOLVER_FIRST_GUESS=frequency       frequency | vowels | common, used without openers
//   BENCH_EPOCH=2021-06-19             first simulated day
//   BENCH_DAYS=0                       days to replay; 0 replays one day per word
//   BENCH_SCORER=containment           oracle feedback rule: containment | standard
//   ANALYSE_LETTERS=etaionshru         letters every analysis result must cover

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle-solver/internal/analysis"
	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Config is the resolved configuration.
type Config struct {
	LogLevel       zerolog.Level
	WordsFile      string
	Openers        []string
	FirstGuess     solver.Strategy
	Epoch          time.Time
	Days           int
	Scorer         game.Scorer
	AnalyseLetters string
}

// Load reads the environment, applying defaults.
func Load() (Config, error) {
	var c Config
	var err error

	if c.LogLevel, err = zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return c, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	c.WordsFile = os.Getenv("WORDS_FILE")
	c.Openers = ParseOpeners(getEnv("SOLVER_OPENERS", strings.Join(solver.DefaultOpeners, ",")))
	if c.FirstGuess, err = solver.ParseStrategy(os.Getenv("SOLVER_FIRST_GUESS")); err != nil {
		return c, fmt.Errorf("SOLVER_FIRST_GUESS: %w", err)
	}
	if c.Epoch, err = daily.ParseDateKey(getEnv("BENCH_EPOCH", daily.DateKey(daily.DefaultEpoch))); err != nil {
		return c, fmt.Errorf("BENCH_EPOCH: %w", err)
	}
	if c.Days, err = strconv.Atoi(getEnv("BENCH_DAYS", "0")); err != nil || c.Days < 0 {
		return c, fmt.Errorf("BENCH_DAYS: %q is not a day count", os.Getenv("BENCH_DAYS"))
	}
	if c.Scorer, err = game.ParseScorer(os.Getenv("BENCH_SCORER")); err != nil {
		return c, fmt.Errorf("BENCH_SCORER: %w", err)
	}
	c.AnalyseLetters = getEnv("ANALYSE_LETTERS", analysis.DefaultLetters)
	return c, nil
}

// SolverOptions turns the solver settings into session options.
func (c Config) SolverOptions() []solver.Option {
	return []solver.Option{
		solver.WithOpeners(c.Openers),
		solver.WithFirstGuess(c.FirstGuess),
	}
}

// ParseOpeners splits a comma separated opening sequence.
// "none" or an empty string yields no openers.
func ParseOpeners(s string) []string {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return nil
	}
	var out []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// getEnv returns the value of k, or def when k is unset. A variable set to
// the empty string is returned as-is.
func getEnv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}
