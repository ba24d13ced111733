package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// t.Setenv forbids t.Parallel, so these tests run sequentially.

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "WORDS_FILE", "SOLVER_OPENERS", "SOLVER_FIRST_GUESS", "BENCH_EPOCH", "BENCH_DAYS", "BENCH_SCORER", "ANALYSE_LETTERS"} {
		unset(t, k)
	}
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, c.LogLevel)
	require.Empty(t, c.WordsFile)
	require.Equal(t, solver.DefaultOpeners, c.Openers)
	require.Equal(t, solver.StrategyFrequency, c.FirstGuess)
	require.Equal(t, time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC), c.Epoch)
	require.Zero(t, c.Days)
	require.Equal(t, "WYYGG", c.Scorer("geese", "those").String())
	require.Equal(t, "etaionshru", c.AnalyseLetters)
	require.Len(t, c.SolverOptions(), 2)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("SOLVER_OPENERS", "")
	t.Setenv("SOLVER_FIRST_GUESS", "vowels")
	t.Setenv("BENCH_EPOCH", "2022-01-01")
	t.Setenv("BENCH_DAYS", "30")
	t.Setenv("BENCH_SCORER", "standard")
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, c.LogLevel)
	require.Equal(t, "/tmp/words.txt", c.WordsFile)
	require.Empty(t, c.Openers)
	require.Equal(t, solver.StrategyVowels, c.FirstGuess)
	require.Equal(t, 2022, c.Epoch.Year())
	require.Equal(t, 30, c.Days)
	require.Equal(t, "WWWGG", c.Scorer("geese", "those").String())
}

func TestLoadRejects(t *testing.T) {
	for k, v := range map[string]string{
		"LOG_LEVEL":          "loud",
		"SOLVER_FIRST_GUESS": "entropy",
		"BENCH_EPOCH":        "yesterday",
		"BENCH_DAYS":         "-1",
		"BENCH_SCORER":       "strict",
	} {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load()
			require.ErrorContains(t, err, k)
		})
	}
}

func TestParseOpeners(t *testing.T) {
	require.Equal(t, []string{"crane", "slate"}, ParseOpeners(" CRANE, slate ,,"))
	require.Nil(t, ParseOpeners("none"))
	require.Nil(t, ParseOpeners(""))
}

func unset(t *testing.T, k string) {
	t.Helper()
	t.Setenv(k, "")
	require.NoError(t, os.Unsetenv(k))
}
