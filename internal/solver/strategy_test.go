package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/words"
)

func TestRankingScores(t *testing.T) {
	t.Parallel()
	r := NewRanking(words.MustNew("crane", "trace"), DefaultTables())
	require.Equal(t, 199, r.Score("crane"))
	require.Equal(t, 201, r.Score("TRACE"))
	require.Equal(t, "trace", r.Top())
	require.Equal(t, []string{"trace", "crane"}, r.Words())
	require.Zero(t, r.Score("fjord"))
}

func TestRankingSplitsRepeatedLetters(t *testing.T) {
	t.Parallel()
	// Each e contributes 1/3 of its positional count, which truncates to 0.
	r := NewRanking(words.MustNew("geese"), DefaultTables())
	require.Equal(t, 13+56+56+30+56, r.Score("geese"))
}

func TestRankingTiesKeepDictionaryOrder(t *testing.T) {
	t.Parallel()
	a := NewRanking(words.MustNew("stool", "tools"), DefaultTables())
	require.Equal(t, a.Score("stool"), a.Score("tools"))
	require.Equal(t, "stool", a.Top())

	b := NewRanking(words.MustNew("tools", "stool"), DefaultTables())
	require.Equal(t, "tools", b.Top())
}

func TestOpeningStrategies(t *testing.T) {
	t.Parallel()
	dict := words.MustNew("fjord", "adobe", "house", "those", "trace")
	tables := DefaultTables()
	r := NewRanking(dict, tables)

	w, err := opening(StrategyFrequency, r, tables)
	require.NoError(t, err)
	require.Equal(t, r.Top(), w)

	// adobe and house both hold three vowels; adobe comes first.
	w, err = opening(StrategyVowels, r, tables)
	require.NoError(t, err)
	require.Equal(t, "adobe", w)

	// those is built only from e, t, a, i, o, n, s, h, r.
	w, err = opening(StrategyCommon, r, tables)
	require.NoError(t, err)
	require.Equal(t, "those", w)

	none := words.MustNew("fjord", "gucks")
	_, err = opening(StrategyCommon, NewRanking(none, tables), tables)
	require.ErrorIs(t, err, ErrNoOpening)
	_, err = New(none, WithFirstGuess(StrategyCommon))
	require.ErrorIs(t, err, ErrNoOpening)
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()
	for name, want := range map[string]Strategy{
		"":          StrategyFrequency,
		"frequency": StrategyFrequency,
		" Vowels ":  StrategyVowels,
		"COMMON":    StrategyCommon,
	} {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
	_, err := ParseStrategy("entropy")
	require.Error(t, err)
	require.Equal(t, "vowels", StrategyVowels.String())
}
