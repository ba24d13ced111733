package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/words"
)

func TestScan(t *testing.T) {
	t.Parallel()
	dict := words.MustNew("fjord", "gucks", "nymph", "vibex", "waltz", "sissy", "crane")

	var sets [][]string
	n, err := Scan(dict, "", 4, func(s []string) bool {
		sets = append(sets, s)
		return true
	})
	require.NoError(t, err)
	// Any four of the five disjoint words; crane shares letters with them.
	require.Equal(t, 5, n)
	require.Len(t, sets, 5)
	require.Equal(t, []string{"fjord", "gucks", "nymph", "vibex"}, sets[0])
	for _, s := range sets {
		require.NotContains(t, s, "sissy")
		require.NotContains(t, s, "crane")
	}
}

func TestScanRequiredLetters(t *testing.T) {
	t.Parallel()
	dict := words.MustNew("fjord", "gucks", "nymph", "vibex", "waltz")
	var sets [][]string
	n, err := Scan(dict, "zx", 4, func(s []string) bool {
		sets = append(sets, s)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	for _, s := range sets {
		require.Contains(t, s, "vibex")
		require.Contains(t, s, "waltz")
	}
}

func TestScanStopsEarly(t *testing.T) {
	t.Parallel()
	dict := words.MustNew("fjord", "gucks", "nymph", "vibex", "waltz")
	calls := 0
	n, err := Scan(dict, "", 2, func([]string) bool {
		calls++
		return calls < 3
	})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, calls)
}

func TestScanRejects(t *testing.T) {
	t.Parallel()
	dict := words.MustNew("fjord")
	_, err := Scan(dict, "e1", 4, func([]string) bool { return true })
	require.Error(t, err)
	_, err = Scan(dict, "", 6, func([]string) bool { return true })
	require.Error(t, err)
}
