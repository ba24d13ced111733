package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWordIndex(t *testing.T) {
	t.Parallel()
	e := DefaultEpoch
	require.Equal(t, 1, WordIndex(e, e, 10))
	require.Equal(t, 2, WordIndex(e, Day(e, 1), 10))
	require.Equal(t, 0, WordIndex(e, Day(e, 9), 10))
	// A partial day counts as a whole one.
	require.Equal(t, 2, WordIndex(e, e.Add(3*time.Hour), 10))
	// Days before the epoch count the same distance.
	require.Equal(t, 3, WordIndex(e, Day(e, -2), 10))
	require.Equal(t, 0, WordIndex(e, e, 0))
}

func TestDateKey(t *testing.T) {
	t.Parallel()
	require.Equal(t, "2021-06-19", DateKey(DefaultEpoch))
	d, err := ParseDateKey("2022-01-01")
	require.NoError(t, err)
	require.Equal(t, 196, DaysSince(DefaultEpoch, d))
	_, err = ParseDateKey("01/01/2022")
	require.Error(t, err)
}
