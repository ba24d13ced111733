package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	t.Parallel()
	d, err := Embedded()
	require.NoError(t, err)
	// Subset of the answer list; see DESIGN.md.
	require.Equal(t, 424, d.Len())
	for _, w := range []string{"cigar", "thumb", "flown", "pesky", "crane", "trace"} {
		require.True(t, d.Contains(w), w)
	}
	for i := 0; i < d.Len(); i++ {
		require.Len(t, d.At(i), Length)
	}
	again, err := Embedded()
	require.NoError(t, err)
	require.Same(t, d, again)
}

func TestParse(t *testing.T) {
	t.Parallel()
	d, err := Parse(strings.NewReader("# header\nCrane\n\n  slate \ntrace\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"crane", "slate", "trace"}, d.Words())
	i, ok := d.Index("TRACE")
	require.True(t, ok)
	require.Equal(t, 2, i)
	require.False(t, d.Contains("audio"))
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	type testCase struct {
		name  string
		input string
		err   error
	}
	cases := []testCase{
		{"short", "crane\ncran\n", ErrMalformed},
		{"long", "cranes\n", ErrMalformed},
		{"digits", "cr4ne\n", ErrMalformed},
		{"duplicate", "crane\nCRANE\n", ErrDuplicate},
		{"empty", "# nothing\n\n", ErrEmpty},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(c.input))
			require.ErrorIs(t, err, c.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("fjord\ngucks\n"), 0o644))
	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestWordsIsACopy(t *testing.T) {
	t.Parallel()
	d := MustNew("fjord", "gucks")
	w := d.Words()
	w[0] = "zzzzz"
	require.Equal(t, "fjord", d.At(0))
}
