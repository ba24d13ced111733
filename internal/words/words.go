// internal/words/words.go
//
// Dictionary provider for the solver.
//
// Responsibilities:
//   - Load the ordered word list from the embedded asset or from a file.
//   - Reject malformed entries (wrong length, non a–z, duplicates). A bad
//     dictionary is a startup failure, never a session-level condition.
//   - Expose immutable, order-preserving lookups (At, Index, Contains).
//
// Format:
//   One word per line. Blank lines and lines starting with '#' are skipped.
//   Words are trimmed and lowercased before validation.
//
// Constraints:
//   • All words have exactly Length letters.
//   • A Dictionary is never mutated after construction and may be shared
//     freely between solver sessions.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle-solver/assets"
)

// Length is the fixed number of letters in every word.
const Length = 5

var (
	// ErrMalformed is returned for entries that are not Length letters a–z.
	ErrMalformed = errors.New("words: malformed entry")
	// ErrDuplicate is returned when the same word appears twice.
	ErrDuplicate = errors.New("words: duplicate entry")
	// ErrEmpty is returned when a source yields no words at all.
	ErrEmpty = errors.New("words: dictionary is empty")
)

// Dictionary is an ordered, immutable set of equal-length words.
type Dictionary struct {
	list  []string
	index map[string]int
}

var (
	embeddedOnce sync.Once
	embedded     *Dictionary
	embeddedErr  error
)

// Embedded returns the dictionary compiled into the binary.
// It is parsed once; later calls share the same value.
func Embedded() (*Dictionary, error) {
	embeddedOnce.Do(func() {
		f, err := assets.OpenWords()
		if err != nil {
			embeddedErr = fmt.Errorf("open embedded %s: %w", assets.WordsFile, err)
			return
		}
		defer f.Close()
		embedded, embeddedErr = Parse(f)
		if embeddedErr != nil {
			embeddedErr = fmt.Errorf("embedded %s: %w", assets.WordsFile, embeddedErr)
		}
	})
	return embedded, embeddedErr
}

// Load reads the dictionary at path, or the embedded one when path is empty.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Embedded()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*Dictionary, error) {
	var list []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != Length || !isAlpha(w) {
			return nil, fmt.Errorf("line %d %q: %w", line, w, ErrMalformed)
		}
		list = append(list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(list)
}

// New builds a dictionary from an in-memory list, preserving its order.
func New(list []string) (*Dictionary, error) {
	d := &Dictionary{
		list:  make([]string, 0, len(list)),
		index: make(map[string]int, len(list)),
	}
	for _, w := range list {
		w = strings.ToLower(w)
		if len(w) != Length || !isAlpha(w) {
			return nil, fmt.Errorf("%q: %w", w, ErrMalformed)
		}
		if _, dup := d.index[w]; dup {
			return nil, fmt.Errorf("%q: %w", w, ErrDuplicate)
		}
		d.index[w] = len(d.list)
		d.list = append(d.list, w)
	}
	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// MustNew is New for static lists; it panics on error.
func MustNew(list ...string) *Dictionary {
	d, err := New(list)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// At returns the i-th word in dictionary order.
func (d *Dictionary) At(i int) string { return d.list[i] }

// Words returns a copy of the word list in dictionary order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.list...)
}

// Index reports the dictionary position of w (case-insensitive).
func (d *Dictionary) Index(w string) (int, bool) {
	i, ok := d.index[strings.ToLower(w)]
	return i, ok
}

// Contains reports whether w is in the dictionary (case-insensitive).
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[strings.ToLower(w)]
	return ok
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
