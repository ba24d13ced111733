// Package analysis scans the dictionary for sets of words that together
// use only distinct letters and cover a required letter set. Such sets
// make good opening sequences.
package analysis

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// DefaultLetters is the letter set every result must cover.
const DefaultLetters = "etaionshru"

// DefaultSize is the number of words in a result.
const DefaultSize = 4

type entry struct {
	word string
	mask uint32
}

// Scan calls fn with every combination of size dictionary words, in
// dictionary order, whose letters are pairwise distinct and include every
// letter of required. Scan stops early when fn returns false and reports
// how many sets it delivered.
func Scan(dict *words.Dictionary, required string, size int, fn func([]string) bool) (int, error) {
	need, err := maskOf(strings.ToLower(required))
	if err != nil {
		return 0, err
	}
	if size <= 0 || size*words.Length > 26 {
		return 0, fmt.Errorf("size %d: sets must fit in 26 distinct letters", size)
	}

	var pool []entry
	for i := 0; i < dict.Len(); i++ {
		w := dict.At(i)
		m, err := maskOf(w)
		if err != nil {
			continue // repeated letters
		}
		pool = append(pool, entry{word: w, mask: m})
	}

	found := 0
	picked := make([]string, 0, size)
	var walk func(start int, used uint32) bool
	walk = func(start int, used uint32) bool {
		if len(picked) == size {
			if used&need != need {
				return true
			}
			found++
			return fn(append([]string(nil), picked...))
		}
		for i := start; i <= len(pool)-(size-len(picked)); i++ {
			e := pool[i]
			if used&e.mask != 0 {
				continue
			}
			picked = append(picked, e.word)
			more := walk(i+1, used|e.mask)
			picked = picked[:len(picked)-1]
			if !more {
				return false
			}
		}
		return true
	}
	walk(0, 0)
	return found, nil
}

// maskOf returns the letter bitmask of s, or an error if a letter repeats
// or falls outside a–z.
func maskOf(s string) (uint32, error) {
	var m uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%q: %q is not a letter", s, c)
		}
		bit := uint32(1) << (c - 'a')
		if m&bit != 0 {
			return 0, fmt.Errorf("%q: %q repeats", s, c)
		}
		m |= bit
	}
	return m, nil
}
