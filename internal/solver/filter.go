package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// misplaced is a letter known to be in the answer but not at pos.
type misplaced struct {
	letter byte
	pos    int
}

// constraints is what one guess and its feedback say about the answer.
type constraints struct {
	pinned  [words.Length]byte // 0 where the position is free
	present []misplaced
	absent  []byte // letters with no match/present mark in the same guess
	// excluded holds absent marks on letters that are matched or present
	// elsewhere in the guess: the letter is only ruled out at that index.
	excluded []misplaced
}

// deriveConstraints partitions the letters of guess against fb.
func deriveConstraints(guess string, fb game.Feedback) constraints {
	var c constraints
	var known [26]bool
	for i, m := range fb {
		switch m {
		case game.MarkMatch:
			c.pinned[i] = guess[i]
			known[guess[i]-'a'] = true
		case game.MarkPresent:
			c.present = append(c.present, misplaced{letter: guess[i], pos: i})
			known[guess[i]-'a'] = true
		}
	}
	var listed [26]bool
	for i, m := range fb {
		l := guess[i] - 'a'
		switch {
		case m != game.MarkAbsent:
		case known[l]:
			c.excluded = append(c.excluded, misplaced{letter: guess[i], pos: i})
		case !listed[l]:
			c.absent = append(c.absent, guess[i])
			listed[l] = true
		}
	}
	return c
}

func (c *constraints) matchesPinned(w string) bool {
	for i, l := range c.pinned {
		if l != 0 && w[i] != l {
			return false
		}
	}
	return true
}

func (c *constraints) holdsPresent(w string) bool {
	for _, p := range c.present {
		if w[p.pos] == p.letter || !containsByte(w, p.letter) {
			return false
		}
	}
	return true
}

func (c *constraints) avoidsAbsent(w string) bool {
	for _, l := range c.absent {
		if containsByte(w, l) {
			return false
		}
	}
	for _, p := range c.excluded {
		if w[p.pos] == p.letter {
			return false
		}
	}
	return true
}

// apply filters pool in place, pins first, then present letters, then
// absent letters, and returns the surviving prefix.
func (c *constraints) apply(pool []string) []string {
	before := len(pool)
	pool = keep(pool, c.matchesPinned)
	pinned := len(pool)
	pool = keep(pool, c.holdsPresent)
	present := len(pool)
	pool = keep(pool, c.avoidsAbsent)
	log.Debug().
		Int("before", before).
		Int("pinned", pinned).
		Int("present", present).
		Int("absent", len(pool)).
		Msg("filtered candidates")
	return pool
}

// keep retains the words for which ok is true, reusing the backing array.
func keep(pool []string, ok func(string) bool) []string {
	out := pool[:0]
	for _, w := range pool {
		if ok(w) {
			out = append(out, w)
		}
	}
	return out
}

func containsByte(w string, b byte) bool {
	for i := 0; i < len(w); i++ {
		if w[i] == b {
			return true
		}
	}
	return false
}
