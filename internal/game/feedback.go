package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// ErrInvalidFeedback is returned for feedback that is not exactly
// words.Length symbols from {G, Y, W}.
var ErrInvalidFeedback = errors.New("invalid feedback")

// ParseFeedback reads a G/Y/W code, case-insensitively.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return fb, fmt.Errorf("%w: empty", ErrInvalidFeedback)
	}
	if len(s) != words.Length {
		return fb, fmt.Errorf("%w: %q has %d symbols, want %d", ErrInvalidFeedback, s, len(s), words.Length)
	}
	for i := 0; i < len(s); i++ {
		m := Mark(s[i])
		if !m.Valid() {
			return fb, fmt.Errorf("%w: %q at position %d is not one of G, Y, W", ErrInvalidFeedback, s[i], i+1)
		}
		fb[i] = m
	}
	return fb, nil
}

// MustParseFeedback is ParseFeedback for literals; it panics on error.
func MustParseFeedback(s string) Feedback {
	fb, err := ParseFeedback(s)
	if err != nil {
		panic(err)
	}
	return fb
}

// String renders the feedback in its G/Y/W wire form.
func (f Feedback) String() string {
	b := make([]byte, len(f))
	for i, m := range f {
		if m == 0 {
			b[i] = '?'
			continue
		}
		b[i] = byte(m)
	}
	return string(b)
}

// Valid reports whether every position holds a feedback symbol.
func (f Feedback) Valid() bool {
	for _, m := range f {
		if !m.Valid() {
			return false
		}
	}
	return true
}

// Solved reports whether every position is a match.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != MarkMatch {
			return false
		}
	}
	return true
}

// Score compares guess against answer with the containment rule:
// a match when the letters agree, present when the answer holds the
// letter anywhere, absent otherwise. Repeated letters are not budgeted,
// so a guess with two copies of a letter the answer holds once can get
// two non-absent marks.
func Score(guess, answer string) Feedback {
	var fb Feedback
	for i := range fb {
		switch {
		case guess[i] == answer[i]:
			fb[i] = MarkMatch
		case strings.IndexByte(answer, guess[i]) >= 0:
			fb[i] = MarkPresent
		default:
			fb[i] = MarkAbsent
		}
	}
	return fb
}

// ScoreStandard implements the two-pass scoring used by the real game.
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non-matched) answer letters.
//
// Pass 2:
//   - For each non-matched guess letter: if there is remaining count for
//     that letter, mark present and decrement the count; otherwise absent.
//
// Score and ScoreStandard only differ on guesses with repeated letters.
func ScoreStandard(guess, answer string) Feedback {
	var fb Feedback
	var counts [26]int

	for i := range fb {
		if guess[i] == answer[i] {
			fb[i] = MarkMatch
		} else {
			counts[answer[i]-'a']++
		}
	}
	for i := range fb {
		if fb[i] == MarkMatch {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			fb[i] = MarkPresent
			counts[j]--
		} else {
			fb[i] = MarkAbsent
		}
	}
	return fb
}
