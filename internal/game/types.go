// internal/game/types.go
//
// Core type definitions shared by the solver and any feedback source.
// Defines:
//   - Mark: per-letter result of a guess (match/present/absent).
//   - Feedback: one Mark per letter position, serialized as G/Y/W.
//   - Game: an oracle session holding a hidden answer.

package game

import (
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
// The byte value is the wire symbol:
//   - 'G': letter is correct and in the correct position.
//   - 'Y': letter exists in the answer but in a different position.
//   - 'W': letter does not exist in the answer.
type Mark byte

const (
	MarkMatch   Mark = 'G'
	MarkPresent Mark = 'Y'
	MarkAbsent  Mark = 'W'
)

// Valid reports whether m is one of the three feedback symbols.
func (m Mark) Valid() bool {
	return m == MarkMatch || m == MarkPresent || m == MarkAbsent
}

// Feedback is the per-position result of comparing a guess with an answer.
type Feedback [words.Length]Mark

// Game holds the state of a single oracle game.
type Game struct {
	Answer     string   // The hidden word (always lowercase).
	MaxGuesses int      // Guesses allowed before the game is lost.
	Guesses    []string // Guesses made so far (lowercased).
	Finished   bool     // True once the game is over (won or lost).
	Won        bool     // True if the game was finished with a win.

	dict  *words.Dictionary
	score Scorer
}
