// internal/game/engine.go
//
// Oracle for a single game with a known answer.
// Responsibilities:
//   - Create games over a dictionary with a fixed guess limit.
//   - Validate guesses (length, alphabetic, dictionary membership).
//   - Score guesses with the configured Scorer (containment rule by default).
//   - Track state transitions: playing → won/lost.
//
// The solver never sees the answer; drivers such as the benchmark use a
// Game to produce the feedback a human player would otherwise type in.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// DefaultMaxGuesses is the guess limit of the real game.
const DefaultMaxGuesses = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotInList    = errors.New("not in word list")
)

// Scorer produces feedback for a guess against an answer.
type Scorer func(guess, answer string) Feedback

// New constructs a game with the given answer, which must be in dict.
// maxGuesses <= 0 selects DefaultMaxGuesses.
func New(dict *words.Dictionary, answer string, maxGuesses int) (*Game, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if !dict.Contains(answer) {
		return nil, fmt.Errorf("answer %q: %w", answer, ErrNotInList)
	}
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	return &Game{
		Answer:     answer,
		MaxGuesses: maxGuesses,
		dict:       dict,
		score:      Score,
	}, nil
}

// ParseScorer maps a configuration name to a Scorer: "containment"
// (the default, also selected by "") or "standard".
func ParseScorer(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "containment":
		return Score, nil
	case "standard":
		return ScoreStandard, nil
	}
	return nil, fmt.Errorf("unknown scorer %q", name)
}

// WithScorer replaces the scoring rule, e.g. with ScoreStandard.
func (g *Game) WithScorer(s Scorer) *Game {
	g.score = s
	return g
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback, the new state string ("playing"/"won"/"lost"), or an error.
//
// State transitions:
//   - If every mark is a match → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.MaxGuesses → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Feedback, string, error) {
	if g.Finished {
		return Feedback{}, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != words.Length {
		return Feedback{}, g.State(), fmt.Errorf("%q: %w", guess, ErrInvalidGuess)
	}
	if !g.dict.Contains(guess) {
		return Feedback{}, g.State(), fmt.Errorf("%q: %w", guess, ErrNotInList)
	}

	fb := g.score(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.MaxGuesses {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}
