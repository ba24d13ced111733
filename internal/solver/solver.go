// Package solver narrows a dictionary to the words consistent with the
// feedback received so far and proposes the next guess.
//
// A Solver is one game session. It starts with the whole dictionary as its
// candidate pool, emits a guess, and on every later call consumes the
// feedback for that guess, removes every inconsistent candidate and emits
// the next guess: an entry of the opening sequence while one remains,
// otherwise the best-ranked surviving candidate.
//
// Sessions are not safe for concurrent use. The Dictionary, Tables and
// Ranking they read are immutable and may be shared between sessions.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

var (
	// ErrInvalidFeedback classifies every rejected feedback. The session
	// is left untouched and the caller may retry with corrected input.
	ErrInvalidFeedback = game.ErrInvalidFeedback
	// ErrFeedbackRequired is returned when feedback is missing after the
	// first guess. It matches ErrInvalidFeedback with errors.Is.
	ErrFeedbackRequired = fmt.Errorf("%w: feedback for the previous guess is required", ErrInvalidFeedback)
	// ErrUnexpectedFeedback is returned when feedback is supplied before
	// any guess was made. It matches ErrInvalidFeedback with errors.Is.
	ErrUnexpectedFeedback = fmt.Errorf("%w: no guess has been made yet", ErrInvalidFeedback)
	// ErrExhausted is returned once no candidate is consistent with the
	// feedback. The session cannot continue.
	ErrExhausted = errors.New("ran out of candidates to pick from")
	// ErrSessionOver is returned for calls after the game was solved.
	ErrSessionOver = errors.New("session already solved")
	// ErrUnknownOpener is returned by New for opening words outside the dictionary.
	ErrUnknownOpener = errors.New("opening word not in dictionary")
)

// DefaultOpeners is the opening sequence used by the command line driver.
var DefaultOpeners = []string{"cigar", "thumb", "flown", "pesky"}

// State is the position of a session in its lifecycle.
type State int

const (
	NotStarted State = iota
	AwaitingFeedback
	Solved
	Exhausted
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case AwaitingFeedback:
		return "awaiting-feedback"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Turn is one guess and the feedback it received.
type Turn struct {
	Guess    string
	Feedback game.Feedback
}

// Solver is a single elimination session.
type Solver struct {
	dict    *words.Dictionary
	tables  *Tables
	ranking *Ranking
	openers []string
	first   Strategy

	state   State
	pool    []string // rank order
	last    string
	guesses int
	history []Turn
}

// Option configures a Solver.
type Option func(*Solver)

// WithOpeners sets the fixed opening sequence. An empty list disables it.
func WithOpeners(openers []string) Option {
	return func(s *Solver) {
		s.openers = make([]string, 0, len(openers))
		for _, w := range openers {
			s.openers = append(s.openers, strings.ToLower(strings.TrimSpace(w)))
		}
	}
}

// WithFirstGuess sets the strategy used for the first guess when there is
// no opening sequence.
func WithFirstGuess(st Strategy) Option {
	return func(s *Solver) { s.first = st }
}

// WithTables replaces the static letter tables.
func WithTables(t *Tables) Option {
	return func(s *Solver) { s.tables = t }
}

// WithRanking reuses a precomputed ranking of the same dictionary.
func WithRanking(r *Ranking) Option {
	return func(s *Solver) { s.ranking = r }
}

// New starts a session over dict.
func New(dict *words.Dictionary, opts ...Option) (*Solver, error) {
	s := &Solver{dict: dict, first: StrategyFrequency}
	for _, o := range opts {
		o(s)
	}
	if s.tables == nil {
		s.tables = DefaultTables()
	}
	if s.ranking == nil {
		s.ranking = NewRanking(dict, s.tables)
	} else if s.ranking.dict != dict {
		return nil, errors.New("ranking was built for a different dictionary")
	}
	for _, w := range s.openers {
		if !dict.Contains(w) {
			return nil, fmt.Errorf("%q: %w", w, ErrUnknownOpener)
		}
	}
	if len(s.openers) == 0 {
		w, err := opening(s.first, s.ranking, s.tables)
		if err != nil {
			return nil, err
		}
		s.openers = []string{w}
	}
	s.pool = s.ranking.Words()
	return s, nil
}

// NextGuess consumes the G/Y/W feedback for the previous guess and returns
// the next one. feedback must be empty on the first call and present on
// every later call.
//
// Rejected feedback returns an error matching ErrInvalidFeedback and leaves
// the session unchanged. When all-match feedback is received the solved
// word is returned and the session ends.
func (s *Solver) NextGuess(feedback string) (string, error) {
	switch s.state {
	case NotStarted:
		if strings.TrimSpace(feedback) != "" {
			return "", ErrUnexpectedFeedback
		}
		return s.emit(), nil
	case Solved:
		return "", ErrSessionOver
	case Exhausted:
		return "", ErrExhausted
	}
	if strings.TrimSpace(feedback) == "" {
		return "", ErrFeedbackRequired
	}
	fb, err := game.ParseFeedback(feedback)
	if err != nil {
		return "", err
	}
	return s.Apply(fb)
}

// Apply is NextGuess for already parsed feedback.
func (s *Solver) Apply(fb game.Feedback) (string, error) {
	switch s.state {
	case NotStarted:
		return "", ErrUnexpectedFeedback
	case Solved:
		return "", ErrSessionOver
	case Exhausted:
		return "", ErrExhausted
	}
	if !fb.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidFeedback, fb)
	}

	c := deriveConstraints(s.last, fb)
	s.pool = c.apply(s.pool)
	s.history = append(s.history, Turn{Guess: s.last, Feedback: fb})

	if len(s.pool) == 0 {
		s.state = Exhausted
		log.Debug().Str("guess", s.last).Stringer("feedback", fb).Msg("no candidates left")
		return "", fmt.Errorf("after %s=%s: %w", s.last, fb, ErrExhausted)
	}
	if fb.Solved() {
		s.state = Solved
		return s.last, nil
	}
	return s.emit(), nil
}

// emit picks the next guess and records it as the one awaiting feedback.
func (s *Solver) emit() string {
	if s.guesses < len(s.openers) {
		s.last = s.openers[s.guesses]
	} else {
		s.last = s.pool[0]
	}
	s.guesses++
	s.state = AwaitingFeedback
	return s.last
}

// CandidateCount returns the number of words still consistent with the
// feedback received.
func (s *Solver) CandidateCount() int { return len(s.pool) }

// Candidates returns the surviving words, best ranked first.
func (s *Solver) Candidates() []string {
	return append([]string(nil), s.pool...)
}

// Ranking returns the ranking the session selects from. It can be passed
// to WithRanking to share it with other sessions over the same dictionary.
func (s *Solver) Ranking() *Ranking { return s.ranking }

// State returns the session's lifecycle state.
func (s *Solver) State() State { return s.state }

// Guesses returns how many guesses the session has emitted.
func (s *Solver) Guesses() int { return s.guesses }

// History returns the guesses that received feedback, oldest first.
func (s *Solver) History() []Turn {
	return append([]Turn(nil), s.history...)
}
