// Package bench replays the answer of every simulated day through a fresh
// solver session, using a game oracle in place of a human, and reports how
// many guesses each day took.
package bench

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/maps"

	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// MaxGuesses bounds a single replay. A solver that has not found the
// answer by then is counted as failed.
const MaxGuesses = 100

// Options configures a benchmark run.
type Options struct {
	Epoch    time.Time       // first simulated day; daily.DefaultEpoch when zero
	Days     int             // days to replay; the dictionary size when <= 0
	Solver   []solver.Option // applied to every session
	Scorer   game.Scorer     // oracle feedback rule; game.Score when nil
	Progress io.Writer       // progress bar output; none when nil
}

// Outcome is the result of one simulated day.
type Outcome struct {
	Day     time.Time
	Answer  string
	Guesses int
	Err     error
}

// Report aggregates the outcomes of a run.
type Report struct {
	Days      int
	Total     int         // guesses across solved days
	Histogram map[int]int // guesses → days
	Failures  []Outcome
}

// Play solves answer with a new session and returns the guess count.
// score produces the oracle's feedback; nil selects game.Score.
func Play(dict *words.Dictionary, answer string, score game.Scorer, opts ...solver.Option) (int, error) {
	g, err := game.New(dict, answer, MaxGuesses)
	if err != nil {
		return 0, err
	}
	if score != nil {
		g.WithScorer(score)
	}
	s, err := solver.New(dict, opts...)
	if err != nil {
		return 0, err
	}

	guess, err := s.NextGuess("")
	for err == nil {
		fb, state, aerr := g.ApplyGuess(guess)
		if aerr != nil {
			return len(g.Guesses), aerr
		}
		switch state {
		case "won":
			return len(g.Guesses), nil
		case "lost":
			return len(g.Guesses), fmt.Errorf("no answer after %d guesses", len(g.Guesses))
		}
		guess, err = s.Apply(fb)
	}
	return len(g.Guesses), err
}

// Run replays o.Days days starting at o.Epoch. Failed days are recorded in
// the report rather than aborting the run; the error is reserved for
// configuration problems that would fail every day.
func Run(dict *words.Dictionary, o Options) (*Report, error) {
	if o.Epoch.IsZero() {
		o.Epoch = daily.DefaultEpoch
	}
	if o.Days <= 0 {
		o.Days = dict.Len()
	}
	// Surface bad solver options once, up front, and share the ranking.
	probe, err := solver.New(dict, o.Solver...)
	if err != nil {
		return nil, err
	}
	opts := append(slices.Clip(o.Solver), solver.WithRanking(probe.Ranking()))

	out := o.Progress
	if out == nil {
		out = io.Discard
	}
	bar := progressbar.NewOptions(o.Days,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("replaying days"),
		progressbar.OptionShowCount(),
	)

	r := &Report{Days: o.Days, Histogram: make(map[int]int)}
	for i := 0; i < o.Days; i++ {
		day := daily.Day(o.Epoch, i)
		answer := dict.At(daily.WordIndex(o.Epoch, day, dict.Len()))
		n, err := Play(dict, answer, o.Scorer, opts...)
		if err != nil {
			log.Warn().Err(err).Str("day", daily.DateKey(day)).Str("answer", answer).Msg("replay failed")
			r.Failures = append(r.Failures, Outcome{Day: day, Answer: answer, Guesses: n, Err: err})
		} else {
			log.Debug().Str("day", daily.DateKey(day)).Str("answer", answer).Int("guesses", n).Msg("replayed")
			r.Total += n
			r.Histogram[n]++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return r, nil
}

// Solved returns the number of days the solver finished.
func (r *Report) Solved() int { return r.Days - len(r.Failures) }

// Average returns the mean guess count over solved days.
func (r *Report) Average() float64 {
	if r.Solved() == 0 {
		return 0
	}
	return float64(r.Total) / float64(r.Solved())
}

// Legal returns how many days were solved within the real game's limit.
func (r *Report) Legal() int {
	n := 0
	for guesses, days := range r.Histogram {
		if guesses <= game.DefaultMaxGuesses {
			n += days
		}
	}
	return n
}

// Write prints the report: average, frequency table by descending day
// count, and the number of legal results.
func (r *Report) Write(w io.Writer) error {
	keys := maps.Keys(r.Histogram)
	slices.SortFunc(keys, func(a, b int) int {
		if r.Histogram[a] != r.Histogram[b] {
			return r.Histogram[b] - r.Histogram[a]
		}
		return a - b
	})

	if _, err := fmt.Fprintf(w, "Finished %d days. Average number of guesses was %.2f\n", r.Days, r.Average()); err != nil {
		return err
	}
	fmt.Fprintln(w, "Frequency table (descending.)")
	for _, k := range keys {
		fmt.Fprintf(w, "[%d, %d]\n", k, r.Histogram[k])
	}
	fmt.Fprintf(w, "Legal Results: %d\n", r.Legal())
	for _, f := range r.Failures {
		fmt.Fprintf(w, "Failed %s (%s): %v\n", daily.DateKey(f.Day), f.Answer, f.Err)
	}
	return nil
}
