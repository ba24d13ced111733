package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// Strategy selects the first guess when no opening sequence is configured.
type Strategy int

const (
	// StrategyFrequency picks the top word of the Ranking. It is the only
	// strategy used for mid-game selection.
	StrategyFrequency Strategy = iota
	// StrategyVowels picks the first word holding the most distinct vowels.
	StrategyVowels
	// StrategyCommon picks the first word made only of distinct common letters.
	StrategyCommon
)

// ErrNoOpening is returned when a strategy finds no qualifying word.
var ErrNoOpening = errors.New("no word satisfies the opening strategy")

var strategyNames = map[Strategy]string{
	StrategyFrequency: "frequency",
	StrategyVowels:    "vowels",
	StrategyCommon:    "common",
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategyFrequency, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Ranking orders a dictionary by descending letter-frequency score.
// It depends only on the dictionary and the tables, so one Ranking can be
// shared read-only by every session over the same dictionary.
type Ranking struct {
	dict   *words.Dictionary
	order  []string
	scores map[string]int
}

// NewRanking scores every word of dict.
//
// For each position the frequency of each letter at that position across
// the dictionary is counted. A word scores, per letter, its positional
// frequency divided by how often the letter repeats in the word, plus the
// letter's absolute frequency. Both terms are truncated to integers.
// Ties keep dictionary order.
func NewRanking(dict *words.Dictionary, t *Tables) *Ranking {
	var positional [words.Length][26]int
	for i := 0; i < dict.Len(); i++ {
		w := dict.At(i)
		for p := 0; p < words.Length; p++ {
			positional[p][w[p]-'a']++
		}
	}

	r := &Ranking{
		dict:   dict,
		order:  dict.Words(),
		scores: make(map[string]int, dict.Len()),
	}
	for _, w := range r.order {
		sum := 0
		for p := 0; p < words.Length; p++ {
			c := w[p] - 'a'
			sum += positional[p][c]/strings.Count(w, w[p:p+1]) + int(t.Absolute[c])
		}
		r.scores[w] = sum
	}
	sort.SliceStable(r.order, func(i, j int) bool {
		return r.scores[r.order[i]] > r.scores[r.order[j]]
	})
	return r
}

// Top returns the highest scoring word.
func (r *Ranking) Top() string { return r.order[0] }

// Score returns the score of w, or 0 for words outside the dictionary.
func (r *Ranking) Score(w string) int { return r.scores[strings.ToLower(w)] }

// Words returns a copy of the dictionary in rank order.
func (r *Ranking) Words() []string {
	return append([]string(nil), r.order...)
}

// opening returns the first guess chosen by s over the whole dictionary.
func opening(s Strategy, r *Ranking, t *Tables) (string, error) {
	switch s {
	case StrategyFrequency:
		return r.Top(), nil
	case StrategyVowels:
		best, most := "", -1
		for i := 0; i < r.dict.Len(); i++ {
			w := r.dict.At(i)
			if n := containedCount(w, t.Vowels); n > most {
				best, most = w, n
			}
		}
		return best, nil
	case StrategyCommon:
		for i := 0; i < r.dict.Len(); i++ {
			w := r.dict.At(i)
			if containedCount(w, t.Common) == words.Length {
				return w, nil
			}
		}
		return "", fmt.Errorf("%s: %w", s, ErrNoOpening)
	}
	return "", fmt.Errorf("unknown strategy %s", s)
}

// containedCount counts how many of letters appear somewhere in w.
func containedCount(w string, letters []byte) int {
	n := 0
	for _, c := range letters {
		if strings.IndexByte(w, c) >= 0 {
			n++
		}
	}
	return n
}
