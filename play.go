package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

type playCommand struct {
	app *app
}

func (c *playCommand) Execute([]string) error {
	return c.app.play(os.Stdin, os.Stdout)
}

var tileColours = map[game.Mark]string{
	game.MarkMatch:   color.Green,
	game.MarkPresent: color.Yellow,
	game.MarkAbsent:  color.White,
}

// play runs one interactive session: show a guess, read the response,
// repeat until the response is all G or no candidate is left.
func (a *app) play(in io.Reader, out io.Writer) error {
	s, err := solver.New(a.dict, a.cfg.SolverOptions()...)
	if err != nil {
		return err
	}
	usage(out)

	sc := bufio.NewScanner(in)
	guess, err := s.NextGuess("")
	if err != nil {
		return err
	}
	for {
		fmt.Fprintf(out, "My guess, from %d candidates, is: %s\n", s.CandidateCount(), strings.ToUpper(guess))

		fb, ok, err := readResponse(sc, out)
		if err != nil || !ok {
			return err
		}
		fmt.Fprintln(out, tiles(guess, fb))
		if fb.Solved() {
			fmt.Fprintf(out, "Solved in %d guesses.\n", s.Guesses())
			return nil
		}

		guess, err = s.Apply(fb)
		if errors.Is(err, solver.ErrExhausted) {
			fmt.Fprintln(out, "No word in my dictionary fits those responses.")
			log.Debug().Interface("history", s.History()).Msg("session exhausted")
			return err
		}
		if err != nil {
			return err
		}
	}
}

// readResponse prompts until a valid G/Y/W response is read. ok is false
// when the input ends.
func readResponse(sc *bufio.Scanner, out io.Writer) (game.Feedback, bool, error) {
	for {
		fmt.Fprint(out, "What was the response? ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return game.Feedback{}, false, sc.Err()
		}
		fb, err := game.ParseFeedback(sc.Text())
		if err == nil {
			return fb, true, nil
		}
		log.Debug().Err(err).Msg("rejected response")
		fmt.Fprintf(out, "That doesn't look right. The response should be %d characters, consisting of G, Y and W.\n", words.Length)
	}
}

// tiles renders guess coloured by its feedback.
func tiles(guess string, fb game.Feedback) string {
	var b strings.Builder
	upper := strings.ToUpper(guess)
	for i, m := range fb {
		b.WriteString(color.Ize(tileColours[m], upper[i:i+1]))
	}
	return b.String()
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "I will propose a guess. Enter it in the game and tell me the response,")
	fmt.Fprintln(out, "one letter per tile: G for green, Y for yellow and W for white (grey).")
	fmt.Fprintf(out, "For example, if I say WORDS and the response is %s%s%s\n",
		color.Ize(color.Yellow, "W"), "OR", color.Ize(color.Green, "DS"))
	fmt.Fprintln(out, "You would tell me YWWGG")
	fmt.Fprintln(out, "Let's begin!")
}
