// Command console plays a hot-seat match in the terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benbeisheim/chessmatch-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	match := model.NewChessMatch()
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	for !match.CheckMate() {
		clearScreen(out)
		printMatch(out, match)
		fmt.Fprintln(out)

		source, err := readPosition(out, in, "Source: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			waitAfterError(out, in, err)
			continue
		}
		mask, err := match.PossibleMoves(source)
		if err != nil {
			waitAfterError(out, in, err)
			continue
		}

		clearScreen(out)
		printBoard(out, match.Pieces(), &mask)
		fmt.Fprintln(out)
		target, err := readPosition(out, in, "Target: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			waitAfterError(out, in, err)
			continue
		}

		if _, err := match.PerformMove(source, target); err != nil {
			if errors.Is(err, model.ErrInvariantViolation) {
				log.Fatal(err)
			}
			waitAfterError(out, in, err)
		}
	}

	clearScreen(out)
	printMatch(out, match)
}

func readPosition(out io.Writer, in *bufio.Scanner, prompt string) (model.Position, error) {
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return model.Position{}, err
		}
		return model.Position{}, io.EOF
	}
	return model.ParsePosition(in.Text())
}

func waitAfterError(out io.Writer, in *bufio.Scanner, err error) {
	fmt.Fprintf(out, "Error: %v\n", err)
	fmt.Fprint(out, "Press enter to continue")
	in.Scan()
}
