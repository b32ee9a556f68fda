package main

import (
	"fmt"
	"io"

	"github.com/benbeisheim/chessmatch-backend/internal/model"
)

const (
	ansiReset           = "\u001B[0m"
	ansiYellow          = "\u001B[33m"
	ansiWhite           = "\u001B[37m"
	ansiGreenBackground = "\u001B[42m"
	ansiRedBackground   = "\u001B[41m"
)

func clearScreen(out io.Writer) {
	fmt.Fprint(out, "\033[H\033[2J")
}

func printMatch(out io.Writer, match *model.ChessMatch) {
	printBoard(out, match.Pieces(), nil)
	fmt.Fprintln(out)
	printCaptured(out, match.CapturedPieces())

	if winner, ok := match.Winner(); ok {
		fmt.Fprintln(out, ansiRedBackground+ansiWhite+"!!! CHECKMATE !!!"+ansiReset)
		fmt.Fprintf(out, "Winner: %s\n", winner)
		return
	}
	fmt.Fprintf(out, "Turn: %d\n", match.Turn())
	fmt.Fprintf(out, "Waiting for player: %s\n", match.CurrentPlayer())
	if match.Check() {
		fmt.Fprintln(out, ansiRedBackground+ansiWhite+"!!! CHECK !!!"+ansiReset)
	}
}

// printBoard draws rank 8 at the top. possible may be nil.
func printBoard(out io.Writer, pieces [][]*model.Piece, possible *model.MoveMask) {
	for row := range pieces {
		fmt.Fprintf(out, "%d ", len(pieces)-row)
		for col, piece := range pieces[row] {
			if possible != nil && possible.Has(model.Position{Row: row, Column: col}) {
				fmt.Fprint(out, ansiGreenBackground)
			}
			printPiece(out, piece)
			fmt.Fprint(out, ansiReset)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "  a b c d e f g h")
}

func printPiece(out io.Writer, piece *model.Piece) {
	switch {
	case piece == nil:
		fmt.Fprint(out, "-")
	case piece.Color == model.White:
		fmt.Fprint(out, ansiYellow+piece.String()+ansiReset)
	default:
		fmt.Fprint(out, ansiWhite+piece.String()+ansiReset)
	}
	fmt.Fprint(out, " ")
}

func printCaptured(out io.Writer, captured model.CapturedPieces) {
	fmt.Fprint(out, "Captured by white: ")
	for _, p := range captured.White {
		fmt.Fprint(out, p.String(), " ")
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, "Captured by black: ")
	for _, p := range captured.Black {
		fmt.Fprint(out, p.String(), " ")
	}
	fmt.Fprintln(out)
}
