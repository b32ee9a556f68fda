package model

import (
	"strings"
	"testing"
)

func pos(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

// placement is "Ke1" style: piece letter, then square. Upper case is white.
func boardWith(t *testing.T, placements ...string) *Board {
	t.Helper()
	types := map[byte]PieceType{'k': King, 'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight, 'p': Pawn}
	board := NewBoard()
	for _, pl := range placements {
		letter := pl[0]
		color := White
		if strings.ToLower(pl[:1]) == pl[:1] {
			color = Black
		}
		pieceType, ok := types[strings.ToLower(pl[:1])[0]]
		if !ok {
			t.Fatalf("unknown piece letter %c", letter)
		}
		if err := board.PlacePiece(NewPiece(pieceType, color), pos(t, pl[1:])); err != nil {
			t.Fatalf("place %s: %v", pl, err)
		}
	}
	return board
}

func matchWith(t *testing.T, toMove Color, placements ...string) *ChessMatch {
	t.Helper()
	return newChessMatch(boardWith(t, placements...), toMove)
}

// play performs moves written as "e2-e4" and fails the test on the first error.
func play(t *testing.T, m *ChessMatch, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		from, to, ok := strings.Cut(mv, "-")
		if !ok {
			t.Fatalf("bad move %q", mv)
		}
		if _, err := m.PerformMove(pos(t, from), pos(t, to)); err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
	}
}

func squares(mask MoveMask) []string {
	out := make([]string, 0)
	for _, p := range mask.Squares() {
		out = append(out, p.getSquareNotation())
	}
	return out
}

// snapshot is everything a renderer can observe.
type snapshot struct {
	Pieces   [][]*Piece
	State    MatchState
	Captured CapturedPieces
}

func takeSnapshot(m *ChessMatch) snapshot {
	return snapshot{Pieces: m.Pieces(), State: m.State(), Captured: m.CapturedPieces()}
}
