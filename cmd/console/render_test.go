package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benbeisheim/chessmatch-backend/internal/model"
)

func TestPrintBoardHighlightsMask(t *testing.T) {
	match := model.NewChessMatch()
	e2, _ := model.ParsePosition("e2")
	mask, err := match.PossibleMoves(e2)
	if err != nil {
		t.Fatalf("PossibleMoves: %v", err)
	}

	var buf bytes.Buffer
	printBoard(&buf, match.Pieces(), &mask)
	out := buf.String()

	if got := strings.Count(out, ansiGreenBackground); got != 2 {
		t.Errorf("highlighted squares = %d; want 2", got)
	}
	if !strings.HasPrefix(out, "8 ") {
		t.Errorf("board should start with rank 8, got %q", out[:10])
	}
	if !strings.Contains(out, "  a b c d e f g h") {
		t.Error("missing file legend")
	}
}

func TestPrintMatchShowsCheckmate(t *testing.T) {
	match := model.NewChessMatch()
	for _, mv := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"}} {
		from, _ := model.ParsePosition(mv[0])
		to, _ := model.ParsePosition(mv[1])
		if _, err := match.PerformMove(from, to); err != nil {
			t.Fatalf("%s-%s: %v", mv[0], mv[1], err)
		}
	}

	var buf bytes.Buffer
	printMatch(&buf, match)
	out := buf.String()
	if !strings.Contains(out, "CHECKMATE") {
		t.Error("missing checkmate banner")
	}
	if !strings.Contains(out, "Winner: black") {
		t.Errorf("missing winner line in %q", out)
	}
}
