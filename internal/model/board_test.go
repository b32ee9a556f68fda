package model

import (
	"errors"
	"testing"
)

func TestBoardPlaceAndRemove(t *testing.T) {
	b := NewBoard()
	p := NewPiece(Rook, White)
	d4 := pos(t, "d4")

	if err := b.PlacePiece(p, d4); err != nil {
		t.Fatalf("PlacePiece: %v", err)
	}
	if b.Piece(d4) != p || p.Position != d4 {
		t.Fatalf("piece not on d4: board=%v piece=%v", b.Piece(d4), p.Position)
	}
	if !b.ThereIsAPiece(d4) {
		t.Error("ThereIsAPiece(d4) = false")
	}

	if err := b.PlacePiece(NewPiece(Knight, Black), d4); !errors.Is(err, ErrSquareOccupied) {
		t.Errorf("PlacePiece on occupied square = %v; want ErrSquareOccupied", err)
	}
	if err := b.PlacePiece(NewPiece(Knight, Black), Position{Row: 8, Column: 0}); !errors.Is(err, ErrPositionNotOnBoard) {
		t.Errorf("PlacePiece off board = %v; want ErrPositionNotOnBoard", err)
	}

	if got := b.RemovePiece(d4); got != p {
		t.Errorf("RemovePiece(d4) = %v; want the rook", got)
	}
	if p.Position != offBoard {
		t.Errorf("removed piece position = %v; want offBoard", p.Position)
	}
	if b.RemovePiece(d4) != nil {
		t.Error("RemovePiece on empty square should return nil")
	}
}

func TestBoardPositionExists(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{Row: 0, Column: 0}, true},
		{Position{Row: 7, Column: 7}, true},
		{Position{Row: -1, Column: 3}, false},
		{Position{Row: 3, Column: 8}, false},
	}
	for _, tt := range tests {
		if got := b.PositionExists(tt.p); got != tt.want {
			t.Errorf("PositionExists(%v) = %v; want %v", tt.p, got, tt.want)
		}
		if b.Piece(tt.p) != nil {
			t.Errorf("Piece(%v) on empty board should be nil", tt.p)
		}
	}
}

func TestStandardBoard(t *testing.T) {
	b := newStandardBoard()

	tests := []struct {
		square    string
		pieceType PieceType
		color     Color
	}{
		{"a1", Rook, White},
		{"b1", Knight, White},
		{"c1", Bishop, White},
		{"d1", Queen, White},
		{"e1", King, White},
		{"h1", Rook, White},
		{"e2", Pawn, White},
		{"e7", Pawn, Black},
		{"d8", Queen, Black},
		{"e8", King, Black},
		{"g8", Knight, Black},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			p := b.Piece(pos(t, tt.square))
			if p == nil {
				t.Fatalf("no piece on %s", tt.square)
			}
			if p.Type != tt.pieceType || p.Color != tt.color {
				t.Errorf("%s = %s %s; want %s %s", tt.square, p.Color, p.Type, tt.color, tt.pieceType)
			}
			if p.Position != pos(t, tt.square) {
				t.Errorf("piece position %v does not match square %s", p.Position, tt.square)
			}
		})
	}

	if n := len(b.pieces(White)) + len(b.pieces(Black)); n != 32 {
		t.Errorf("piece count = %d; want 32", n)
	}
	for row := 2; row < 6; row++ {
		for col := 0; col < boardSize; col++ {
			if b.ThereIsAPiece(Position{Row: row, Column: col}) {
				t.Errorf("unexpected piece on %v", Position{Row: row, Column: col})
			}
		}
	}
}
