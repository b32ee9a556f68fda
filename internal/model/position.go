package model

import (
	"fmt"
	"strconv"
	"strings"
)

const boardSize = 8

// Position is a zero-based grid coordinate. Row 0 is rank 8.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// offBoard marks a piece that is not currently placed.
var offBoard = Position{Row: -1, Column: -1}

func (p Position) add(dir Position) Position {
	return Position{Row: p.Row + dir.Row, Column: p.Column + dir.Column}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// AlgebraicPosition is the human facing coordinate, e.g. e2.
type AlgebraicPosition struct {
	Column rune `json:"column"`
	Row    int  `json:"row"`
}

func (a AlgebraicPosition) valid() bool {
	return a.Column >= 'a' && a.Column <= 'h' && a.Row >= 1 && a.Row <= boardSize
}

// ToPosition converts to grid coordinates (row = 8 - rank).
func (a AlgebraicPosition) ToPosition() Position {
	return Position{Row: boardSize - a.Row, Column: int(a.Column - 'a')}
}

func (a AlgebraicPosition) String() string {
	return fmt.Sprintf("%c%d", a.Column, a.Row)
}

func FromPosition(p Position) AlgebraicPosition {
	return AlgebraicPosition{Column: rune('a' + p.Column), Row: boardSize - p.Row}
}

// ParseAlgebraic reads coordinates such as "e2" or " H8 ".
func ParseAlgebraic(s string) (AlgebraicPosition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return AlgebraicPosition{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return AlgebraicPosition{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	a := AlgebraicPosition{Column: rune(s[0]), Row: row}
	if !a.valid() {
		return AlgebraicPosition{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return a, nil
}

// ParsePosition parses algebraic text straight into grid coordinates.
func ParsePosition(s string) (Position, error) {
	a, err := ParseAlgebraic(s)
	if err != nil {
		return Position{}, err
	}
	return a.ToPosition(), nil
}

func (p Position) inBounds() bool {
	return p.Row >= 0 && p.Row < boardSize && p.Column >= 0 && p.Column < boardSize
}

func (p Position) getSquareNotation() string {
	if !p.inBounds() {
		return p.String()
	}
	return FromPosition(p).String()
}
