package model

// Board is an 8x8 grid owning at most one piece per cell. It knows nothing
// about chess rules.
type Board struct {
	grid [boardSize][boardSize]*Piece
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) PositionExists(pos Position) bool {
	return pos.inBounds()
}

// Piece returns the piece at pos, or nil when the square is empty or off the board.
func (b *Board) Piece(pos Position) *Piece {
	if !b.PositionExists(pos) {
		return nil
	}
	return b.grid[pos.Row][pos.Column]
}

func (b *Board) ThereIsAPiece(pos Position) bool {
	return b.Piece(pos) != nil
}

// PlacePiece puts piece on pos and updates the piece's position.
func (b *Board) PlacePiece(piece *Piece, pos Position) error {
	if !b.PositionExists(pos) {
		return ErrPositionNotOnBoard
	}
	if b.grid[pos.Row][pos.Column] != nil {
		return ErrSquareOccupied
	}
	b.grid[pos.Row][pos.Column] = piece
	piece.Position = pos
	return nil
}

// RemovePiece lifts the piece off pos. It returns nil if there was none.
func (b *Board) RemovePiece(pos Position) *Piece {
	piece := b.Piece(pos)
	if piece == nil {
		return nil
	}
	b.grid[pos.Row][pos.Column] = nil
	piece.Position = offBoard
	return piece
}

// pieces lists every piece of color in row-major order.
func (b *Board) pieces(color Color) []*Piece {
	var out []*Piece
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.grid[row][col]; p != nil && p.Color == color {
				out = append(out, p)
			}
		}
	}
	return out
}

func (b *Board) king(color Color) *Piece {
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.grid[row][col]; p != nil && p.Type == King && p.Color == color {
				return p
			}
		}
	}
	return nil
}

// snapshot copies every piece so callers cannot mutate the live board.
func (b *Board) snapshot() [][]*Piece {
	out := make([][]*Piece, boardSize)
	for row := 0; row < boardSize; row++ {
		out[row] = make([]*Piece, boardSize)
		for col := 0; col < boardSize; col++ {
			if p := b.grid[row][col]; p != nil {
				cp := *p
				out[row][col] = &cp
			}
		}
	}
	return out
}

var backRank = [boardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// newStandardBoard sets up the 32 pieces of a fresh game.
func newStandardBoard() *Board {
	board := NewBoard()
	for col, pieceType := range backRank {
		file := rune('a' + col)
		board.placeNew(file, 1, NewPiece(pieceType, White))
		board.placeNew(file, 2, NewPiece(Pawn, White))
		board.placeNew(file, 7, NewPiece(Pawn, Black))
		board.placeNew(file, 8, NewPiece(pieceType, Black))
	}
	return board
}

func (b *Board) placeNew(column rune, row int, piece *Piece) {
	// only called with fixed coordinates on an empty board
	_ = b.PlacePiece(piece, AlgebraicPosition{Column: column, Row: row}.ToPosition())
}
