package model

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "?"
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type Piece struct {
	Type      PieceType `json:"type"`
	Color     Color     `json:"color"`
	Position  Position  `json:"position"`
	MoveCount int       `json:"moveCount"`
}

func NewPiece(pieceType PieceType, color Color) *Piece {
	return &Piece{Type: pieceType, Color: color, Position: offBoard}
}

func (p *Piece) String() string {
	return p.Type.getPieceNotation()
}

func (p *Piece) IsFirstMove() bool {
	return p.MoveCount == 0
}

func (p *Piece) increaseMoveCount() {
	p.MoveCount++
}

func (p *Piece) decreaseMoveCount() {
	p.MoveCount--
}

// MoveMask marks the squares a piece may reach.
type MoveMask [boardSize][boardSize]bool

func (m *MoveMask) Has(pos Position) bool {
	return pos.inBounds() && m[pos.Row][pos.Column]
}

func (m *MoveMask) set(pos Position) {
	m[pos.Row][pos.Column] = true
}

func (m *MoveMask) Any() bool {
	for row := range m {
		for col := range m[row] {
			if m[row][col] {
				return true
			}
		}
	}
	return false
}

// Squares lists the marked squares in row-major order.
func (m *MoveMask) Squares() []Position {
	var out []Position
	for row := range m {
		for col := range m[row] {
			if m[row][col] {
				out = append(out, Position{Row: row, Column: col})
			}
		}
	}
	return out
}

// PossibleMoves returns the squares reachable by the piece's movement rule,
// without regard to its own king's safety. enPassantVulnerable is the pawn,
// if any, that just advanced two squares.
func (p *Piece) PossibleMoves(board *Board, enPassantVulnerable *Piece) MoveMask {
	switch p.Type {
	case Pawn:
		return pawnMoves(board, p, enPassantVulnerable)
	case Knight:
		return knightMoves(board, p)
	case Bishop:
		return slidingMoves(board, p, bishopDirs)
	case Rook:
		return slidingMoves(board, p, rookDirs)
	case Queen:
		return slidingMoves(board, p, queenDirs)
	case King:
		return kingMoves(board, p)
	default:
		return MoveMask{}
	}
}

func (p *Piece) PossibleMove(board *Board, enPassantVulnerable *Piece, target Position) bool {
	mask := p.PossibleMoves(board, enPassantVulnerable)
	return mask.Has(target)
}

func (p *Piece) IsThereAnyPossibleMove(board *Board, enPassantVulnerable *Piece) bool {
	mask := p.PossibleMoves(board, enPassantVulnerable)
	return mask.Any()
}

func (p *Piece) isOpponentOf(other *Piece) bool {
	return other != nil && other.Color != p.Color
}
