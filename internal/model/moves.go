package model

var (
	rookDirs   = []Position{{Row: 1, Column: 0}, {Row: -1, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: -1}}
	bishopDirs = []Position{{Row: 1, Column: 1}, {Row: 1, Column: -1}, {Row: -1, Column: 1}, {Row: -1, Column: -1}}
	queenDirs  = append(append([]Position{}, rookDirs...), bishopDirs...)
	kingDirs   = queenDirs
	knightDirs = []Position{
		{Row: 2, Column: 1}, {Row: 2, Column: -1}, {Row: -2, Column: 1}, {Row: -2, Column: -1},
		{Row: 1, Column: 2}, {Row: 1, Column: -2}, {Row: -1, Column: 2}, {Row: -1, Column: -2},
	}
)

// canLand reports whether piece may stop on pos: on the board and not held
// by a piece of its own color.
func canLand(board *Board, piece *Piece, pos Position) bool {
	if !board.PositionExists(pos) {
		return false
	}
	occupant := board.Piece(pos)
	return occupant == nil || piece.isOpponentOf(occupant)
}

func knightMoves(board *Board, piece *Piece) MoveMask {
	var mask MoveMask
	for _, dir := range knightDirs {
		target := piece.Position.add(dir)
		if canLand(board, piece, target) {
			mask.set(target)
		}
	}
	return mask
}

func slidingMoves(board *Board, piece *Piece, dirs []Position) MoveMask {
	var mask MoveMask
	for _, dir := range dirs {
		target := piece.Position.add(dir)
		for board.PositionExists(target) {
			occupant := board.Piece(target)
			if occupant == nil {
				mask.set(target)
			} else {
				if piece.isOpponentOf(occupant) {
					mask.set(target)
				}
				break
			}
			target = target.add(dir)
		}
	}
	return mask
}

// pawnForward is the row step of a pawn of the given color. White starts
// on row 6 and walks toward row 0.
func pawnForward(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

func pawnMoves(board *Board, piece *Piece, enPassantVulnerable *Piece) MoveMask {
	var mask MoveMask
	step := pawnForward(piece.Color)

	one := piece.Position.add(Position{Row: step})
	if board.PositionExists(one) && !board.ThereIsAPiece(one) {
		mask.set(one)
		two := one.add(Position{Row: step})
		if piece.IsFirstMove() && board.PositionExists(two) && !board.ThereIsAPiece(two) {
			mask.set(two)
		}
	}

	for _, side := range []int{-1, 1} {
		diagonal := piece.Position.add(Position{Row: step, Column: side})
		if !board.PositionExists(diagonal) {
			continue
		}
		occupant := board.Piece(diagonal)
		if occupant != nil {
			if piece.isOpponentOf(occupant) {
				mask.set(diagonal)
			}
			continue
		}
		// en passant: the passed pawn sits beside us, not on the target
		beside := board.Piece(piece.Position.add(Position{Column: side}))
		if beside != nil && beside == enPassantVulnerable && piece.isOpponentOf(beside) {
			mask.set(diagonal)
		}
	}
	return mask
}

func kingMoves(board *Board, piece *Piece) MoveMask {
	var mask MoveMask
	for _, dir := range kingDirs {
		target := piece.Position.add(dir)
		if canLand(board, piece, target) {
			mask.set(target)
		}
	}

	// Castling only looks at move counts and empty squares. Whether the king
	// is in check or crosses an attacked square is not examined.
	if piece.IsFirstMove() {
		if canCastle(board, piece, 3) {
			mask.set(piece.Position.add(Position{Column: 2}))
		}
		if canCastle(board, piece, -4) {
			mask.set(piece.Position.add(Position{Column: -2}))
		}
	}
	return mask
}

// canCastle checks the rook rookOffset columns away and the squares between.
func canCastle(board *Board, king *Piece, rookOffset int) bool {
	rookPos := king.Position.add(Position{Column: rookOffset})
	rook := board.Piece(rookPos)
	if rook == nil || rook.Type != Rook || rook.Color != king.Color || !rook.IsFirstMove() {
		return false
	}
	dir := 1
	if rookOffset < 0 {
		dir = -1
	}
	for col := king.Position.Column + dir; col != rookPos.Column; col += dir {
		if board.ThereIsAPiece(Position{Row: king.Position.Row, Column: col}) {
			return false
		}
	}
	return true
}
