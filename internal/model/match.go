package model

import (
	"errors"
	"fmt"
)

// MatchState is everything about a match besides the board itself.
type MatchState struct {
	Turn                int    `json:"turn"`
	CurrentPlayer       Color  `json:"currentPlayer"`
	Check               bool   `json:"check"`
	CheckMate           bool   `json:"checkMate"`
	EnPassantVulnerable *Piece `json:"enPassantVulnerable"`
}

// CapturedPieces holds the pieces taken by each side.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

// ChessMatch drives a two-player game: it validates moves, applies them,
// and keeps the check and checkmate flags current. It is not safe for
// concurrent use; see Game for a locked wrapper.
type ChessMatch struct {
	board    *Board
	state    MatchState
	captured CapturedPieces
}

func NewChessMatch() *ChessMatch {
	return newChessMatch(newStandardBoard(), White)
}

func newChessMatch(board *Board, toMove Color) *ChessMatch {
	return &ChessMatch{
		board: board,
		state: MatchState{
			Turn:          1,
			CurrentPlayer: toMove,
		},
		captured: newCapturedPieces(),
	}
}

func (m *ChessMatch) Turn() int            { return m.state.Turn }
func (m *ChessMatch) CurrentPlayer() Color { return m.state.CurrentPlayer }
func (m *ChessMatch) Check() bool          { return m.state.Check }
func (m *ChessMatch) CheckMate() bool      { return m.state.CheckMate }

// EnPassantVulnerable returns a copy of the pawn that may be taken en
// passant this turn, or nil.
func (m *ChessMatch) EnPassantVulnerable() *Piece {
	if m.state.EnPassantVulnerable == nil {
		return nil
	}
	cp := *m.state.EnPassantVulnerable
	return &cp
}

func (m *ChessMatch) State() MatchState {
	state := m.state
	state.EnPassantVulnerable = m.EnPassantVulnerable()
	return state
}

// Pieces returns the grid with copies of every piece on it.
func (m *ChessMatch) Pieces() [][]*Piece {
	return m.board.snapshot()
}

func (m *ChessMatch) CapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: append(make([]Piece, 0, len(m.captured.White)), m.captured.White...),
		Black: append(make([]Piece, 0, len(m.captured.Black)), m.captured.Black...),
	}
}

// Winner reports the side that delivered checkmate.
func (m *ChessMatch) Winner() (Color, bool) {
	if !m.state.CheckMate {
		return "", false
	}
	return m.state.CurrentPlayer.Opponent(), true
}

// PossibleMoves returns the movement mask of the current player's piece on
// source, for highlighting.
func (m *ChessMatch) PossibleMoves(source Position) (MoveMask, error) {
	if m.state.CheckMate {
		return MoveMask{}, illegalSource(ReasonMatchOver, source)
	}
	if err := m.validateSourcePosition(source); err != nil {
		return MoveMask{}, err
	}
	return m.board.Piece(source).PossibleMoves(m.board, m.state.EnPassantVulnerable), nil
}

// PerformMove moves the piece on source to target and returns the captured
// piece, if any. A returned error wrapping ErrIllegalMove guarantees the
// match is unchanged.
func (m *ChessMatch) PerformMove(source, target Position) (*Piece, error) {
	if m.state.CheckMate {
		return nil, illegalMove(ReasonMatchOver, source, target)
	}
	if err := m.validateSourcePosition(source); err != nil {
		return nil, err
	}
	if err := m.validateTargetPosition(source, target); err != nil {
		return nil, err
	}

	rec, err := m.makeMove(source, target)
	if err != nil {
		return nil, err
	}

	selfCheck, err := m.testCheck(m.state.CurrentPlayer)
	if err != nil || selfCheck {
		if undoErr := m.undoMove(rec); undoErr != nil {
			return nil, undoErr
		}
		if err != nil {
			return nil, err
		}
		return nil, illegalMove(ReasonSelfCheck, source, target)
	}

	if rec.piece.Type == Pawn && abs(target.Row-source.Row) == 2 {
		m.state.EnPassantVulnerable = rec.piece
	} else {
		m.state.EnPassantVulnerable = nil
	}

	opponent := m.state.CurrentPlayer.Opponent()
	check, err := m.testCheck(opponent)
	if err != nil {
		return nil, err
	}
	m.state.Check = check
	if check {
		mate, err := m.testCheckMate(opponent)
		if err != nil {
			return nil, err
		}
		m.state.CheckMate = mate
	}

	var captured *Piece
	if rec.captured != nil {
		m.recordCapture(*rec.captured)
		cp := *rec.captured
		captured = &cp
	}

	m.nextTurn()
	return captured, nil
}

func (m *ChessMatch) recordCapture(p Piece) {
	switch m.state.CurrentPlayer {
	case White:
		m.captured.White = append(m.captured.White, p)
	case Black:
		m.captured.Black = append(m.captured.Black, p)
	}
}

func (m *ChessMatch) nextTurn() {
	m.state.Turn++
	m.state.CurrentPlayer = m.state.CurrentPlayer.Opponent()
}

func (m *ChessMatch) validateSourcePosition(source Position) error {
	if !m.board.PositionExists(source) {
		return illegalSource(ReasonNotOnBoard, source)
	}
	piece := m.board.Piece(source)
	if piece == nil {
		return illegalSource(ReasonNoPiece, source)
	}
	if piece.Color != m.state.CurrentPlayer {
		return illegalSource(ReasonNotYourPiece, source)
	}
	if !piece.IsThereAnyPossibleMove(m.board, m.state.EnPassantVulnerable) {
		return illegalSource(ReasonNoPossibleMoves, source)
	}
	return nil
}

func (m *ChessMatch) validateTargetPosition(source, target Position) error {
	if !m.board.PositionExists(target) {
		return illegalMove(ReasonNotOnBoard, source, target)
	}
	piece := m.board.Piece(source)
	if !piece.PossibleMove(m.board, m.state.EnPassantVulnerable, target) {
		return illegalMove(ReasonUnreachableTarget, source, target)
	}
	if occupant := m.board.Piece(target); occupant != nil && occupant.Color == piece.Color {
		return illegalMove(ReasonOwnPieceCapture, source, target)
	}
	return nil
}

// moveRecord is what undoMove needs to put the board back exactly.
type moveRecord struct {
	piece      *Piece
	source     Position
	target     Position
	placed     bool
	captured   *Piece
	capturedAt Position
	rook       *Piece
	rookFrom   Position
	rookTo     Position
}

func (m *ChessMatch) makeMove(source, target Position) (*moveRecord, error) {
	piece := m.board.RemovePiece(source)
	if piece == nil {
		return nil, &InvariantError{Detail: fmt.Sprintf("no piece to move on %s", source.getSquareNotation())}
	}
	piece.increaseMoveCount()
	rec := &moveRecord{piece: piece, source: source, target: target}

	if captured := m.board.RemovePiece(target); captured != nil {
		rec.captured, rec.capturedAt = captured, target
	} else if piece.Type == Pawn && target.Column != source.Column {
		// diagonal step onto an empty square: en passant
		passed := Position{Row: source.Row, Column: target.Column}
		if captured := m.board.RemovePiece(passed); captured != nil {
			rec.captured, rec.capturedAt = captured, passed
		}
	}

	if err := m.board.PlacePiece(piece, target); err != nil {
		return nil, m.abortMove(rec, err)
	}
	rec.placed = true

	if piece.Type == King && abs(target.Column-source.Column) == 2 {
		rec.rookFrom = source.add(Position{Column: 3})
		rec.rookTo = source.add(Position{Column: 1})
		if target.Column < source.Column {
			rec.rookFrom = source.add(Position{Column: -4})
			rec.rookTo = source.add(Position{Column: -1})
		}
		rook := m.board.RemovePiece(rec.rookFrom)
		if rook == nil {
			return nil, m.abortMove(rec, errors.New("castling rook missing"))
		}
		if err := m.board.PlacePiece(rook, rec.rookTo); err != nil {
			_ = m.board.PlacePiece(rook, rec.rookFrom)
			return nil, m.abortMove(rec, err)
		}
		rook.increaseMoveCount()
		rec.rook = rook
	}
	return rec, nil
}

// abortMove rolls back a half applied move and reports the cause.
func (m *ChessMatch) abortMove(rec *moveRecord, cause error) error {
	if undoErr := m.undoMove(rec); undoErr != nil {
		cause = errors.Join(cause, undoErr)
	}
	return &InvariantError{
		Detail: fmt.Sprintf("applying %s-%s", rec.source.getSquareNotation(), rec.target.getSquareNotation()),
		Err:    cause,
	}
}

func (m *ChessMatch) undoMove(rec *moveRecord) error {
	var errs []error
	if rec.rook != nil {
		m.board.RemovePiece(rec.rookTo)
		errs = append(errs, m.board.PlacePiece(rec.rook, rec.rookFrom))
		rec.rook.decreaseMoveCount()
	}
	if rec.placed {
		m.board.RemovePiece(rec.target)
	}
	errs = append(errs, m.board.PlacePiece(rec.piece, rec.source))
	rec.piece.decreaseMoveCount()
	if rec.captured != nil {
		errs = append(errs, m.board.PlacePiece(rec.captured, rec.capturedAt))
	}
	if err := errors.Join(errs...); err != nil {
		return &InvariantError{
			Detail: fmt.Sprintf("undoing %s-%s", rec.source.getSquareNotation(), rec.target.getSquareNotation()),
			Err:    err,
		}
	}
	return nil
}

// simulate applies source-target, runs inspect and always undoes the move
// before returning.
func (m *ChessMatch) simulate(source, target Position, inspect func() (bool, error)) (result bool, err error) {
	rec, err := m.makeMove(source, target)
	if err != nil {
		return false, err
	}
	defer func() {
		if undoErr := m.undoMove(rec); undoErr != nil {
			result, err = false, errors.Join(err, undoErr)
		}
	}()
	return inspect()
}

func (m *ChessMatch) kingPosition(color Color) (Position, error) {
	king := m.board.king(color)
	if king == nil {
		return Position{}, &InvariantError{Detail: fmt.Sprintf("there is no %s king on the board", color)}
	}
	return king.Position, nil
}

// testCheck reports whether any piece of the opponent reaches color's king.
func (m *ChessMatch) testCheck(color Color) (bool, error) {
	kingPos, err := m.kingPosition(color)
	if err != nil {
		return false, err
	}
	for _, p := range m.board.pieces(color.Opponent()) {
		mask := p.PossibleMoves(m.board, m.state.EnPassantVulnerable)
		if mask.Has(kingPos) {
			return true, nil
		}
	}
	return false, nil
}

// testCheckMate tries every possible move of color and reports whether none
// of them gets its king out of check.
func (m *ChessMatch) testCheckMate(color Color) (bool, error) {
	inCheck, err := m.testCheck(color)
	if err != nil || !inCheck {
		return false, err
	}
	for _, p := range m.board.pieces(color) {
		source := p.Position
		mask := p.PossibleMoves(m.board, m.state.EnPassantVulnerable)
		for _, target := range mask.Squares() {
			stillInCheck, err := m.simulate(source, target, func() (bool, error) {
				return m.testCheck(color)
			})
			if err != nil {
				return false, err
			}
			if !stillInCheck {
				return false, nil
			}
		}
	}
	return true, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
