package model

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is wrapped by every rejected move attempt. The match is
	// left untouched and the caller may retry.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation signals a corrupted board, e.g. a missing king.
	ErrInvariantViolation = errors.New("invariant violation")

	ErrInvalidCoordinate  = errors.New("invalid coordinate, valid values are a1 to h8")
	ErrPositionNotOnBoard = errors.New("position not on the board")
	ErrSquareOccupied     = errors.New("square already occupied")
)

type MoveErrorReason string

const (
	ReasonNotOnBoard        MoveErrorReason = "position not on the board"
	ReasonNoPiece           MoveErrorReason = "there is no piece on the source position"
	ReasonNotYourPiece      MoveErrorReason = "the chosen piece is not yours"
	ReasonNoPossibleMoves   MoveErrorReason = "there are no possible moves for the chosen piece"
	ReasonUnreachableTarget MoveErrorReason = "the chosen piece cannot move to the target position"
	ReasonOwnPieceCapture   MoveErrorReason = "you cannot capture your own piece"
	ReasonSelfCheck         MoveErrorReason = "you cannot put yourself in check"
	ReasonMatchOver         MoveErrorReason = "the match is over"
)

// MoveError describes why a move attempt was rejected.
type MoveError struct {
	Reason MoveErrorReason
	Source Position
	Target *Position
}

func (e *MoveError) Error() string {
	if e.Target != nil {
		return fmt.Sprintf("%s %s-%s: %s", ErrIllegalMove, e.Source.getSquareNotation(), e.Target.getSquareNotation(), e.Reason)
	}
	return fmt.Sprintf("%s %s: %s", ErrIllegalMove, e.Source.getSquareNotation(), e.Reason)
}

func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

func illegalSource(reason MoveErrorReason, source Position) error {
	return &MoveError{Reason: reason, Source: source}
}

func illegalMove(reason MoveErrorReason, source, target Position) error {
	return &MoveError{Reason: reason, Source: source, Target: &target}
}

// InvariantError reports board corruption. It is never the caller's fault.
type InvariantError struct {
	Detail string
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrInvariantViolation, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Detail)
}

func (e *InvariantError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvariantViolation, e.Err}
	}
	return []error{ErrInvariantViolation}
}
