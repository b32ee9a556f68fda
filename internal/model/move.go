package model

// MoveRequest is a move as the renderer sends it, in algebraic coordinates.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Positions parses both coordinates.
func (r MoveRequest) Positions() (Position, Position, error) {
	from, err := ParsePosition(r.From)
	if err != nil {
		return Position{}, Position{}, err
	}
	to, err := ParsePosition(r.To)
	if err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}

type SimpleMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PossibleMovesRequest asks for the highlight mask of one square.
type PossibleMovesRequest struct {
	From string `json:"from"`
}

// PossibleMoves is the renderer-facing form of a MoveMask.
type PossibleMoves struct {
	From    string   `json:"from"`
	Squares []string `json:"squares"`
	Mask    MoveMask `json:"mask"`
}

func newPossibleMoves(from Position, mask MoveMask) PossibleMoves {
	squares := make([]string, 0)
	for _, pos := range mask.Squares() {
		squares = append(squares, pos.getSquareNotation())
	}
	return PossibleMoves{
		From:    from.getSquareNotation(),
		Squares: squares,
		Mask:    mask,
	}
}
