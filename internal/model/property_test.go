package model

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type candidate struct {
	from, to Position
}

func candidates(m *ChessMatch) []candidate {
	var out []candidate
	for _, p := range m.board.pieces(m.state.CurrentPlayer) {
		mask := p.PossibleMoves(m.board, m.state.EnPassantVulnerable)
		for _, to := range mask.Squares() {
			out = append(out, candidate{from: p.Position, to: to})
		}
	}
	return out
}

// TestRandomGamesKeepInvariants plays seeded random games and checks the
// board after every attempt, accepted or not.
func TestRandomGamesKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := NewChessMatch()

		for ply := 0; ply < 150 && !m.CheckMate(); ply++ {
			moves := candidates(m)
			rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

			moved := false
			for _, mv := range moves {
				before := takeSnapshot(m)
				mover := *m.board.Piece(mv.from)

				_, err := m.PerformMove(mv.from, mv.to)
				if err != nil {
					if !errors.Is(err, ErrIllegalMove) {
						t.Fatalf("seed %d ply %d: %v", seed, ply, err)
					}
					if diff := cmp.Diff(before, takeSnapshot(m)); diff != "" {
						t.Fatalf("seed %d ply %d: rejected move changed the match:\n%s", seed, ply, diff)
					}
					continue
				}

				checkAfterMove(t, m, mover, mv, before.State)
				moved = true
				break
			}
			if !moved {
				// no legal move: either mate (flag would be set) or stalemate
				if m.CheckMate() {
					t.Fatalf("seed %d: checkmate flag set but loop continued", seed)
				}
				break
			}
		}

		if m.CheckMate() {
			if _, err := m.PerformMove(Position{Row: 6, Column: 0}, Position{Row: 5, Column: 0}); !errors.Is(err, ErrIllegalMove) {
				t.Errorf("seed %d: move accepted after checkmate", seed)
			}
		}
	}
}

func checkAfterMove(t *testing.T, m *ChessMatch, mover Piece, mv candidate, prev MatchState) {
	t.Helper()
	assertOneKingEach(t, m)
	assertNoFriendlyTargets(t, m)
	assertBoardConsistent(t, m)

	if m.state.Turn != prev.Turn+1 || m.state.CurrentPlayer != prev.CurrentPlayer.Opponent() {
		t.Fatalf("turn %d/%s after %d/%s", m.state.Turn, m.state.CurrentPlayer, prev.Turn, prev.CurrentPlayer)
	}

	doubleStep := mover.Type == Pawn && abs(mv.to.Row-mv.from.Row) == 2
	ep := m.state.EnPassantVulnerable
	switch {
	case doubleStep && (ep == nil || ep.Position != mv.to):
		t.Fatalf("double step %v-%v did not set the en passant marker", mv.from, mv.to)
	case !doubleStep && ep != nil:
		t.Fatalf("move %v-%v left en passant marker on %v", mv.from, mv.to, ep.Position)
	}

	inCheck, err := m.testCheck(m.state.CurrentPlayer)
	if err != nil {
		t.Fatal(err)
	}
	if inCheck != m.state.Check {
		t.Fatalf("check flag %v but testCheck says %v", m.state.Check, inCheck)
	}
	// the side that just moved must never be left in check
	selfCheck, err := m.testCheck(prev.CurrentPlayer)
	if err != nil {
		t.Fatal(err)
	}
	if selfCheck {
		t.Fatalf("move %v-%v left the mover in check", mv.from, mv.to)
	}
}

func assertBoardConsistent(t *testing.T, m *ChessMatch) {
	t.Helper()
	seen := map[*Piece]bool{}
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			p := m.board.grid[row][col]
			if p == nil {
				continue
			}
			if seen[p] {
				t.Fatalf("piece %v on two squares", p)
			}
			seen[p] = true
			if p.Position != (Position{Row: row, Column: col}) {
				t.Fatalf("piece on (%d,%d) thinks it is on %v", row, col, p.Position)
			}
			if p.MoveCount < 0 {
				t.Fatalf("negative move count on %v", p.Position)
			}
		}
	}
}
