package service

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chessmatch-backend/internal/model"
	"github.com/benbeisheim/chessmatch-backend/internal/ws"
	"github.com/google/uuid"
)

type nopConn struct{}

func (nopConn) WriteJSON(v interface{}) error { return nil }

func TestCreateGame(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if _, err := uuid.Parse(gameID); err != nil {
		t.Errorf("game id %q is not a UUID: %v", gameID, err)
	}
	if gm.GameCount() != 1 {
		t.Errorf("GameCount = %d; want 1", gm.GameCount())
	}
	if err := gm.CreateGame(gameID); !errors.Is(err, ErrGameExists) {
		t.Errorf("duplicate CreateGame = %v; want ErrGameExists", err)
	}

	state, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.Turn != 1 || state.ToMove != model.White {
		t.Errorf("new game state turn=%d toMove=%s", state.Turn, state.ToMove)
	}
}

func TestUnknownGame(t *testing.T) {
	gs := NewGameService(NewGameManager())
	id := uuid.NewString()

	if _, err := gs.GetGameState(id); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameState = %v", err)
	}
	if _, err := gs.HandleMove(id, model.MoveRequest{From: "e2", To: "e4"}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("HandleMove = %v", err)
	}
	if _, err := gs.GetPossibleMoves(id, "e2"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetPossibleMoves = %v", err)
	}
	if _, err := gs.RegisterConnection(id, nopConn{}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("RegisterConnection = %v", err)
	}
	if err := gs.Send(id, "c1", ws.Message{}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Send = %v", err)
	}
	// must not panic
	gs.UnregisterConnection(id, "c1")
}

func TestHandleMove(t *testing.T) {
	gs := NewGameService(NewGameManager())
	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}

	state, err := gs.HandleMove(gameID, model.MoveRequest{From: "e2", To: "e4"})
	if err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if state.ToMove != model.Black {
		t.Errorf("ToMove = %s; want black", state.ToMove)
	}

	if _, err := gs.HandleMove(gameID, model.MoveRequest{From: "e4", To: "e5"}); !errors.Is(err, model.ErrIllegalMove) {
		t.Errorf("moving out of turn = %v; want ErrIllegalMove", err)
	}

	moves, err := gs.GetPossibleMoves(gameID, "e7")
	if err != nil {
		t.Fatalf("GetPossibleMoves: %v", err)
	}
	if len(moves.Squares) != 2 {
		t.Errorf("e7 squares = %v; want two", moves.Squares)
	}
}

func TestConnections(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)
	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}

	connID, err := gs.RegisterConnection(gameID, nopConn{})
	if err != nil {
		t.Fatalf("RegisterConnection: %v", err)
	}
	game, err := gm.GetGame(gameID)
	if err != nil {
		t.Fatal(err)
	}
	if game.ConnectionCount() != 1 {
		t.Errorf("ConnectionCount = %d; want 1", game.ConnectionCount())
	}
	if err := gs.Send(gameID, connID, ws.Message{Type: ws.MessageTypeError}); err != nil {
		t.Errorf("Send: %v", err)
	}

	gs.UnregisterConnection(gameID, connID)
	if game.ConnectionCount() != 0 {
		t.Errorf("ConnectionCount = %d; want 0", game.ConnectionCount())
	}
}
