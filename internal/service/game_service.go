package service

import (
	"fmt"

	"github.com/benbeisheim/chessmatch-backend/internal/model"
	"github.com/benbeisheim/chessmatch-backend/internal/ws"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) GetPossibleMoves(gameID string, from string) (model.PossibleMoves, error) {
	return gs.gameManager.PossibleMoves(gameID, from)
}

func (gs *GameService) HandleMove(gameID string, move model.MoveRequest) (model.GameState, error) {
	return gs.gameManager.MakeMove(gameID, move)
}

// RegisterConnection attaches conn to the game and returns the id it was
// registered under.
func (gs *GameService) RegisterConnection(gameID string, conn model.Conn) (string, error) {
	connID := uuid.NewString()
	if err := gs.gameManager.RegisterConnection(gameID, connID, conn); err != nil {
		return "", fmt.Errorf("failed to register connection: %w", err)
	}
	return connID, nil
}

func (gs *GameService) UnregisterConnection(gameID string, connID string) {
	gs.gameManager.UnregisterConnection(gameID, connID)
}

func (gs *GameService) Send(gameID string, connID string, msg ws.Message) error {
	return gs.gameManager.Send(gameID, connID, msg)
}
