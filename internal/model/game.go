package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessmatch-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

var ErrConnectionExists = errors.New("connection already registered")

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// The connections watching a specific game
type GameConnections struct {
	connections map[string]Conn // connection id -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // one writer per game at a time
	sentTurn    int        // guarded by writeMu
}

// Game wraps one ChessMatch for concurrent callers and pushes the
// resulting state to every attached connection.
type Game struct {
	ID          string
	mu          sync.Mutex
	match       *ChessMatch
	lastMove    *SimpleMove
	sound       string
	connections *GameConnections
}

// GameState is the snapshot a renderer needs after every call.
type GameState struct {
	Sound               string         `json:"sound"`
	Board               [][]*Piece     `json:"board"`
	Turn                int            `json:"turn"`
	ToMove              Color          `json:"toMove"`
	IsCheck             bool           `json:"isCheck"`
	IsCheckMate         bool           `json:"isCheckMate"`
	Winner              *Color         `json:"winner"`
	EnPassantVulnerable *string        `json:"enPassantVulnerable"`
	CapturedPieces      CapturedPieces `json:"capturedPieces"`
	LastMove            *SimpleMove    `json:"lastMove"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		match:       NewChessMatch(),
		connections: NewGameConnections(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) state() GameState {
	state := GameState{
		Sound:          g.sound,
		Board:          g.match.Pieces(),
		Turn:           g.match.Turn(),
		ToMove:         g.match.CurrentPlayer(),
		IsCheck:        g.match.Check(),
		IsCheckMate:    g.match.CheckMate(),
		CapturedPieces: g.match.CapturedPieces(),
		LastMove:       g.lastMove,
	}
	if winner, ok := g.match.Winner(); ok {
		state.Winner = &winner
	}
	if ep := g.match.EnPassantVulnerable(); ep != nil {
		square := ep.Position.getSquareNotation()
		state.EnPassantVulnerable = &square
	}
	return state
}

// PossibleMoves returns the highlight mask for the piece on from.
func (g *Game) PossibleMoves(from string) (PossibleMoves, error) {
	source, err := ParsePosition(from)
	if err != nil {
		return PossibleMoves{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	mask, err := g.match.PossibleMoves(source)
	if err != nil {
		return PossibleMoves{}, err
	}
	return newPossibleMoves(source, mask), nil
}

// MakeMove validates and commits move, then broadcasts the new state.
func (g *Game) MakeMove(move MoveRequest) (GameState, error) {
	source, target, err := move.Positions()
	if err != nil {
		return GameState{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	log.Debugf("game %s: move %s-%s", g.ID, move.From, move.To)

	captured, err := g.match.PerformMove(source, target)
	if err != nil {
		if !errors.Is(err, ErrIllegalMove) {
			log.Errorf("game %s: %v", g.ID, err)
		}
		return GameState{}, err
	}

	switch {
	case g.match.CheckMate():
		g.sound = "checkmate"
	case g.match.Check():
		g.sound = "check"
	case captured != nil:
		g.sound = "capture"
	default:
		g.sound = "move"
	}
	g.lastMove = &SimpleMove{From: source.getSquareNotation(), To: target.getSquareNotation()}

	state := g.state()
	go g.broadcastState(state)
	return state, nil
}

func (g *Game) RegisterConnection(connID string, conn Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[connID]; exists {
		g.connections.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrConnectionExists, connID)
	}
	g.connections.connections[connID] = conn
	g.connections.mu.Unlock()
	log.Infof("game %s: registered connection %s", g.ID, connID)

	// Send initial state
	go g.broadcastState(g.GetState())
	return nil
}

func (g *Game) UnregisterConnection(connID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[connID]; exists {
		log.Infof("game %s: unregistered connection %s", g.ID, connID)
		delete(g.connections.connections, connID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// Send writes msg to a single connection.
func (g *Game) Send(connID string, msg ws.Message) error {
	g.connections.mu.RLock()
	conn, ok := g.connections.connections[connID]
	g.connections.mu.RUnlock()
	if !ok {
		return fmt.Errorf("connection %s not registered", connID)
	}

	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	return conn.WriteJSON(msg)
}

func (g *Game) broadcastState(state GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	// Copy the connections so no lock is held while writing
	g.connections.mu.RLock()
	activeConnections := make(map[string]Conn, len(g.connections.connections))
	for connID, conn := range g.connections.connections {
		activeConnections[connID] = conn
	}
	g.connections.mu.RUnlock()

	g.connections.writeMu.Lock()
	if state.Turn < g.connections.sentTurn {
		// a newer state already went out
		g.connections.writeMu.Unlock()
		return
	}
	g.connections.sentTurn = state.Turn
	var failed []string
	for connID, conn := range activeConnections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: failed to send state to %s: %v", g.ID, connID, err)
			failed = append(failed, connID)
		}
	}
	g.connections.writeMu.Unlock()

	for _, connID := range failed {
		g.UnregisterConnection(connID)
	}
}
