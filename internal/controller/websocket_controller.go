package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessmatch-backend/internal/model"
	"github.com/benbeisheim/chessmatch-backend/internal/service"
	"github.com/benbeisheim/chessmatch-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)

	connID, err := wsc.gameService.RegisterConnection(gameID, c)
	if err != nil {
		log.Warnf("game %s: %v", gameID, err)
		c.Close()
		return
	}
	// Clean up when connection closes
	defer wsc.gameService.UnregisterConnection(gameID, connID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: connection %s closed: %v", gameID, connID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(gameID, connID, fmt.Errorf("parse error: %w", err))
			continue
		}

		reply, err := wsc.handleMessage(gameID, msg)
		if err != nil {
			wsc.sendError(gameID, connID, err)
			continue
		}
		if reply != nil {
			if err := wsc.gameService.Send(gameID, connID, *reply); err != nil {
				log.Warnf("game %s: write to %s: %v", gameID, connID, err)
			}
		}
	}
}

// handleMessage dispatches one client message. Moves answer through the
// gameState broadcast, so only queries return a reply.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		_, err := wsc.gameService.HandleMove(gameID, move)
		return nil, err

	case ws.MessageTypePossibleMoves:
		var req model.PossibleMovesRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		moves, err := wsc.gameService.GetPossibleMoves(gameID, req.From)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypePossibleMoves, moves)
		if err != nil {
			return nil, err
		}
		return &reply, nil

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(gameID, connID string, cause error) {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: cause.Error()})
	if err != nil {
		return
	}
	if err := wsc.gameService.Send(gameID, connID, msg); err != nil {
		log.Warnf("game %s: write error to %s: %v", gameID, connID, err)
	}
}
