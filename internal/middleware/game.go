package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ValidateGameID rejects requests whose :gameId is not a UUID before they
// reach a handler.
func ValidateGameID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}

		parsed, err := uuid.Parse(gameID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID must be a UUID",
			})
		}

		// Store the canonical form so handlers and the websocket agree
		c.Locals("gameID", parsed.String())
		return c.Next()
	}
}
