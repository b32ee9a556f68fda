package main

import (
	"os"
	"strings"

	"github.com/benbeisheim/chessmatch-backend/internal/config"
	"github.com/benbeisheim/chessmatch-backend/internal/controller"
	"github.com/benbeisheim/chessmatch-backend/internal/middleware"
	"github.com/benbeisheim/chessmatch-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	log.SetLevel(level)

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	app := newApp(cfg, gameService)

	log.Infof("listening on %s", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}

func newApp(cfg config.Config, gameService *service.GameService) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: cfg.AllowOrigins != "*",
	}))

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Get("/ws/game/:gameId",
		middleware.ValidateGameID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  cfg.WSReadBufferSize,
			WriteBufferSize: cfg.WSWriteBufferSize,
			Origins:         splitOrigins(cfg.AllowOrigins),
		}),
	)

	// Set up REST routes
	gameRoutes := app.Group("/api/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", middleware.ValidateGameID(), gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", middleware.ValidateGameID(), gameController.GetPossibleMoves)
	gameRoutes.Post("/:gameId/move", middleware.ValidateGameID(), gameController.MakeMove)

	return app
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
