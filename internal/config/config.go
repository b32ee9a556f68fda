// Package config reads server settings from flags, falling back to
// CHESS_* environment variables and then to built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr              string
	AllowOrigins      string
	LogLevel          string
	WSReadBufferSize  int
	WSWriteBufferSize int
}

func Default() Config {
	return Config{
		Addr:              ":3000",
		AllowOrigins:      "http://localhost:5173",
		LogLevel:          "info",
		WSReadBufferSize:  1024,
		WSWriteBufferSize: 1024,
	}
}

// Load parses args (without the program name).
func Load(args []string) (Config, error) {
	def := Default()
	fs := flag.NewFlagSet("chessmatch", flag.ContinueOnError)

	cfg := Config{}
	fs.StringVar(&cfg.Addr, "addr", getenv("CHESS_ADDR", def.Addr), "listen address")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", getenv("CHESS_ALLOW_ORIGINS", def.AllowOrigins), "comma-separated CORS origins")
	fs.StringVar(&cfg.LogLevel, "log-level", getenv("CHESS_LOG_LEVEL", def.LogLevel), "trace, debug, info, warn or error")
	fs.IntVar(&cfg.WSReadBufferSize, "ws-read-buffer", getenvInt("CHESS_WS_READ_BUFFER", def.WSReadBufferSize), "websocket read buffer in bytes")
	fs.IntVar(&cfg.WSWriteBufferSize, "ws-write-buffer", getenvInt("CHESS_WS_WRITE_BUFFER", def.WSWriteBufferSize), "websocket write buffer in bytes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.WSReadBufferSize <= 0 || c.WSWriteBufferSize <= 0 {
		return fmt.Errorf("%w: websocket buffers must be positive", ErrInvalidConfig)
	}
	return nil
}

func ParseLogLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
