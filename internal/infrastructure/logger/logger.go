package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"samadhan-setu/services/reel-api/internal/config"
)

// New constructs the service logger from configuration.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if strings.ToLower(cfg.LogFormat) != "json" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	log := zerolog.New(out).With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger().
		Level(level)

	zerolog.SetGlobalLevel(level)
	return log
}
