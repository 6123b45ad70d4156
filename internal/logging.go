package internal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
)

// InitLogging points the global logger at stderr, since stdout carries
// command output, and applies the configured format and level.
func InitLogging(cfg config.LoggingConfig) {
	log.Logger = NewLogger(os.Stderr, cfg)
}

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, cfg config.LoggingConfig) zerolog.Logger {
	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
