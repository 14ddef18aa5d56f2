package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	consoleTimeFormat = "15:04:05.000000"
)

type Config struct {
	Level  string // zerolog level name, "" means info.
	Format string // FormatConsole or FormatJSON, "" means console.
	Writer io.Writer
}

// New builds the logger described by cfg. Writer defaults to stderr so
// that command output on stdout isn't mixed with logs.
func New(cfg Config) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(cfg.Level); err != nil {
			return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
		}
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	switch cfg.Format {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
