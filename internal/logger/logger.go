// Package logger configures the global zerolog logger from command line options.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a go-flags option group shared by every command.
type Logger struct {
	Level   string `long:"log-level"    env:"LOG_LEVEL"    description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"disabled" default:"info"`
	Format  string `long:"log-format"   env:"LOG_FORMAT"   description:"Log output format" choice:"console" choice:"json" default:"console"`
	NoColor bool   `long:"log-no-color" env:"LOG_NO_COLOR" description:"Disable colored console output"`
	Caller  bool   `long:"log-caller"   env:"LOG_CALLER"   description:"Include caller file and line"`
}

// Setup replaces the global logger. Output goes to stderr so stdout stays free
// for command results.
func (l Logger) Setup() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = l.New(os.Stderr)
}

// New builds a logger writing to w with the configured level and format.
func (l Logger) New(w io.Writer) zerolog.Logger {
	out := w
	if l.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    l.NoColor,
		}
	}

	ctx := zerolog.New(out).Level(ParseLevel(l.Level)).With().Timestamp()
	if l.Caller {
		ctx = ctx.Caller()
	}

	return ctx.Logger()
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
