package logging

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	PlayerKey   string = "player"
	SequenceKey string = "sequence"
	HandsKey    string = "hands"
	TimeKey     string = "time"
	HandIDKey   string = "handId"
	StrategyKey string = "strategy"
	SinkKey     string = "sink"
)

// IsColorLoggingEnabled reads COLORIZE_LOG. Colors stay on unless the value
// parses as false.
func IsColorLoggingEnabled() bool {
	enabled, err := strconv.ParseBool(os.Getenv("COLORIZE_LOG"))
	return err != nil || enabled
}

// GetZeroLogger returns a console logger tagged with the given name. Output
// goes to stdout when out is nil.
func GetZeroLogger(name string, out io.Writer) *zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        stdoutIfNil(out),
		NoColor:    !IsColorLoggingEnabled(),
		TimeFormat: time.RFC3339,
	}
	return named(zerolog.New(console), name)
}

// GetJSONLogger writes one JSON object per line, for records read by another
// process rather than a terminal.
func GetJSONLogger(name string, out io.Writer) *zerolog.Logger {
	return named(zerolog.New(stdoutIfNil(out)), name)
}

func named(base zerolog.Logger, name string) *zerolog.Logger {
	logger := base.With().Timestamp().Str("logger", name).Logger()
	return &logger
}

func stdoutIfNil(out io.Writer) io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}
