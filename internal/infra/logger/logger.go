package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/rs/zerolog"
)

func SetupLogger(writers ...io.Writer) *zerolog.Logger {
	writers = append(writers, os.Stderr)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return &logger
}

// FromConfig builds the process logger. The returned closer releases the log file, if one was opened.
func FromConfig(cfg config.Log) (*zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	if cfg.File == "" {
		l := SetupLogger().Level(level)
		return &l, func() {}, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s file to write logs: %w", cfg.File, err)
	}

	l := SetupLogger(file).Level(level)
	return &l, func() { _ = file.Close() }, nil
}
