package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/thomaskilian/Teacup-Firmware/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer       io.Writer
	Console      io.Writer
	Folder       string
	Level        zerolog.Level
	ConsoleLevel zerolog.Level
	NoColor      bool
}

// New creates a new context with a logger attached
// For production: provide fs and leave Writer nil for rotated file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
// Console, when set, additionally receives human readable output at ConsoleLevel and above
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		storageManager := storage.New(fs)
		logFile, err := storageManager.GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	}

	if config.Console != nil {
		console := zerolog.ConsoleWriter{Out: config.Console, NoColor: config.NoColor}
		writer = zerolog.MultiLevelWriter(writer, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: console},
			Level:  config.ConsoleLevel,
		})
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("folder", config.Folder).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return InfoLevel
	}
	return level
}
