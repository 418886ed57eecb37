package loader

import (
	"context"
	"log/slog"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns a short lowercase name of the level.
func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents an image loading progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// LogProgress returns a progress callback that forwards events to logger.
// Verbose events are logged at debug level, successes at info.
func LogProgress(logger *slog.Logger) func(ProgressEvent) {
	return func(event ProgressEvent) {
		level := slog.LevelInfo
		switch event.Level {
		case LevelVerbose:
			level = slog.LevelDebug
		case LevelWarning:
			level = slog.LevelWarn
		case LevelError:
			level = slog.LevelError
		}
		logger.Log(context.Background(), level, event.Message, "level", event.Level.String())
	}
}
