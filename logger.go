package vector

import (
	"context"
	"log/slog"
)

// Logging helpers with consistent field names. All of them are cheap when
// the level is disabled.

func (e *env[T]) logGrow(from, to int, err error) {
	if err != nil {
		e.logger.LogAttrs(context.Background(), slog.LevelError, "vector grow failed",
			slog.Int("from", from),
			slog.Int("to", to),
			slog.Any("error", err),
		)
		return
	}
	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "vector grew",
		slog.Int("from", from),
		slog.Int("to", to),
	)
}

func (e *env[T]) logShrink(from, to int) {
	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "vector shrank",
		slog.Int("from", from),
		slog.Int("to", to),
	)
}

// logTransition records a hybrid container switching between its inline
// buffer and a heap block.
func (e *env[T]) logTransition(large bool, capacity int) {
	state := "small"
	if large {
		state = "large"
	}
	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "vector storage switched",
		slog.String("state", state),
		slog.Int("capacity", capacity),
	)
}
