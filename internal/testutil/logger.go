package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/gophtasks-server/internal/logger"
)

// MakeNoopLogger returns a Logger that discards every record.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
