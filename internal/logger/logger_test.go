package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	l := New(int(slog.LevelWarn))

	assert.NotNil(t, l.Logger)
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestWith_ReturnsChild(t *testing.T) {
	l := New(0)
	child := l.With("component", "test")

	assert.NotSame(t, l, child)
	assert.NotSame(t, l.Logger, child.Logger)
}
