package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(level LogLevel) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewStandardLogger(log.New(buf, "", 0), level, "[pushkit]"), buf
}

func TestStandardLogger(t *testing.T) {
	t.Run("respects the log level", func(t *testing.T) {
		l, buf := newBufferLogger(Warn)
		l.Debug("hidden")
		l.Info("hidden")
		l.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("formats key-value pairs", func(t *testing.T) {
		l, buf := newBufferLogger(Debug)
		l.Info("composed", "keys", 3)
		assert.Contains(t, buf.String(), "[INFO] composed keys=3")
	})

	t.Run("dangling key gets a placeholder", func(t *testing.T) {
		l, buf := newBufferLogger(Debug)
		l.Info("composed", "keys")
		assert.Contains(t, buf.String(), "keys=(no value)")
	})

	t.Run("log mode returns an independent logger", func(t *testing.T) {
		l, buf := newBufferLogger(Silent)
		verbose := l.LogMode(Debug)
		l.Error("still silent")
		verbose.Debug("now visible")
		assert.NotContains(t, buf.String(), "still silent")
		assert.Contains(t, buf.String(), "now visible")
	})
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Info("ignored", "k", "v")
		Discard.LogMode(Debug).Error("ignored")
	})
}
