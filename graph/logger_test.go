package graph

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		if _, ok := l2.(NopLogger); !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("Error logs with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Error("node construction failed", "type", "Response")
		output := buf.String()
		if !strings.Contains(output, "node construction failed") {
			t.Errorf("expected message in output, got: %s", output)
		}
		if !strings.Contains(output, "type=Response") {
			t.Errorf("expected type=Response attribute, got: %s", output)
		}
	})

	t.Run("With carries attributes forward", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		child := adapter.With("component", "coerce")
		child.Info("coerced node")
		if !strings.Contains(buf.String(), "component=coerce") {
			t.Errorf("expected component attribute, got: %s", buf.String())
		}
	})
}

func TestSetLogger(t *testing.T) {
	t.Run("nil restores no-op default", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		SetLogger(NewSlogAdapter(slog.New(handler)))
		defer SetLogger(nil)

		// A failed construction logs through the configured logger.
		_, err := TypeParameter.Coerce(map[string]any{"name": "x", "in": "nowhere"})
		if err == nil {
			t.Fatal("expected coercion failure")
		}
		if !strings.Contains(buf.String(), "node construction failed") {
			t.Errorf("expected construction log, got: %s", buf.String())
		}

		SetLogger(nil)
		buf.Reset()
		_, _ = TypeParameter.Coerce(map[string]any{"name": "x", "in": "nowhere"})
		if buf.Len() != 0 {
			t.Errorf("expected no output after reset, got: %s", buf.String())
		}
	})
}
