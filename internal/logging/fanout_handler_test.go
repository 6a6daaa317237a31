package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestTeeHandlerCollapses(t *testing.T) {
	if _, ok := TeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}

	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := TeeHandler(nil, inner, nil); h != inner {
		t.Fatal("expected single non-nil handler to be returned unwrapped")
	}
}

func TestTeeHandlerEnabledWhenAnyHandlerIs(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := TeeHandler(
		slog.NewJSONHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info to be enabled through the second handler")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug to be disabled")
	}
}

func TestTeeHandlerRoutesByLevel(t *testing.T) {
	var consoleBuf, fileBuf bytes.Buffer
	logger := slog.New(TeeHandler(
		slog.NewJSONHandler(&consoleBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&fileBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	logger.Debug("debug only")
	if consoleBuf.Len() != 0 {
		t.Fatal("info handler should not receive debug records")
	}
	if fileBuf.Len() == 0 {
		t.Fatal("debug handler should receive debug records")
	}

	logger.Info("both", slog.String("attr", "value"))
	if !bytes.Contains(consoleBuf.Bytes(), []byte(`"attr"`)) || !bytes.Contains(fileBuf.Bytes(), []byte(`"attr"`)) {
		t.Fatal("expected attr in both outputs")
	}
}

func TestTeeHandlerWithAttrsAndGroup(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := TeeHandler(slog.NewJSONHandler(&buf1, nil), slog.NewJSONHandler(&buf2, nil))

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("key", "value")}).WithGroup("pipe"))
	logger.Info("test", slog.String("field", "value"))

	for i, buf := range []*bytes.Buffer{&buf1, &buf2} {
		if !bytes.Contains(buf.Bytes(), []byte(`"key"`)) {
			t.Errorf("expected key attribute in buffer %d", i)
		}
		if !bytes.Contains(buf.Bytes(), []byte(`"pipe":{"field"`)) {
			t.Errorf("expected grouped field in buffer %d: %s", i, buf.String())
		}
	}
}
