package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the harness run identifier.
	FieldRunID = "run_id"
	// FieldImageSet is the standardized structured logging key for the image set being captured.
	FieldImageSet = "image_set"
	// FieldCommand is the standardized structured logging key for pipe commands.
	FieldCommand = "command"
	// FieldResponse is the standardized structured logging key for pipe responses.
	FieldResponse = "response"
)

type contextKey string

const (
	runIDKey    contextKey = "run_id"
	imageSetKey contextKey = "image_set"
)

// NewRunID returns a fresh identifier correlating every log line of one harness run.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID annotates context with the harness run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext returns the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(runIDKey).(string)
	return v, ok && v != ""
}

// WithImageSet annotates context with the image set name.
func WithImageSet(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, imageSetKey, name)
}

// ImageSetFromContext returns the image set name if present.
func ImageSetFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(imageSetKey).(string)
	return v, ok && v != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if name, ok := ImageSetFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldImageSet, name))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
