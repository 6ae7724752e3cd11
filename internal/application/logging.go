package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/example/extension-assistant/internal/logging"
	"github.com/example/extension-assistant/internal/persistence"
)

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

func serviceLogger(ctx context.Context, base *slog.Logger, serviceName, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = base
	}
	if logger == nil {
		logger = slog.Default()
	}

	pairs := []any{"service", serviceName}
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	if len(attrs) > 0 {
		pairs = append(pairs, attrs...)
	}
	return logger.With(pairs...)
}

// Outcome classifies a command result for invocation logging.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, ErrNotAuthorized) {
		return "permission"
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return "validation"
	}
	return "internal"
}

// ErrorKind maps a failure to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return string(domainErr.Kind)
	}
	switch {
	case errors.Is(err, persistence.ErrCorrupt):
		return "store_corrupt"
	case errors.Is(err, persistence.ErrIO):
		return "store_io"
	case errors.Is(err, persistence.ErrNotFound):
		return "not_found"
	}
	return "unexpected"
}
