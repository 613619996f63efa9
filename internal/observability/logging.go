// Package observability provides context-scoped structured logging helpers.
package observability

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/teamdesk/internal/tenant"
)

// LogContext holds structured logging context information.
type LogContext struct {
	TenantID string
	UserID   string
	Op       string
}

type logContextKeyType string

const logContextKey logContextKeyType = "log-context"

// WithTenantID adds a tenant ID to the context.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	lc := extractLogContext(ctx)
	lc.TenantID = tenantID
	return context.WithValue(ctx, logContextKey, lc)
}

// WithUserID adds a user ID to the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	lc := extractLogContext(ctx)
	lc.UserID = userID
	return context.WithValue(ctx, logContextKey, lc)
}

// WithOp adds an operation name to the context.
func WithOp(ctx context.Context, op string) context.Context {
	lc := extractLogContext(ctx)
	lc.Op = op
	return context.WithValue(ctx, logContextKey, lc)
}

func extractLogContext(ctx context.Context) LogContext {
	if lc, ok := ctx.Value(logContextKey).(LogContext); ok {
		return lc
	}
	return LogContext{}
}

func getLogAttrs(ctx context.Context) []slog.Attr {
	lc := extractLogContext(ctx)
	attrs := []slog.Attr{}

	// An explicit WithTenantID wins over a tenant carried in the context.
	tenantID := lc.TenantID
	if tenantID == "" {
		if t, err := tenant.FromContext(ctx); err == nil {
			tenantID = t.ID
		}
	}
	if tenantID != "" {
		attrs = append(attrs, slog.String("tenant.id", tenantID))
	}
	if lc.UserID != "" {
		attrs = append(attrs, slog.String("user.id", lc.UserID))
	}
	if lc.Op != "" {
		attrs = append(attrs, slog.String("op", lc.Op))
	}

	return attrs
}

// InfoContext logs an info message with context information.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelInfo, msg, allAttrs...)
}

// WarnContext logs a warning message with context information.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelWarn, msg, allAttrs...)
}

// ErrorContext logs an error message with context information.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelError, msg, allAttrs...)
}

// DebugContext logs a debug message with context information.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelDebug, msg, allAttrs...)
}
