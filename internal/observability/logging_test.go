package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
	"git.home.luguber.info/inful/teamdesk/internal/tenant"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestContextFieldsAppearInOutput(t *testing.T) {
	buf := captureLogs(t)

	ctx := context.Background()
	ctx = WithTenantID(ctx, "c_1")
	ctx = WithUserID(ctx, "u_1")
	ctx = WithOp(ctx, "add_member")
	InfoContext(ctx, "member added")

	out := buf.String()
	for _, want := range []string{"tenant.id=c_1", "user.id=u_1", "op=add_member", "member added"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %s", want, out)
		}
	}
}

func TestTenantFromContextFallback(t *testing.T) {
	buf := captureLogs(t)

	ctx := tenant.WithTenant(context.Background(), &tenant.Tenant{ID: "c_9", Plan: domain.PlanFree})
	InfoContext(ctx, "reloaded")

	if !strings.Contains(buf.String(), "tenant.id=c_9") {
		t.Errorf("expected tenant ID from context tenant, got %s", buf.String())
	}
}

func TestExplicitTenantIDWinsOverContextTenant(t *testing.T) {
	buf := captureLogs(t)

	ctx := tenant.WithTenant(context.Background(), &tenant.Tenant{ID: "c_9"})
	ctx = WithTenantID(ctx, "c_1")
	InfoContext(ctx, "scoped")

	out := buf.String()
	if !strings.Contains(out, "tenant.id=c_1") || strings.Contains(out, "c_9") {
		t.Errorf("expected explicit tenant ID to win, got %s", out)
	}
}

func TestEmptyContextAddsNoFields(t *testing.T) {
	buf := captureLogs(t)

	InfoContext(context.Background(), "plain")

	out := buf.String()
	if strings.Contains(out, "tenant.id") || strings.Contains(out, "user.id") || strings.Contains(out, "op=") {
		t.Errorf("expected no context fields, got %s", out)
	}
}

func TestAllLevels(t *testing.T) {
	buf := captureLogs(t)

	ctx := WithTenantID(context.Background(), "c_1")
	DebugContext(ctx, "debug message")
	InfoContext(ctx, "info message")
	WarnContext(ctx, "warn message")
	ErrorContext(ctx, "error message")

	out := buf.String()
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if !strings.Contains(out, "level="+level) {
			t.Errorf("expected a %s record, got %s", level, out)
		}
	}
}
