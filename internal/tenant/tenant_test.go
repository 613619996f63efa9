package tenant

import (
	"context"
	"strings"
	"testing"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
)

func TestWithTenant(t *testing.T) {
	ctx := context.Background()
	ten := &Tenant{ID: "c_1", Name: "Atlas", Plan: domain.PlanFree}

	ctx = WithTenant(ctx, ten)
	retrieved, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if retrieved.ID != "c_1" {
		t.Errorf("expected ID c_1, got %s", retrieved.ID)
	}
}

func TestFromContextNoTenant(t *testing.T) {
	_, err := FromContext(context.Background())
	if err != ErrNoTenant {
		t.Errorf("expected ErrNoTenant, got %v", err)
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	if !strings.HasPrefix(id, "c_") {
		t.Errorf("expected c_ prefix, got %s", id)
	}
}

func TestFromSession(t *testing.T) {
	if FromSession(nil) != nil {
		t.Error("nil session should yield nil tenant")
	}

	ten := FromSession(&domain.Session{CompanyID: "c_1", Plan: domain.PlanPro})
	if ten.ID != "c_1" || ten.Plan != domain.PlanPro {
		t.Errorf("unexpected tenant: %+v", ten)
	}
}
