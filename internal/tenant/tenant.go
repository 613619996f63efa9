// Package tenant carries the tenant identity through contexts.
package tenant

import (
	"context"
	"errors"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
)

// Tenant is an isolated company-scoped data partition. All members, tasks,
// check-ins and settings belong to exactly one tenant.
type Tenant struct {
	ID   string
	Name string
	Plan domain.Plan
}

type contextKey string

const tenantContextKey contextKey = "tenant"

// ErrNoTenant is returned when no tenant is found in context.
var ErrNoTenant = errors.New("no tenant in context")

// NewID generates a fresh tenant (company) identifier.
func NewID() string {
	return domain.NewID(domain.IDPrefixCompany)
}

// WithTenant stores a tenant in the context.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey, t)
}

// FromContext retrieves a tenant from the context.
func FromContext(ctx context.Context) (*Tenant, error) {
	t, ok := ctx.Value(tenantContextKey).(*Tenant)
	if !ok {
		return nil, ErrNoTenant
	}
	return t, nil
}

// FromSession derives the tenant partition of an authenticated session.
func FromSession(s *domain.Session) *Tenant {
	if s == nil {
		return nil
	}
	return &Tenant{ID: s.CompanyID, Plan: s.Plan}
}
