// Package quota enforces per-plan resource limits for tenants.
package quota

import (
	"fmt"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
)

// Unlimited marks a limit that is never enforced.
const Unlimited = -1

// LimitError indicates a plan limit has been reached.
type LimitError struct {
	Limit   string
	Plan    domain.Plan
	Current int
	Maximum int
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("%s plan limit reached: %s (%d/%d)", e.Plan, e.Limit, e.Current, e.Maximum)
}

// PlanLimits defines resource limits for a subscription plan.
type PlanLimits struct {
	MaxMembers int // Maximum team members per tenant; Unlimited disables the check
}

// PlanQuotas provides preset limits per tier. The free tier caps a team at
// two members; the check runs only when a member is added, so data written
// by other means may exceed it.
var PlanQuotas = map[domain.Plan]PlanLimits{
	domain.PlanFree: {MaxMembers: 2},
	domain.PlanPro:  {MaxMembers: Unlimited},
}

// Manager answers quota questions for tenants.
type Manager struct {
	quotas map[domain.Plan]PlanLimits
}

// NewManager creates a quota manager with the preset plan limits.
func NewManager() *Manager {
	return &Manager{quotas: PlanQuotas}
}

// CanAddMember reports whether a tenant on the given plan may add a member
// beyond currentCount. A nil return means the addition is allowed.
func (m *Manager) CanAddMember(plan domain.Plan, currentCount int) error {
	limits, ok := m.quotas[plan]
	if !ok {
		// Unknown plans fall back to the most restrictive tier.
		limits = m.quotas[domain.PlanFree]
	}
	if limits.MaxMembers == Unlimited {
		return nil
	}
	if currentCount >= limits.MaxMembers {
		return &LimitError{
			Limit:   "team members",
			Plan:    plan,
			Current: currentCount,
			Maximum: limits.MaxMembers,
		}
	}
	return nil
}
