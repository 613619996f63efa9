package quota

import (
	"errors"
	"testing"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
)

func TestPlanQuotasExist(t *testing.T) {
	for _, plan := range []domain.Plan{domain.PlanFree, domain.PlanPro} {
		if _, ok := PlanQuotas[plan]; !ok {
			t.Errorf("plan %s not found in PlanQuotas", plan)
		}
	}
}

func TestFreePlanCapsAtTwoMembers(t *testing.T) {
	m := NewManager()

	if err := m.CanAddMember(domain.PlanFree, 0); err != nil {
		t.Errorf("expected no error at 0 members, got %v", err)
	}
	if err := m.CanAddMember(domain.PlanFree, 1); err != nil {
		t.Errorf("expected no error at 1 member, got %v", err)
	}

	err := m.CanAddMember(domain.PlanFree, 2)
	if err == nil {
		t.Fatal("expected error at 2 members")
	}

	var limitErr *LimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected *LimitError, got %T", err)
	}
	if limitErr.Limit != "team members" {
		t.Errorf("expected 'team members' limit, got %s", limitErr.Limit)
	}
	if limitErr.Current != 2 || limitErr.Maximum != 2 {
		t.Errorf("unexpected counts: %d/%d", limitErr.Current, limitErr.Maximum)
	}
}

func TestProPlanIsUnlimited(t *testing.T) {
	m := NewManager()

	if err := m.CanAddMember(domain.PlanPro, 1000); err != nil {
		t.Errorf("expected no error on pro plan, got %v", err)
	}
}

func TestUnknownPlanFallsBackToFree(t *testing.T) {
	m := NewManager()

	if err := m.CanAddMember(domain.Plan("enterprise"), 2); err == nil {
		t.Error("unknown plan should use the most restrictive limits")
	}
}
