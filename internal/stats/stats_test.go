package stats

import (
	"testing"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
)

const (
	today     = "2026-09-01"
	yesterday = "2026-08-31"
)

func adminSession() *domain.Session {
	return &domain.Session{ID: "u_admin", Role: domain.RoleAdmin, CompanyID: "c_1"}
}

func TestComputeDailyExample(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t_1", Deadline: today, Status: domain.StatusDone},
		{ID: "t_2", Deadline: today, Status: domain.StatusTodo},
		{ID: "t_3", Deadline: yesterday, Status: domain.StatusTodo},
	}

	d := ComputeDaily(tasks, adminSession(), today)

	if d.TotalToday != 2 {
		t.Errorf("TotalToday = %d, want 2", d.TotalToday)
	}
	if d.DoneToday != 1 {
		t.Errorf("DoneToday = %d, want 1", d.DoneToday)
	}
	if d.Percent != 50 {
		t.Errorf("Percent = %d, want 50", d.Percent)
	}
	if d.Late != 1 {
		t.Errorf("Late = %d, want 1", d.Late)
	}
}

func TestComputeDailyEmptySubset(t *testing.T) {
	d := ComputeDaily(nil, adminSession(), today)
	if d.Percent != 0 {
		t.Errorf("Percent = %d, want 0 on empty subset", d.Percent)
	}

	// A lone future task keeps the today-subset empty too.
	tasks := []domain.Task{{ID: "t_1", Deadline: "2026-09-10", Status: domain.StatusTodo}}
	d = ComputeDaily(tasks, adminSession(), today)
	if d.TotalToday != 0 || d.Percent != 0 {
		t.Errorf("got TotalToday=%d Percent=%d, want 0/0", d.TotalToday, d.Percent)
	}
}

func TestComputeDailyNoDeadlineCountsToday(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t_1", Deadline: "", Status: domain.StatusDone},
		{ID: "t_2", Deadline: "", Status: domain.StatusDone},
		{ID: "t_3", Deadline: "", Status: domain.StatusTodo},
	}

	d := ComputeDaily(tasks, adminSession(), today)
	if d.TotalToday != 3 || d.DoneToday != 2 {
		t.Fatalf("got %d/%d, want 3 total 2 done", d.TotalToday, d.DoneToday)
	}
	if d.Percent != 67 {
		t.Errorf("Percent = %d, want 67 (round of 66.6)", d.Percent)
	}
	if d.Late != 0 {
		t.Errorf("Late = %d, tasks without deadline are never late", d.Late)
	}
}

func TestComputeDailyMemberScoping(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t_1", AssigneeID: "u_m", Deadline: today, Status: domain.StatusDone},
		{ID: "t_2", AssigneeID: "u_other", Deadline: today, Status: domain.StatusTodo},
		{ID: "t_3", AssigneeID: "u_other", Deadline: yesterday, Status: domain.StatusTodo},
	}
	member := &domain.Session{ID: "u_m", Role: domain.RoleMember}

	d := ComputeDaily(tasks, member, today)
	if d.TotalToday != 1 || d.DoneToday != 1 || d.Percent != 100 {
		t.Errorf("member scoping wrong: %+v", d)
	}
	if d.Late != 0 {
		t.Errorf("other members' late tasks must not leak in: Late = %d", d.Late)
	}

	// Admin sees the full picture.
	d = ComputeDaily(tasks, adminSession(), today)
	if d.TotalToday != 2 || d.Late != 1 {
		t.Errorf("admin scope wrong: %+v", d)
	}
}

func TestComputeDailyLateIgnoresTodaySubset(t *testing.T) {
	// A late task is counted among all scoped tasks, not just today's.
	tasks := []domain.Task{
		{ID: "t_1", Deadline: "2026-08-01", Status: domain.StatusInProgress},
		{ID: "t_2", Deadline: today, Status: domain.StatusDone},
	}

	d := ComputeDaily(tasks, adminSession(), today)
	if d.Late != 1 {
		t.Errorf("Late = %d, want 1", d.Late)
	}
	if d.TotalToday != 1 {
		t.Errorf("TotalToday = %d, want 1", d.TotalToday)
	}
}

func TestScopeNilSessionSeesAll(t *testing.T) {
	tasks := []domain.Task{{ID: "t_1"}, {ID: "t_2"}}
	if got := Scope(tasks, nil); len(got) != 2 {
		t.Errorf("nil session should see all tasks, got %d", len(got))
	}
}

func TestDoneByAssignee(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t_1", AssigneeID: "u_a", Status: domain.StatusDone},
		{ID: "t_2", AssigneeID: "u_a", Status: domain.StatusDone},
		{ID: "t_3", AssigneeID: "u_b", Status: domain.StatusDone},
		{ID: "t_4", AssigneeID: "u_b", Status: domain.StatusTodo},
	}

	counts := DoneByAssignee(tasks)
	if counts["u_a"] != 2 || counts["u_b"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	if TotalDone(tasks) != 3 {
		t.Errorf("TotalDone = %d, want 3", TotalDone(tasks))
	}
}
