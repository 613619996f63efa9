// Package stats derives read-only statistics from in-memory task lists.
// Everything here is a pure function over its inputs; nothing is cached.
package stats

import (
	"math"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
)

// Daily is the completion snapshot for a single calendar day.
type Daily struct {
	TotalToday int // tasks due today or without a deadline
	DoneToday  int
	Percent    int // round(100 * DoneToday / TotalToday), 0 when TotalToday is 0
	Late       int // scoped tasks not done with a deadline strictly before today
}

// ComputeDaily computes the day's completion snapshot. A member-role session
// only sees tasks assigned to itself; admins see the whole tenant. today is a
// domain.DateLayout date string.
func ComputeDaily(tasks []domain.Task, session *domain.Session, today string) Daily {
	scoped := Scope(tasks, session)

	var d Daily
	for _, t := range scoped {
		if t.Overdue(today) {
			d.Late++
		}
		if !t.DueToday(today) {
			continue
		}
		d.TotalToday++
		if t.Done() {
			d.DoneToday++
		}
	}
	if d.TotalToday > 0 {
		d.Percent = int(math.Round(100 * float64(d.DoneToday) / float64(d.TotalToday)))
	}
	return d
}

// Scope filters tasks to what the session actor may see: members get their
// own assignments, any other role gets the full tenant list.
func Scope(tasks []domain.Task, session *domain.Session) []domain.Task {
	if session == nil || session.Role != domain.RoleMember {
		return tasks
	}
	scoped := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssigneeID == session.ID {
			scoped = append(scoped, t)
		}
	}
	return scoped
}

// TotalDone counts completed tasks.
func TotalDone(tasks []domain.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Done() {
			n++
		}
	}
	return n
}

// DoneByAssignee counts completed tasks per assignee ID.
func DoneByAssignee(tasks []domain.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		if t.Done() {
			counts[t.AssigneeID]++
		}
	}
	return counts
}
