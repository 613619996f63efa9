package domain

// DateLayout is the calendar-date format used for deadlines and check-ins.
// ISO dates compare correctly as strings, which the late-task computation
// relies on.
const DateLayout = "2006-01-02"

// Task is a tenant-scoped unit of work. Deadline is a DateLayout string and
// may be empty, in which case the task counts toward every day's subset.
type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	AssigneeID   string       `json:"assigneeId"`
	Deadline     string       `json:"deadline"`
	Priority     Priority     `json:"priority"`
	Status       TaskStatus   `json:"status"`
	Notes        string       `json:"notes"`
	TimeEstimate TimeEstimate `json:"timeEstimate"`
	CreatedAt    int64        `json:"createdAt"`
	CompanyID    string       `json:"companyId"`
}

// Done reports whether the task is completed.
func (t Task) Done() bool {
	return t.Status == StatusDone
}

// DueToday reports whether the task belongs to the today-subset: deadline
// equal to today or no deadline at all.
func (t Task) DueToday(today string) bool {
	return t.Deadline == today || t.Deadline == ""
}

// Overdue reports whether the task is not done and its deadline is strictly
// before today. Tasks without a deadline are never overdue.
func (t Task) Overdue(today string) bool {
	return !t.Done() && t.Deadline != "" && t.Deadline < today
}
