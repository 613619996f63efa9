package domain

// Plan enumerates subscription tiers.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Role enumerates login-capable account roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Priority enumerates task priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// TaskStatus enumerates task states. StatusInProgress is declared for data
// fidelity but no operation in this system produces it: tasks are created as
// StatusTodo and toggled between StatusTodo and StatusDone.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// TimeEstimate enumerates coarse task effort buckets.
type TimeEstimate string

const (
	EstimateLittle TimeEstimate = "little"
	EstimateMedium TimeEstimate = "medium"
	EstimateMuch   TimeEstimate = "much"
)

// Feeling enumerates daily check-in moods.
type Feeling string

const (
	FeelingGood        Feeling = "good"
	FeelingTired       Feeling = "tired"
	FeelingOverwhelmed Feeling = "overwhelmed"
)
