// Package session holds the authenticated session identity and the tenant's
// in-memory collections, mediating every mutation through the persistence
// adapter. Mutations update memory synchronously and resave the full affected
// collection; statistics are recomputed on demand and never cached.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
	"git.home.luguber.info/inful/teamdesk/internal/metrics"
	"git.home.luguber.info/inful/teamdesk/internal/observability"
	"git.home.luguber.info/inful/teamdesk/internal/quota"
	"git.home.luguber.info/inful/teamdesk/internal/stats"
	"git.home.luguber.info/inful/teamdesk/internal/store"
	"git.home.luguber.info/inful/teamdesk/internal/tenant"
)

// ErrInvalidCredentials is returned by Login when no registry entry matches
// the email/password pair exactly. It is the only user-facing error kind.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoSession is returned by operations that require an authenticated actor.
var ErrNoSession = errors.New("no active session")

// ErrNotAdmin is returned when a non-admin session attempts an admin-only
// operation.
var ErrNotAdmin = errors.New("operation requires the admin role")

// ErrTaskNotFound is returned when a task ID does not exist in the tenant.
var ErrTaskNotFound = errors.New("task not found")

// Manager is the session and domain state manager.
type Manager struct {
	store     store.Store
	quotas    *quota.Manager
	recorder  metrics.Recorder
	now       func() time.Time
	authDelay time.Duration

	session  *domain.Session
	members  []domain.Member
	tasks    []domain.Task
	checkins []domain.CheckIn
	settings domain.Settings
}

// NewManager creates a manager over the given store.
func NewManager(st store.Store) *Manager {
	return &Manager{
		store:    st,
		quotas:   quota.NewManager(),
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
		settings: domain.DefaultSettings(),
	}
}

// WithRecorder injects a metrics recorder.
func (m *Manager) WithRecorder(r metrics.Recorder) *Manager {
	m.recorder = r
	return m
}

// WithClock injects a time source, used by tests to pin "today".
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// WithAuthDelay configures the cosmetic delay applied before Register and
// Login complete. It defers when the result becomes visible; it never changes
// the outcome.
func (m *Manager) WithAuthDelay(d time.Duration) *Manager {
	m.authDelay = d
	return m
}

// Session returns the current session identity, or nil when logged out.
func (m *Manager) Session() *domain.Session {
	return m.session
}

// Members returns the tenant's in-memory member list.
func (m *Manager) Members() []domain.Member {
	return m.members
}

// Tasks returns the tenant's full in-memory task list.
func (m *Manager) Tasks() []domain.Task {
	return m.tasks
}

// VisibleTasks returns the tasks the session actor may see: members get
// their own assignments, admins the whole tenant.
func (m *Manager) VisibleTasks() []domain.Task {
	return stats.Scope(m.tasks, m.session)
}

// CheckIns returns the tenant's in-memory check-in list.
func (m *Manager) CheckIns() []domain.CheckIn {
	return m.checkins
}

// Settings returns the tenant's in-memory settings record.
func (m *Manager) Settings() domain.Settings {
	return m.settings
}

// Today returns the current calendar date string.
func (m *Manager) Today() string {
	return m.now().Format(domain.DateLayout)
}

// Resume restores a persisted session, loading the tenant's collections.
// It reports whether a session was present.
func (m *Manager) Resume() bool {
	s := m.store.Session()
	if s == nil {
		return false
	}
	m.session = s
	m.loadCollections()
	return true
}

// Register creates a new tenant with an admin credential record and
// establishes it as the active session. When the email is already registered
// the registry keeps the earlier entry (first registration wins) but the
// session is still established; created reports whether the registry
// accepted the record, so callers can surface the duplicate if they choose.
func (m *Manager) Register(name, email, password string) (*domain.Session, bool) {
	m.delay()

	duplicate := false
	for _, r := range m.store.Registry() {
		if r.Email == email {
			duplicate = true
			break
		}
	}

	user := domain.User{
		ID:        domain.NewID(domain.IDPrefixUser),
		Email:     email,
		Password:  password,
		Name:      name,
		Plan:      domain.PlanFree,
		CompanyID: tenant.NewID(),
		Role:      domain.RoleAdmin,
	}
	m.store.AddToRegistry(user)

	sess := domain.SessionOf(user)
	m.establish(sess)

	m.recorder.IncRegistration(duplicate)
	observability.InfoContext(m.opContext("register"), "company registered",
		slog.Bool("duplicate_email", duplicate))
	return sess, !duplicate
}

// Login scans the registry for an exact email/password match and adopts the
// matched record as the active session. A miss returns ErrInvalidCredentials
// and leaves no session established.
func (m *Manager) Login(email, password string) (*domain.Session, error) {
	m.delay()

	for _, r := range m.store.Registry() {
		if r.Email == email && r.Password == password {
			sess := domain.SessionOf(r)
			m.establish(sess)
			m.recorder.IncLogin(metrics.AuthSuccess)
			observability.InfoContext(m.opContext("login"), "login succeeded")
			return sess, nil
		}
	}

	m.recorder.IncLogin(metrics.AuthFailure)
	observability.InfoContext(m.opContext("login"), "login rejected", slog.String("email", email))
	return nil, ErrInvalidCredentials
}

// Logout clears the session and the in-memory collections. Persisted tenant
// data stays in storage and is reloaded on the next login.
func (m *Manager) Logout() {
	if m.session != nil {
		observability.InfoContext(m.opContext("logout"), "logout")
	}
	m.store.SaveSession(nil)
	m.session = nil
	m.members = nil
	m.tasks = nil
	m.checkins = nil
	m.settings = domain.DefaultSettings()
}

// AddMember appends a team member and resaves the member list, which also
// mirrors the credentials into the registry. Admin only; refused with a
// quota.LimitError when the plan's member limit is reached, with no state
// change.
func (m *Manager) AddMember(name, role, email, password string) (*domain.Member, error) {
	if m.session == nil {
		return nil, ErrNoSession
	}
	if !m.session.IsAdmin() {
		return nil, ErrNotAdmin
	}
	if err := m.quotas.CanAddMember(m.session.Plan, len(m.members)); err != nil {
		m.recorder.IncMemberAdded(false)
		observability.WarnContext(m.opContext("add_member"), "member addition refused",
			slog.Any("error", err))
		return nil, err
	}

	member := domain.Member{
		ID:        domain.NewID(domain.IDPrefixMember),
		Name:      name,
		Role:      role,
		Email:     email,
		Password:  password,
		Active:    true,
		CompanyID: m.session.CompanyID,
	}
	m.members = append(m.members, member)
	m.store.SetMembers(m.session.CompanyID, m.members)

	m.recorder.IncMemberAdded(true)
	observability.InfoContext(m.opContext("add_member"), "member added",
		slog.String("member.id", member.ID))
	return &member, nil
}

// CreateTask appends a task with the standard defaults: status todo, medium
// priority and time estimate, deadline today when omitted.
func (m *Manager) CreateTask(title, assigneeID, deadline string) (*domain.Task, error) {
	if m.session == nil {
		return nil, ErrNoSession
	}
	if deadline == "" {
		deadline = m.Today()
	}

	task := domain.Task{
		ID:           domain.NewID(domain.IDPrefixTask),
		Title:        title,
		AssigneeID:   assigneeID,
		Deadline:     deadline,
		Priority:     domain.PriorityMedium,
		Status:       domain.StatusTodo,
		TimeEstimate: domain.EstimateMedium,
		CreatedAt:    m.now().UnixMilli(),
		CompanyID:    m.session.CompanyID,
	}
	m.tasks = append(m.tasks, task)
	m.store.SetTasks(m.session.CompanyID, m.tasks)

	m.recorder.IncTaskCreated()
	observability.InfoContext(m.opContext("create_task"), "task created",
		slog.String("task.id", task.ID))
	return &task, nil
}

// ToggleTaskStatus flips a task's completion: done becomes todo, anything
// else becomes done. Applying it twice returns a todo or done task to its
// original status.
func (m *Manager) ToggleTaskStatus(taskID string) (*domain.Task, error) {
	if m.session == nil {
		return nil, ErrNoSession
	}
	for i := range m.tasks {
		if m.tasks[i].ID != taskID {
			continue
		}
		if m.tasks[i].Status == domain.StatusDone {
			m.tasks[i].Status = domain.StatusTodo
		} else {
			m.tasks[i].Status = domain.StatusDone
		}
		m.store.SetTasks(m.session.CompanyID, m.tasks)
		m.recorder.IncTaskToggled()
		return &m.tasks[i], nil
	}
	return nil, ErrTaskNotFound
}

// RecordCheckIn appends a daily mood record for the session actor. Check-ins
// are persisted pass-through; nothing consumes them yet.
func (m *Manager) RecordCheckIn(feeling domain.Feeling) (*domain.CheckIn, error) {
	if m.session == nil {
		return nil, ErrNoSession
	}
	checkin := domain.CheckIn{
		Date:    m.Today(),
		Feeling: feeling,
		UserID:  m.session.ID,
	}
	m.checkins = append(m.checkins, checkin)
	m.store.SetCheckIns(m.session.CompanyID, m.checkins)
	m.recorder.IncCheckInRecorded()
	return &checkin, nil
}

// UpdateSettings merges the patch into the tenant settings and resaves.
func (m *Manager) UpdateSettings(patch domain.SettingsPatch) (domain.Settings, error) {
	if m.session == nil {
		return domain.Settings{}, ErrNoSession
	}
	m.settings = patch.Apply(m.settings)
	m.store.SetSettings(m.session.CompanyID, m.settings)
	return m.settings, nil
}

// Stats computes the day's completion snapshot from current in-memory state.
func (m *Manager) Stats() stats.Daily {
	return stats.ComputeDaily(m.tasks, m.session, m.Today())
}

// Reload re-reads the tenant collections from storage. The daemon uses this
// when an external writer touches the store file.
func (m *Manager) Reload() {
	if m.session == nil {
		return
	}
	m.loadCollections()
}

func (m *Manager) establish(sess *domain.Session) {
	m.session = sess
	m.store.SaveSession(sess)
	m.loadCollections()
}

func (m *Manager) loadCollections() {
	cid := m.session.CompanyID
	m.members = m.store.Members(cid)
	m.tasks = m.store.Tasks(cid)
	m.checkins = m.store.CheckIns(cid)
	m.settings = m.store.Settings(cid)
	observability.DebugContext(m.opContext("load_collections"), "collections loaded",
		slog.Int("members", len(m.members)), slog.Int("tasks", len(m.tasks)))
}

// opContext scopes the structured log helpers to the session actor.
func (m *Manager) opContext(op string) context.Context {
	ctx := observability.WithOp(context.Background(), op)
	if m.session != nil {
		ctx = tenant.WithTenant(ctx, tenant.FromSession(m.session))
		ctx = observability.WithUserID(ctx, m.session.ID)
	}
	return ctx
}

func (m *Manager) delay() {
	if m.authDelay > 0 {
		time.Sleep(m.authDelay)
	}
}
