package store

import "git.home.luguber.info/inful/teamdesk/internal/domain"

// Registry returns the global credential registry.
func (a *Adapter) Registry() []domain.User {
	var reg []domain.User
	a.read(KeyRegistry, &reg)
	if reg == nil {
		reg = []domain.User{}
	}
	return reg
}

// AddToRegistry appends a credential record unless its email is taken.
// First registration wins.
func (a *Adapter) AddToRegistry(entry domain.User) {
	reg := a.Registry()
	for _, r := range reg {
		if r.Email == entry.Email {
			return
		}
	}
	reg = append(reg, entry)
	a.write(KeyRegistry, reg)
}

// Session returns the persisted session identity, or nil.
func (a *Adapter) Session() *domain.Session {
	var s domain.Session
	if !a.read(KeySession, &s) {
		return nil
	}
	return &s
}

// SaveSession persists the session identity; nil clears it.
func (a *Adapter) SaveSession(s *domain.Session) {
	if s == nil {
		if err := a.backend.Delete(KeySession); err != nil {
			a.logger.Error("storage delete failed", "key", KeySession, "error", err)
		}
		return
	}
	a.write(KeySession, s)
}

func (a *Adapter) Members(tenantID string) []domain.Member {
	var members []domain.Member
	a.read(KeyPrefixMembers+tenantID, &members)
	if members == nil {
		members = []domain.Member{}
	}
	return members
}

// SetMembers persists the full member list, then mirrors credentials into
// the registry so it stays a superset of all login-capable members.
func (a *Adapter) SetMembers(tenantID string, members []domain.Member) {
	a.write(KeyPrefixMembers+tenantID, members)
	for _, m := range members {
		if !m.LoginCapable() {
			continue
		}
		a.AddToRegistry(domain.User{
			ID:        m.ID,
			Email:     m.Email,
			Password:  m.Password,
			Name:      m.Name,
			Plan:      domain.PlanFree,
			CompanyID: m.CompanyID,
			Role:      domain.RoleMember,
		})
	}
}

func (a *Adapter) Tasks(tenantID string) []domain.Task {
	var tasks []domain.Task
	a.read(KeyPrefixTasks+tenantID, &tasks)
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks
}

func (a *Adapter) SetTasks(tenantID string, tasks []domain.Task) {
	a.write(KeyPrefixTasks+tenantID, tasks)
}

func (a *Adapter) CheckIns(tenantID string) []domain.CheckIn {
	var checkins []domain.CheckIn
	a.read(KeyPrefixCheckIns+tenantID, &checkins)
	if checkins == nil {
		checkins = []domain.CheckIn{}
	}
	return checkins
}

func (a *Adapter) SetCheckIns(tenantID string, checkins []domain.CheckIn) {
	a.write(KeyPrefixCheckIns+tenantID, checkins)
}

// Settings returns the tenant settings record or the documented default.
func (a *Adapter) Settings(tenantID string) domain.Settings {
	var settings domain.Settings
	if !a.read(KeyPrefixSettings+tenantID, &settings) {
		return domain.DefaultSettings()
	}
	return settings
}

func (a *Adapter) SetSettings(tenantID string, settings domain.Settings) {
	a.write(KeyPrefixSettings+tenantID, settings)
}
