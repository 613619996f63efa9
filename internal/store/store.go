// Package store is the persistence adapter: a namespaced key-value accessor
// over a single local store. It owns JSON serialization and key namespacing
// by entity kind and tenant ID.
//
// Reads are fail-soft: a missing key or malformed content yields the typed
// empty default instead of an error, so storage corruption never crashes a
// caller. Writes never return an error either; an underlying storage failure
// is logged and the in-memory state stays the only record of the change.
package store

import "git.home.luguber.info/inful/teamdesk/internal/domain"

// Key layout. Session and registry are global; the four collection keys are
// suffixed with the tenant ID.
const (
	KeySession        = "teamdesk_session"
	KeyRegistry       = "teamdesk_user_registry"
	KeyPrefixMembers  = "teamdesk_members_"
	KeyPrefixTasks    = "teamdesk_tasks_"
	KeyPrefixCheckIns = "teamdesk_checkins_"
	KeyPrefixSettings = "teamdesk_settings_"
)

// Store is the persistence contract the session manager talks to.
type Store interface {
	// Registry returns all credential records across tenants.
	Registry() []domain.User

	// AddToRegistry appends a credential record. It is idempotent by email:
	// a second entry with an existing email is a silent no-op.
	AddToRegistry(entry domain.User)

	// Session returns the persisted session identity, or nil when absent.
	Session() *domain.Session

	// SaveSession persists the session identity; nil clears it.
	SaveSession(s *domain.Session)

	Members(tenantID string) []domain.Member

	// SetMembers persists the full member list and mirrors every
	// login-capable member into the registry with role=member and the
	// same ID. The registry stays a superset of member credentials.
	SetMembers(tenantID string, members []domain.Member)

	Tasks(tenantID string) []domain.Task
	SetTasks(tenantID string, tasks []domain.Task)

	CheckIns(tenantID string) []domain.CheckIn
	SetCheckIns(tenantID string, checkins []domain.CheckIn)

	// Settings returns the tenant settings record, falling back to
	// domain.DefaultSettings when absent or unreadable.
	Settings(tenantID string) domain.Settings
	SetSettings(tenantID string, settings domain.Settings)

	// Close releases any resources held by the store.
	Close() error
}
