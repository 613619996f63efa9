package domain

// DefaultTeamName is the team name used until the admin picks one.
const DefaultTeamName = "TeamDesk"

// Settings is the per-tenant settings record.
type Settings struct {
	TeamName             string `json:"teamName"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// DefaultSettings returns the settings a tenant starts with, and the value
// reads fall back to when the stored record is missing or unreadable.
func DefaultSettings() Settings {
	return Settings{
		TeamName:             DefaultTeamName,
		NotificationsEnabled: true,
	}
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	TeamName             *string
	NotificationsEnabled *bool
}

// Apply merges the patch into s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.TeamName != nil {
		s.TeamName = *p.TeamName
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	return s
}
