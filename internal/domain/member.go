package domain

// Member is a tenant-scoped team member. Role here is a free-text label
// ("Consultant", "Designer"), not the registry Role. Members with a non-empty
// email and password are mirrored into the credential registry as
// login-capable accounts; see store.SetMembers.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Active    bool   `json:"active"`
	CompanyID string `json:"companyId"`
}

// LoginCapable reports whether the member carries credentials that belong in
// the global registry.
func (m Member) LoginCapable() bool {
	return m.Email != "" && m.Password != ""
}
