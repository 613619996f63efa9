package domain

// User is a credential record in the global registry. The registry spans all
// tenants and is the sole source of truth for login matching. Passwords are
// stored in plaintext; this mirrors the upstream product behavior and is
// explicitly not a security design.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Plan      Plan   `json:"plan"`
	CompanyID string `json:"companyId"`
	Role      Role   `json:"role"`
}

// Session is the password-stripped projection of a User denoting the
// currently authenticated actor.
type Session struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Plan      Plan   `json:"plan"`
	CompanyID string `json:"companyId"`
	Role      Role   `json:"role"`
}

// SessionOf projects a registry record into a session identity.
func SessionOf(u User) *Session {
	plan := u.Plan
	if plan == "" {
		plan = PlanFree
	}
	return &Session{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Plan:      plan,
		CompanyID: u.CompanyID,
		Role:      u.Role,
	}
}

// IsAdmin reports whether the session actor holds the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
