package domain

// CheckIn is a daily mood record. It is persisted pass-through: nothing in
// the system consumes it yet.
type CheckIn struct {
	Date    string  `json:"date"`
	Feeling Feeling `json:"feeling"`
	UserID  string  `json:"userId"`
}
