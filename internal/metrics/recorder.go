// Package metrics defines observability hooks for domain operations.
package metrics

// AuthResult enumerates login outcomes for counters.
type AuthResult string

const (
	AuthSuccess AuthResult = "success"
	AuthFailure AuthResult = "failure"
)

// Recorder defines counters for session and domain operations.
// Implementations may forward to Prometheus; the NoopRecorder is the default
// when metrics are not configured.
type Recorder interface {
	IncRegistration(duplicate bool)
	IncLogin(result AuthResult)
	IncMemberAdded(accepted bool)
	IncTaskCreated()
	IncTaskToggled()
	IncCheckInRecorded()
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncRegistration(bool) {}
func (NoopRecorder) IncLogin(AuthResult)  {}
func (NoopRecorder) IncMemberAdded(bool)  {}
func (NoopRecorder) IncTaskCreated()      {}
func (NoopRecorder) IncTaskToggled()      {}
func (NoopRecorder) IncCheckInRecorded()  {}
