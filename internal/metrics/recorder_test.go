package metrics

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncRegistration(true)
	r.IncLogin(AuthSuccess)
	r.IncMemberAdded(false)
	r.IncTaskCreated()
	r.IncTaskToggled()
	r.IncCheckInRecorded()
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncRegistration(false)
	pr.IncRegistration(true)
	pr.IncLogin(AuthSuccess)
	pr.IncLogin(AuthFailure)
	pr.IncMemberAdded(true)
	pr.IncMemberAdded(false)
	pr.IncTaskCreated()
	pr.IncTaskToggled()
	pr.IncCheckInRecorded()

	// Basic scrape to ensure metrics encode without panic.
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) != 6 {
		t.Fatalf("expected 6 metric families, got %d", len(mfs))
	}
}

func TestPrometheusRecorderNilRegistry(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncTaskCreated()
}
