package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus counters.
type PrometheusRecorder struct {
	registrations *prom.CounterVec
	logins        *prom.CounterVec
	membersAdded  *prom.CounterVec
	tasksCreated  prom.Counter
	tasksToggled  prom.Counter
	checkIns      prom.Counter
}

// NewPrometheusRecorder constructs and registers the counters on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registrations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "teamdesk",
			Name:      "registrations_total",
			Help:      "Company registrations by outcome",
		}, []string{"outcome"}),
		logins: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "teamdesk",
			Name:      "logins_total",
			Help:      "Login attempts by result",
		}, []string{"result"}),
		membersAdded: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "teamdesk",
			Name:      "members_added_total",
			Help:      "Member additions by outcome",
		}, []string{"outcome"}),
		tasksCreated: prom.NewCounter(prom.CounterOpts{
			Namespace: "teamdesk",
			Name:      "tasks_created_total",
			Help:      "Tasks created",
		}),
		tasksToggled: prom.NewCounter(prom.CounterOpts{
			Namespace: "teamdesk",
			Name:      "tasks_toggled_total",
			Help:      "Task status toggles",
		}),
		checkIns: prom.NewCounter(prom.CounterOpts{
			Namespace: "teamdesk",
			Name:      "checkins_recorded_total",
			Help:      "Daily check-ins recorded",
		}),
	}
	reg.MustRegister(pr.registrations, pr.logins, pr.membersAdded, pr.tasksCreated, pr.tasksToggled, pr.checkIns)
	return pr
}

func (pr *PrometheusRecorder) IncRegistration(duplicate bool) {
	outcome := "created"
	if duplicate {
		outcome = "duplicate"
	}
	pr.registrations.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) IncLogin(result AuthResult) {
	pr.logins.WithLabelValues(string(result)).Inc()
}

func (pr *PrometheusRecorder) IncMemberAdded(accepted bool) {
	outcome := "accepted"
	if !accepted {
		outcome = "rejected"
	}
	pr.membersAdded.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) IncTaskCreated() {
	pr.tasksCreated.Inc()
}

func (pr *PrometheusRecorder) IncTaskToggled() {
	pr.tasksToggled.Inc()
}

func (pr *PrometheusRecorder) IncCheckInRecorded() {
	pr.checkIns.Inc()
}
