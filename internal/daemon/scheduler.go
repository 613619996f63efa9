package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/teamdesk/internal/observability"
	"git.home.luguber.info/inful/teamdesk/internal/session"
)

// SchedulerOptions configures the reminder scan.
type SchedulerOptions struct {
	// Interval between overdue-task scans.
	Interval time.Duration
}

// DefaultScanInterval is used when no interval is configured.
const DefaultScanInterval = 15 * time.Minute

// Scheduler wraps a gocron scheduler running the periodic overdue-task scan.
// Reminders respect the tenant's NotificationsEnabled setting.
type Scheduler struct {
	scheduler gocron.Scheduler
	manager   *session.Manager
}

// NewScheduler creates the scheduler and registers the scan job.
func NewScheduler(manager *session.Manager, opts SchedulerOptions) (*Scheduler, error) {
	if opts.Interval <= 0 {
		opts.Interval = DefaultScanInterval
	}

	gs, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create gocron scheduler: %w", err)
	}

	s := &Scheduler{scheduler: gs, manager: manager}
	_, err = gs.NewJob(
		gocron.DurationJob(opts.Interval),
		gocron.NewTask(s.scanOverdue),
		gocron.WithName("overdue-scan"),
	)
	if err != nil {
		return nil, fmt.Errorf("register overdue scan job: %w", err)
	}
	return s, nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("starting reminder scheduler")
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	slog.Info("stopping reminder scheduler")
	return s.scheduler.Shutdown()
}

// scanOverdue logs a reminder for every overdue task of the current tenant.
func (s *Scheduler) scanOverdue() {
	sess := s.manager.Session()
	if sess == nil {
		return
	}
	if !s.manager.Settings().NotificationsEnabled {
		return
	}

	ctx := observability.WithOp(context.Background(), "overdue-scan")
	ctx = observability.WithTenantID(ctx, sess.CompanyID)

	today := s.manager.Today()
	for _, t := range s.manager.VisibleTasks() {
		if !t.Overdue(today) {
			continue
		}
		observability.WarnContext(ctx, "task overdue",
			slog.String("task.id", t.ID),
			slog.String("title", t.Title),
			slog.String("deadline", t.Deadline),
			slog.String("assignee.id", t.AssigneeID))
	}
}
