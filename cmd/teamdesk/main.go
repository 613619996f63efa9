package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/teamdesk/internal/config"
	"git.home.luguber.info/inful/teamdesk/internal/daemon"
	"git.home.luguber.info/inful/teamdesk/internal/domain"
	"git.home.luguber.info/inful/teamdesk/internal/report"
	"git.home.luguber.info/inful/teamdesk/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"teamdesk.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Register struct {
		Name     string `arg:"" help:"Your full name"`
		Email    string `arg:"" help:"Account email"`
		Password string `arg:"" help:"Account password"`
	} `cmd:"" help:"Register a new company and sign in as its admin"`

	Login struct {
		Email    string `arg:"" help:"Account email"`
		Password string `arg:"" help:"Account password"`
	} `cmd:"" help:"Sign in with existing credentials"`

	Logout struct{} `cmd:"" help:"Clear the active session"`

	Status struct{} `cmd:"" help:"Show the active session and today's numbers"`

	Member struct {
		Add struct {
			Name     string `arg:"" help:"Member name"`
			Role     string `required:"" help:"Free-text role label"`
			Email    string `required:"" help:"Login email for the member"`
			Password string `required:"" help:"Temporary login password"`
		} `cmd:"" help:"Invite a team member (admin only)"`
		List struct{} `cmd:"" help:"List team members"`
	} `cmd:"" help:"Manage team members"`

	Task struct {
		Add struct {
			Title    string `arg:"" help:"Task title"`
			Assignee string `help:"Assignee ID (defaults to yourself)"`
			Deadline string `help:"Deadline as YYYY-MM-DD (defaults to today)"`
		} `cmd:"" help:"Create a task"`
		List   struct{} `cmd:"" help:"List visible tasks"`
		Toggle struct {
			ID string `arg:"" help:"Task ID"`
		} `cmd:"" help:"Toggle a task between done and todo"`
	} `cmd:"" help:"Manage tasks"`

	Checkin struct {
		Feeling string `arg:"" enum:"good,tired,overwhelmed" help:"How you feel today"`
	} `cmd:"" help:"Record a daily check-in"`

	Settings struct {
		Show struct{} `cmd:"" help:"Show tenant settings"`
		Set  struct {
			TeamName      *string `help:"Team display name"`
			Notifications *bool   `help:"Enable or disable reminders"`
		} `cmd:"" help:"Update tenant settings"`
	} `cmd:"" help:"Manage tenant settings"`

	Report struct {
		HTML   bool   `help:"Render the report as HTML instead of Markdown"`
		Output string `short:"o" help:"Write the report to a file instead of stdout"`
	} `cmd:"" help:"Print the team completion report (admin only)"`

	Daemon struct{} `cmd:"" help:"Run the reminder daemon for the active session"`

	Version struct{} `cmd:"" help:"Print the version"`
}

func main() {
	ctx := kong.Parse(&CLI)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teamdesk: %v\n", err)
		os.Exit(1)
	}
	config.SetupLogging(cfg.Logging, CLI.Verbose)

	app, err := newApp(cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := run(ctx.Command(), app); err != nil {
		fmt.Fprintf(os.Stderr, "teamdesk: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, app *App) error {
	switch command {
	case "register <name> <email> <password>":
		sess, created := app.Manager.Register(CLI.Register.Name, CLI.Register.Email, CLI.Register.Password)
		if !created {
			// The registry kept the earlier record; the new credentials will
			// not log in. Surfaced here because the CLI has a feedback path.
			fmt.Println("note: email was already registered; existing credentials remain valid")
		}
		fmt.Printf("registered company %s, signed in as %s (%s)\n", sess.CompanyID, sess.Name, sess.Role)
		return nil

	case "login <email> <password>":
		sess, err := app.Manager.Login(CLI.Login.Email, CLI.Login.Password)
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s) of company %s\n", sess.Name, sess.Role, sess.CompanyID)
		return nil

	case "logout":
		app.Manager.Logout()
		fmt.Println("signed out")
		return nil

	case "status":
		if err := app.RequireSession(); err != nil {
			return err
		}
		sess := app.Manager.Session()
		daily := app.Manager.Stats()
		fmt.Printf("%s (%s) — %s\n", sess.Name, sess.Role, app.Manager.Settings().TeamName)
		fmt.Printf("today: %d%% done (%d of %d), %d late\n", daily.Percent, daily.DoneToday, daily.TotalToday, daily.Late)
		return nil

	case "member add <name>":
		if err := app.RequireSession(); err != nil {
			return err
		}
		member, err := app.Manager.AddMember(CLI.Member.Add.Name, CLI.Member.Add.Role, CLI.Member.Add.Email, CLI.Member.Add.Password)
		if err != nil {
			return err
		}
		fmt.Printf("added member %s (%s)\n", member.Name, member.ID)
		return nil

	case "member list":
		if err := app.RequireSession(); err != nil {
			return err
		}
		for _, m := range app.Manager.Members() {
			fmt.Printf("%s  %-20s %s\n", m.ID, m.Name, m.Role)
		}
		return nil

	case "task add <title>":
		if err := app.RequireSession(); err != nil {
			return err
		}
		assignee := CLI.Task.Add.Assignee
		if assignee == "" {
			assignee = app.Manager.Session().ID
		}
		task, err := app.Manager.CreateTask(CLI.Task.Add.Title, assignee, CLI.Task.Add.Deadline)
		if err != nil {
			return err
		}
		fmt.Printf("created task %s due %s\n", task.ID, task.Deadline)
		return nil

	case "task list":
		if err := app.RequireSession(); err != nil {
			return err
		}
		for _, t := range app.Manager.VisibleTasks() {
			mark := " "
			if t.Done() {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %-30s due %s\n", mark, t.ID, t.Title, t.Deadline)
		}
		return nil

	case "task toggle <id>":
		if err := app.RequireSession(); err != nil {
			return err
		}
		task, err := app.Manager.ToggleTaskStatus(CLI.Task.Toggle.ID)
		if err != nil {
			return err
		}
		fmt.Printf("task %s is now %s\n", task.ID, task.Status)
		return nil

	case "checkin <feeling>":
		if err := app.RequireSession(); err != nil {
			return err
		}
		checkin, err := app.Manager.RecordCheckIn(domain.Feeling(CLI.Checkin.Feeling))
		if err != nil {
			return err
		}
		fmt.Printf("check-in recorded for %s: %s\n", checkin.Date, checkin.Feeling)
		return nil

	case "settings show":
		if err := app.RequireSession(); err != nil {
			return err
		}
		s := app.Manager.Settings()
		fmt.Printf("team name:     %s\n", s.TeamName)
		fmt.Printf("notifications: %t\n", s.NotificationsEnabled)
		return nil

	case "settings set":
		if err := app.RequireSession(); err != nil {
			return err
		}
		patch := domain.SettingsPatch{
			TeamName:             CLI.Settings.Set.TeamName,
			NotificationsEnabled: CLI.Settings.Set.Notifications,
		}
		s, err := app.Manager.UpdateSettings(patch)
		if err != nil {
			return err
		}
		fmt.Printf("settings saved: %s, notifications %t\n", s.TeamName, s.NotificationsEnabled)
		return nil

	case "report":
		if err := app.RequireSession(); err != nil {
			return err
		}
		return runReport(app)

	case "daemon":
		if err := app.RequireSession(); err != nil {
			return err
		}
		return runDaemon(app)

	case "version":
		fmt.Printf("teamdesk %s (built %s, commit %s)\n", version.Version, version.BuildTime, version.GitCommit)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runReport(app *App) error {
	mgr := app.Manager
	if !mgr.Session().IsAdmin() {
		return fmt.Errorf("reports are restricted to admins")
	}

	r := report.Build(mgr.Settings().TeamName, mgr.Today(), mgr.Tasks(), mgr.Members(), mgr.Session())

	out := r.Markdown()
	if CLI.Report.HTML {
		html, err := r.HTML()
		if err != nil {
			return err
		}
		out = html
	}

	if CLI.Report.Output != "" {
		if err := os.WriteFile(CLI.Report.Output, []byte(out), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("report written to %s\n", CLI.Report.Output)
		return nil
	}
	fmt.Print(out)
	return nil
}

func runDaemon(app *App) error {
	d, err := daemon.New(app.Manager, app.JSONBackend, daemon.SchedulerOptions{
		Interval: app.Config.Notifications.ScanInterval,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("reminder daemon running", "tenant.id", app.Manager.Session().CompanyID)
	return d.Run(ctx)
}
