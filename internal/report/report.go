// Package report renders tenant completion reports as Markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/teamdesk/internal/domain"
	"git.home.luguber.info/inful/teamdesk/internal/stats"
)

// MemberRow is one line of the per-member completion table.
type MemberRow struct {
	Name string
	Role string
	Done int
}

// Report is the completion report for a tenant on a given day.
type Report struct {
	TeamName  string
	Date      string
	Daily     stats.Daily
	TotalDone int
	Members   []MemberRow
}

// Build assembles the report from current state. Member rows are ordered by
// locale-aware name collation so the table reads naturally.
func Build(teamName, today string, tasks []domain.Task, members []domain.Member, session *domain.Session) Report {
	done := stats.DoneByAssignee(tasks)

	rows := make([]MemberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, MemberRow{Name: m.Name, Role: m.Role, Done: done[m.ID]})
	}
	c := collate.New(language.Und)
	sort.SliceStable(rows, func(i, j int) bool {
		return c.CompareString(rows[i].Name, rows[j].Name) < 0
	})

	return Report{
		TeamName:  teamName,
		Date:      today,
		Daily:     stats.ComputeDaily(tasks, session, today),
		TotalDone: stats.TotalDone(tasks),
		Members:   rows,
	}
}

// Markdown renders the report as a Markdown document.
func (r Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — completion report\n\n", r.TeamName)
	fmt.Fprintf(&b, "Date: %s\n\n", r.Date)
	fmt.Fprintf(&b, "- Today's completion: **%d%%** (%d of %d)\n", r.Daily.Percent, r.Daily.DoneToday, r.Daily.TotalToday)
	fmt.Fprintf(&b, "- Late tasks: **%d**\n", r.Daily.Late)
	fmt.Fprintf(&b, "- Finished overall: **%d**\n\n", r.TotalDone)

	if len(r.Members) > 0 {
		b.WriteString("| Member | Role | Done |\n")
		b.WriteString("|---|---|---|\n")
		for _, row := range r.Members {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", row.Name, row.Role, row.Done)
		}
	}
	return b.String()
}

// HTML renders the Markdown report to HTML.
func (r Report) HTML() (string, error) {
	var buf bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert([]byte(r.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
