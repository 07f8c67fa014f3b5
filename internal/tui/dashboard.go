package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jtrack/jtrack/internal/job"
	"github.com/jtrack/jtrack/internal/store"
)

// RunDashboard launches the KPI dashboard.
func RunDashboard(ctx context.Context, jobs *store.Jobs, log *slog.Logger) error {
	program := tea.NewProgram(newDashModel(jobs), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}

type dashModel struct {
	jobs  *store.Jobs
	now   func() time.Time
	width int
	ready bool
}

func newDashModel(jobs *store.Jobs) dashModel {
	return dashModel{jobs: jobs, now: time.Now}
}

func (m dashModel) Init() tea.Cmd { return nil }

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m dashModel) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}

	title := activeTheme.TitleStyle.Width(m.width).Render(activeTheme.Title.Icon + " Dashboard")
	subtitle := activeTheme.StatusBarStyle.Render("Quick overview of your job search.")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		renderKPIGrid(m.jobs.List(), m.now()),
		"",
		activeTheme.StatusBarStyle.Render("q quit"),
	)
}

// renderKPIGrid lays out the counters two rows of four, matching the
// sidebar badge semantics: counts always cover the whole list.
func renderKPIGrid(jobs []job.Job, now time.Time) string {
	k := job.ComputeKPIs(jobs, now)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		kpiCard("total", k.Total, toneDefault),
		kpiCard("prospect", k.ByStatus[job.Prospect], toneDefault),
		kpiCard("applied", k.ByStatus[job.Applied], toneDefault),
		kpiCard("interview", k.ByStatus[job.Interview], toneDefault),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		kpiCard("offer", k.ByStatus[job.Offer], toneDefault),
		kpiCard("rejected", k.ByStatus[job.Rejected], toneDefault),
		kpiCard("due today", k.DueToday, toneWarn),
		kpiCard("overdue", k.Overdue, toneDanger),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}
