package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jtrack/jtrack/internal/job"
	"github.com/jtrack/jtrack/internal/store"
)

// undoWindow is how long a deleted job can be brought back.
const undoWindow = 3 * time.Second

const (
	minColumnWidth = 22
	sidebarWidth   = 24
)

// RunBoard launches the interactive kanban board.
func RunBoard(ctx context.Context, jobs *store.Jobs, ui *store.UIState, log *slog.Logger) error {
	program := tea.NewProgram(newBoardModel(jobs, ui, log), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("board exited: %w", err)
	}
	return nil
}

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second/4, func(time.Time) tea.Msg { return tickMsg{} })
}

// undoEntry is an armed single-step undo for the last delete.
type undoEntry struct {
	job     job.Job
	expires time.Time
}

type boardModel struct {
	jobs *store.Jobs
	ui   *store.UIState
	log  *slog.Logger
	now  func() time.Time

	keys keyMap

	view      job.View
	search    textinput.Model
	searching bool

	cursorCol int
	cursorRow int

	sidebar bool
	width   int
	height  int
	ready   bool

	form  *jobForm
	undo  *undoEntry
	flash string
}

func newBoardModel(jobs *store.Jobs, ui *store.UIState, log *slog.Logger) boardModel {
	search := textinput.New()
	search.Placeholder = "Search by role or company..."
	search.CharLimit = 120

	return boardModel{
		jobs:    jobs,
		ui:      ui,
		log:     log,
		now:     time.Now,
		keys:    defaultKeyMap(),
		view:    job.View{Mode: job.ViewAll},
		search:  search,
		sidebar: ui.SidebarOpen(),
	}
}

func (m boardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		if m.undo == nil {
			return m, nil
		}
		if !m.now().Before(m.undo.expires) {
			m.undo = nil
			m.flash = ""
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		form, cmd, action := m.form.Update(msg)
		m.form = &form
		switch action {
		case formCancel:
			m.form = nil
		case formSubmit:
			m.submitForm(form)
			m.form = nil
		}
		return m, cmd
	}

	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.view.Search = m.search.Value()
			m.clampCursor()
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveCursorCol(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursorCol(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursorRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursorRow(1)

	case key.Matches(msg, m.keys.MoveLeft):
		m.dropSelected(m.cursorCol - 1)
	case key.Matches(msg, m.keys.MoveRight):
		m.dropSelected(m.cursorCol + 1)
	case key.Matches(msg, m.keys.Drop):
		m.dropSelected(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Filter):
		m.cycleStatusFilter()
	case key.Matches(msg, m.keys.DueToday):
		m.view.Mode = job.Toggle(m.view.Mode, job.ViewDueToday)
		m.clampCursor()
	case key.Matches(msg, m.keys.Overdue):
		m.view.Mode = job.Toggle(m.view.Mode, job.ViewOverdue)
		m.clampCursor()

	case key.Matches(msg, m.keys.Sidebar):
		m.sidebar = !m.sidebar
		m.ui.SetSidebarOpen(m.sidebar)

	case key.Matches(msg, m.keys.Add):
		form := newJobForm(nil, m.now())
		m.form = &form
	case key.Matches(msg, m.keys.Edit):
		if j, ok := m.selectedJob(); ok {
			form := newJobForm(&j, m.now())
			m.form = &form
		}
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Undo):
		m.restoreDeleted()
	}
	return m, nil
}

// grouped is the post-filter board content.
func (m boardModel) groupedVisible() map[job.Status][]job.Job {
	return job.Group(job.Filter(m.jobs.List(), m.view, m.now()))
}

func (m boardModel) selectedJob() (job.Job, bool) {
	col := m.groupedVisible()[job.AllStatuses[m.cursorCol]]
	if m.cursorRow < 0 || m.cursorRow >= len(col) {
		return job.Job{}, false
	}
	return col[m.cursorRow], true
}

func (m *boardModel) moveCursorCol(dir int) {
	m.cursorCol += dir
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol >= len(job.AllStatuses) {
		m.cursorCol = len(job.AllStatuses) - 1
	}
	m.clampCursor()
}

func (m *boardModel) moveCursorRow(dir int) {
	m.cursorRow += dir
	m.clampCursor()
}

func (m *boardModel) clampCursor() {
	col := m.groupedVisible()[job.AllStatuses[m.cursorCol]]
	if m.cursorRow >= len(col) {
		m.cursorRow = len(col) - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
}

// dropSelected is the board's drag-end event: it feeds the selected
// card and the target column through the transition policy and
// persists the result. Dropping outside the board or on the current
// column changes nothing.
func (m *boardModel) dropSelected(targetCol int) {
	if targetCol < 0 || targetCol >= len(job.AllStatuses) {
		return
	}
	j, ok := m.selectedJob()
	if !ok {
		return
	}
	target := job.AllStatuses[targetCol]
	if target == j.Status {
		return
	}
	next := job.Transition(j, target, m.now())
	m.jobs.Update(next)
	m.log.Debug("moved job", "id", next.ID, "from", j.Status, "to", target)

	// Follow the card to its new column.
	m.cursorCol = targetCol
	col := m.groupedVisible()[target]
	m.cursorRow = len(col) - 1
	for i, c := range col {
		if c.ID == next.ID {
			m.cursorRow = i
			break
		}
	}
	m.flash = fmt.Sprintf("%s → %s", next.Role, target)
}

func (m boardModel) deleteSelected() (tea.Model, tea.Cmd) {
	j, ok := m.selectedJob()
	if !ok {
		return m, nil
	}
	removed, ok := m.jobs.Remove(j.ID)
	if !ok {
		return m, nil
	}
	m.undo = &undoEntry{job: removed, expires: m.now().Add(undoWindow)}
	m.flash = fmt.Sprintf("Deleted %s @ %s — press u to undo", removed.Role, removed.Company)
	m.clampCursor()
	return m, tick()
}

func (m *boardModel) restoreDeleted() {
	if m.undo == nil || !m.now().Before(m.undo.expires) {
		return
	}
	m.jobs.Restore(m.undo.job)
	m.flash = fmt.Sprintf("Restored %s @ %s", m.undo.job.Role, m.undo.job.Company)
	m.undo = nil
}

func (m *boardModel) submitForm(f jobForm) {
	in := f.input()
	if f.editing() {
		m.jobs.Update(job.Job{
			ID:       f.id,
			Role:     in.Role,
			Company:  in.Company,
			Location: in.Location,
			Status:   in.Status,
			DueDate:  in.DueDate,
		})
		m.flash = fmt.Sprintf("Updated %s", in.Role)
	} else {
		added := m.jobs.Add(in)
		m.flash = fmt.Sprintf("Added %s @ %s", added.Role, added.Company)
	}
	m.clampCursor()
}

func (m *boardModel) cycleStatusFilter() {
	switch {
	case m.view.StatusFilter == nil:
		first := job.AllStatuses[0]
		m.view.StatusFilter = &first
	case *m.view.StatusFilter == job.AllStatuses[len(job.AllStatuses)-1]:
		m.view.StatusFilter = nil
	default:
		for i, s := range job.AllStatuses {
			if s == *m.view.StatusFilter {
				next := job.AllStatuses[i+1]
				m.view.StatusFilter = &next
				break
			}
		}
	}
	m.clampCursor()
}

func (m boardModel) View() string {
	if !m.ready {
		return "Loading board..."
	}

	title := activeTheme.TitleStyle.Width(m.width).Render(activeTheme.Title.Icon + " " + activeTheme.Title.Text)
	controls := m.renderControls()
	columns := m.renderColumns()

	var body string
	if m.form != nil {
		body = m.form.View()
	} else if m.sidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), columns)
	} else {
		body = columns
	}

	statusLine := m.renderStatusBar()
	sections := []string{title, controls, body}
	if m.flash != "" {
		sections = append(sections, activeTheme.FlashStyle.Render(m.flash))
	}
	sections = append(sections, statusLine)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m boardModel) renderControls() string {
	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = activeTheme.StatusBarStyle.Render("/ to search")
	}
	filter := "All statuses"
	if m.view.StatusFilter != nil {
		filter = string(*m.view.StatusFilter)
	}
	mode := viewModeLabel(m.view.Mode)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		search,
		activeTheme.StatusBarStyle.Render("  filter: "),
		filter,
		activeTheme.StatusBarStyle.Render("  view: "),
		mode,
	)
}

func (m boardModel) renderColumns() string {
	grouped := m.groupedVisible()
	now := m.now()

	avail := m.width
	if m.sidebar {
		avail -= sidebarWidth
	}
	colWidth := avail/len(job.AllStatuses) - 1
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	cols := make([]string, 0, len(job.AllStatuses))
	for i, s := range job.AllStatuses {
		selectedRow := -1
		if i == m.cursorCol {
			selectedRow = m.cursorRow
		}
		cols = append(cols, renderColumn(s, grouped[s], colWidth, selectedRow, now))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m boardModel) renderSidebar() string {
	k := job.ComputeKPIs(m.jobs.List(), m.now())

	line := func(mode job.ViewMode, label, badge string) string {
		if m.view.Mode == mode {
			label = activeTheme.SidebarActiveStyle.Render(label)
		}
		if badge != "" {
			return label + " " + badge
		}
		return label
	}

	rows := []string{
		activeTheme.ColumnHeaderStyle.Render(activeTheme.Icons.Sidebar + " Views"),
		line(job.ViewAll, "All", ""),
		line(job.ViewDueToday, "Due Today", activeTheme.BadgeWarnStyle.Render(fmt.Sprintf("%d", k.DueToday))),
		line(job.ViewOverdue, "Overdue", activeTheme.BadgeDangerStyle.Render(fmt.Sprintf("%d", k.Overdue))),
		"",
		activeTheme.ColumnHeaderStyle.Render("Pipeline"),
	}
	for _, s := range job.AllStatuses {
		rows = append(rows, fmt.Sprintf("%s %d", s, k.ByStatus[s]))
	}
	rows = append(rows, "", activeTheme.MetaStyle.Render(fmt.Sprintf("Total %d", k.Total)))

	return activeTheme.SidebarStyle.Width(sidebarWidth - 2).Render(strings.Join(rows, "\n"))
}

func (m boardModel) renderStatusBar() string {
	var parts []string
	for _, b := range m.keys.shortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return activeTheme.StatusBarStyle.Render(strings.Join(parts, " • "))
}
