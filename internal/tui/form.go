package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jtrack/jtrack/internal/dateutil"
	"github.com/jtrack/jtrack/internal/job"
)

// Form field rows. The status row is not a text input; left/right
// cycles the status while it has focus.
const (
	fieldRole = iota
	fieldCompany
	fieldLocation
	fieldDue
	fieldStatus
	fieldCount
)

// addFormDueOffset is the add form's own default-value policy for the
// due date: today + 5 days. It is just the initial form value, distinct
// from the transition policy table.
const addFormDueOffset = 5

// formAction is what a form update resolved to.
type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
)

// jobForm is the inline add/edit panel. An empty id means add.
type jobForm struct {
	id     string
	inputs [4]textinput.Model
	status job.Status
	focus  int
}

func newJobForm(existing *job.Job, now time.Time) jobForm {
	f := jobForm{status: job.Prospect}

	labels := [4]string{"Frontend Developer", "Company name", "Montréal or Remote", "YYYY-MM-DD"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 120
		f.inputs[i] = in
	}

	if existing != nil {
		f.id = existing.ID
		f.status = existing.Status
		f.inputs[fieldRole].SetValue(existing.Role)
		f.inputs[fieldCompany].SetValue(existing.Company)
		if existing.Location != nil {
			f.inputs[fieldLocation].SetValue(*existing.Location)
		}
		if existing.DueDate != nil {
			f.inputs[fieldDue].SetValue(*existing.DueDate)
		}
	} else {
		f.inputs[fieldDue].SetValue(dateutil.AddDays(now, addFormDueOffset))
	}

	f.inputs[fieldRole].Focus()
	return f
}

func (f jobForm) editing() bool { return f.id != "" }

// Update handles one key event. The returned action tells the board
// whether the form finished.
func (f jobForm) Update(msg tea.KeyMsg) (jobForm, tea.Cmd, formAction) {
	switch msg.String() {
	case "esc":
		return f, nil, formCancel
	case "enter":
		return f, nil, formSubmit
	case "tab", "down":
		return f.moveFocus(1), nil, formNone
	case "shift+tab", "up":
		return f.moveFocus(-1), nil, formNone
	}

	if f.focus == fieldStatus {
		switch msg.String() {
		case "left", "h":
			f.status = cycleStatus(f.status, -1)
		case "right", "l", " ":
			f.status = cycleStatus(f.status, 1)
		}
		return f, nil, formNone
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, formNone
}

func (f jobForm) moveFocus(dir int) jobForm {
	if f.focus < fieldStatus {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + dir + fieldCount) % fieldCount
	if f.focus < fieldStatus {
		f.inputs[f.focus].Focus()
	}
	return f
}

func cycleStatus(s job.Status, dir int) job.Status {
	for i, st := range job.AllStatuses {
		if st == s {
			n := len(job.AllStatuses)
			return job.AllStatuses[(i+dir+n)%n]
		}
	}
	return job.Prospect
}

// input assembles the form fields into a domain input. Blank optional
// fields come back as nil, never empty strings.
func (f jobForm) input() job.Input {
	in := job.Input{
		Role:    f.inputs[fieldRole].Value(),
		Company: f.inputs[fieldCompany].Value(),
		Status:  f.status,
	}
	if loc := strings.TrimSpace(f.inputs[fieldLocation].Value()); loc != "" {
		in.Location = &loc
	}
	if due := strings.TrimSpace(f.inputs[fieldDue].Value()); due != "" {
		in.DueDate = &due
	}
	return in
}

// View renders the form panel.
func (f jobForm) View() string {
	title := "Add New Job"
	if f.editing() {
		title = "Edit Job"
	}

	labels := [4]string{"role", "company", "location", "due date"}
	var b strings.Builder
	b.WriteString(activeTheme.ColumnHeaderStyle.Render(title))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		b.WriteString(activeTheme.FormLabelStyle.Render(titleCaser.String(labels[i])))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(activeTheme.FormLabelStyle.Render("Status"))
	b.WriteString("\n")
	status := string(f.status)
	if f.focus == fieldStatus {
		status = activeTheme.SidebarActiveStyle.Render("◂ " + status + " ▸")
	}
	b.WriteString(status)
	b.WriteString("\n\n")
	b.WriteString(activeTheme.StatusBarStyle.Render("enter save • esc cancel • tab next field"))
	return activeTheme.ColumnStyle.Render(b.String())
}
