package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jtrack/jtrack/internal/dateutil"
	"github.com/jtrack/jtrack/internal/job"
)

// titleCaser turns internal lowercase labels into display headings.
var titleCaser = cases.Title(language.English)

// locationPlaceholder is what an unset location renders as. The value
// itself stays nil everywhere below the rendering layer.
const locationPlaceholder = "—"

// truncate shortens s to w terminal cells, rune-width aware, with an
// ellipsis tail.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}

func locationLabel(loc *string) string {
	if loc == nil || *loc == "" {
		return locationPlaceholder
	}
	return *loc
}

// dueBadge renders the due date pill for a card: danger when overdue,
// warning when due today, success otherwise. Empty for jobs with no
// due date.
func dueBadge(d *string, now time.Time) string {
	if d == nil {
		return ""
	}
	label := activeTheme.Icons.Due + " Due " + *d
	switch {
	case dateutil.IsOverdue(d, now):
		return activeTheme.DueOverdueStyle.Render(label)
	case dateutil.IsToday(d, now):
		return activeTheme.DueTodayStyle.Render(label)
	default:
		return activeTheme.DueOKStyle.Render(label)
	}
}

// renderCard renders one job card at the given content width.
func renderCard(j job.Job, width int, selected bool, now time.Time) string {
	inner := width - 4 // border + padding
	if inner < 8 {
		inner = 8
	}

	role := truncate(j.Role, inner)
	if selected {
		role = activeTheme.Icons.Select + " " + truncate(j.Role, inner-2)
	}
	lines := []string{
		activeTheme.RoleStyle.Render(role),
		activeTheme.CompanyStyle.Render(truncate(j.Company, inner)),
		activeTheme.MetaStyle.Render(truncate(locationLabel(j.Location)+" · "+string(j.Status), inner)),
	}
	if badge := dueBadge(j.DueDate, now); badge != "" {
		lines = append(lines, badge)
	}

	style := activeTheme.CardStyle
	switch {
	case selected:
		style = activeTheme.SelectedCardStyle
	case dateutil.DueSoon(j.DueDate, now):
		style = activeTheme.SoonCardStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderColumn renders one status column: header with count, then the
// cards, or a placeholder when empty.
func renderColumn(status job.Status, cards []job.Job, width int, selectedRow int, now time.Time) string {
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		activeTheme.ColumnHeaderStyle.Render(activeTheme.Icons.Column+" "+string(status)),
		activeTheme.ColumnCountStyle.Render(fmt.Sprintf(" %d", len(cards))),
	)
	parts := []string{header}
	if len(cards) == 0 {
		parts = append(parts, activeTheme.EmptyColumnStyle.Render("No jobs here"))
	}
	for i, j := range cards {
		parts = append(parts, renderCard(j, width-4, i == selectedRow, now))
	}
	return activeTheme.ColumnStyle.Width(width).Render(strings.Join(parts, "\n"))
}

// kpiTone selects the card accent on the dashboard.
type kpiTone int

const (
	toneDefault kpiTone = iota
	toneWarn
	toneDanger
)

// kpiCard renders one dashboard counter. Titles are stored lowercase
// and title-cased for display.
func kpiCard(title string, value int, tone kpiTone) string {
	style := activeTheme.KPIStyle
	switch tone {
	case toneWarn:
		style = activeTheme.KPIWarnStyle
	case toneDanger:
		style = activeTheme.KPIDangerStyle
	}
	body := activeTheme.KPITitleStyle.Render(titleCaser.String(title)) + "\n" +
		activeTheme.KPIValueStyle.Render(fmt.Sprintf("%d", value))
	return style.Render(body)
}

// viewModeLabel is the human form of a view mode for the sidebar and
// the controls line.
func viewModeLabel(m job.ViewMode) string {
	switch m {
	case job.ViewDueToday:
		return "Due Today"
	case job.ViewOverdue:
		return "Overdue"
	default:
		return "All"
	}
}
