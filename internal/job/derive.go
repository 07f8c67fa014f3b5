package job

import (
	"strings"
	"time"

	"github.com/jtrack/jtrack/internal/dateutil"
)

// ViewMode narrows which jobs the board shows without deleting or
// altering them.
type ViewMode string

const (
	ViewAll      ViewMode = "All"
	ViewDueToday ViewMode = "DueToday"
	ViewOverdue  ViewMode = "Overdue"
)

// Toggle implements press-to-toggle view selection: picking the mode
// that is already active falls back to ViewAll; anything else switches
// to the selected mode.
func Toggle(current, selected ViewMode) ViewMode {
	if selected == current {
		return ViewAll
	}
	return selected
}

// View is the board's display configuration. A nil StatusFilter means
// every status passes.
type View struct {
	Search       string
	StatusFilter *Status
	Mode         ViewMode
}

// Filter returns the jobs visible under v, in list order. A job passes
// when the search text (case-insensitive substring over role and
// company; empty matches everything) and the status filter both
// accept it, and the view mode keeps it.
func Filter(jobs []Job, v View, now time.Time) []Job {
	q := strings.ToLower(strings.TrimSpace(v.Search))
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if q != "" &&
			!strings.Contains(strings.ToLower(j.Role), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) {
			continue
		}
		if v.StatusFilter != nil && j.Status != *v.StatusFilter {
			continue
		}
		switch v.Mode {
		case ViewDueToday:
			if !dateutil.IsToday(j.DueDate, now) {
				continue
			}
		case ViewOverdue:
			if !dateutil.IsOverdue(j.DueDate, now) {
				continue
			}
		}
		out = append(out, j)
	}
	return out
}

// Group partitions jobs into one ordered column per status, preserving
// relative list order. Every status key is present even when its
// column is empty.
func Group(jobs []Job) map[Status][]Job {
	g := make(map[Status][]Job, len(AllStatuses))
	for _, s := range AllStatuses {
		g[s] = []Job{}
	}
	for _, j := range jobs {
		g[j.Status] = append(g[j.Status], j)
	}
	return g
}

// KPIs are the dashboard and badge counters. They are always computed
// over the full unfiltered list so switching the view mode never hides
// the counts that justified switching.
type KPIs struct {
	Total    int
	ByStatus map[Status]int
	DueToday int
	Overdue  int
}

// ComputeKPIs tallies the counters for jobs as of now.
func ComputeKPIs(jobs []Job, now time.Time) KPIs {
	k := KPIs{ByStatus: make(map[Status]int, len(AllStatuses))}
	for _, s := range AllStatuses {
		k.ByStatus[s] = 0
	}
	for _, j := range jobs {
		k.Total++
		k.ByStatus[j.Status]++
		if dateutil.IsToday(j.DueDate, now) {
			k.DueToday++
		}
		if dateutil.IsOverdue(j.DueDate, now) {
			k.Overdue++
		}
	}
	return k
}
