package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtrack/jtrack/internal/job"
	"github.com/jtrack/jtrack/internal/store"
)

var boardNow = time.Date(2026, time.June, 15, 9, 0, 0, 0, time.Local)

func strptr(s string) *string { return &s }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestBoard builds a board over a fixed two-job list with a frozen
// clock.
func newTestBoard(t *testing.T) (boardModel, *store.Jobs) {
	t.Helper()

	kv := store.NewMemoryKV()
	log := discardLogger()
	clock := func() time.Time { return boardNow }

	jobs := store.NewJobs(kv, log, store.WithClock(clock))
	require.NoError(t, kv.Set(store.KeyJobs, `[
		{"id":"1","role":"Frontend Developer","company":"Company XYZ","status":"Prospect","dueDate":"2099-01-01"},
		{"id":"2","role":"UI Engineer","company":"Company ABC","status":"Prospect","dueDate":"2026-06-14"}
	]`))
	jobs.Load()

	m := newBoardModel(jobs, store.NewUIState(kv, log), log)
	m.now = clock

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return sized.(boardModel), jobs
}

func press(t *testing.T, m boardModel, keys ...string) boardModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(boardModel)
	}
	return m
}

func findJob(t *testing.T, jobs *store.Jobs, id string) job.Job {
	t.Helper()
	for _, j := range jobs.List() {
		if j.ID == id {
			return j
		}
	}
	t.Fatalf("job %s not found", id)
	return job.Job{}
}

func TestBoard_DropOnColumn_AppliesTransitionPolicy(t *testing.T) {
	t.Parallel()

	m, jobs := newTestBoard(t)

	// Cursor starts on job "1" in Prospect; "3" drops it on Interview.
	m = press(t, m, "3")

	moved := findJob(t, jobs, "1")
	assert.Equal(t, job.Interview, moved.Status)
	require.NotNil(t, moved.DueDate)
	assert.Equal(t, "2026-06-17", *moved.DueDate, "due date is drag day + 2")

	assert.Equal(t, 2, m.cursorCol, "cursor follows the card")
}

func TestBoard_DropOnCurrentColumn_IsNoOp(t *testing.T) {
	t.Parallel()

	m, jobs := newTestBoard(t)
	before := jobs.List()

	press(t, m, "1")

	assert.Equal(t, before, jobs.List(), "same-column drop keeps the due date")
}

func TestBoard_DeleteThenUndo_RestoresRecordAtHead(t *testing.T) {
	t.Parallel()

	m, jobs := newTestBoard(t)
	original := findJob(t, jobs, "1")

	m = press(t, m, "x")
	assert.Len(t, jobs.List(), 1)
	require.NotNil(t, m.undo)

	m = press(t, m, "u")
	list := jobs.List()
	require.Len(t, list, 2)
	assert.Equal(t, original, list[0])
	assert.Nil(t, m.undo)
}

func TestBoard_Undo_DoesNothing_When_WindowExpired(t *testing.T) {
	t.Parallel()

	m, jobs := newTestBoard(t)

	m = press(t, m, "x")
	require.NotNil(t, m.undo)

	// Jump the clock past the undo window.
	m.now = func() time.Time { return boardNow.Add(undoWindow + time.Second) }
	m = press(t, m, "u")

	assert.Len(t, jobs.List(), 1)
}

func TestBoard_ViewModeKeysToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)

	m = press(t, m, "t")
	assert.Equal(t, job.ViewDueToday, m.view.Mode)

	m = press(t, m, "t")
	assert.Equal(t, job.ViewAll, m.view.Mode, "pressing the active mode returns to All")

	m = press(t, m, "o")
	assert.Equal(t, job.ViewOverdue, m.view.Mode)

	m = press(t, m, "t")
	assert.Equal(t, job.ViewDueToday, m.view.Mode)
}

func TestBoard_SearchNarrowsVisibleCards(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)

	m = press(t, m, "/")
	assert.True(t, m.searching)

	m = press(t, m, "u", "i", "enter")
	assert.False(t, m.searching)
	assert.Equal(t, "ui", m.view.Search)

	grouped := m.groupedVisible()
	require.Len(t, grouped[job.Prospect], 1)
	assert.Equal(t, "2", grouped[job.Prospect][0].ID)
}

func TestBoard_StatusFilterCyclesBackToAll(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)
	require.Nil(t, m.view.StatusFilter)

	for i, want := range job.AllStatuses {
		m = press(t, m, "f")
		require.NotNil(t, m.view.StatusFilter, "step %d", i)
		assert.Equal(t, want, *m.view.StatusFilter)
	}
	m = press(t, m, "f")
	assert.Nil(t, m.view.StatusFilter)
}

func TestBoard_SidebarTogglePersists(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)
	require.False(t, m.sidebar, "sidebar defaults to collapsed")

	m = press(t, m, "s")
	assert.True(t, m.sidebar)
	assert.True(t, m.ui.SidebarOpen())

	m = press(t, m, "s")
	assert.False(t, m.ui.SidebarOpen())
}

func TestBoard_AddFormSubmit_AppendsJobWithDefaults(t *testing.T) {
	t.Parallel()

	m, jobs := newTestBoard(t)

	m = press(t, m, "a")
	require.NotNil(t, m.form)
	assert.Equal(t, "2026-06-20", m.form.inputs[fieldDue].Value(), "add form defaults due date to today + 5")

	m = press(t, m, "S", "R", "E", "enter")
	assert.Nil(t, m.form)

	list := jobs.List()
	require.Len(t, list, 3)
	added := list[2]
	assert.Equal(t, "SRE", added.Role)
	assert.Equal(t, job.Prospect, added.Status)
	assert.Nil(t, added.Location, "blank location stays unset")
	require.NotNil(t, added.DueDate)
	assert.Equal(t, "2026-06-20", *added.DueDate)
}

func TestBoard_EditFormSubmit_OverwritesFieldsKeepingID(t *testing.T) {
	t.Parallel()

	m, jobs := newTestBoard(t)

	m = press(t, m, "e")
	require.NotNil(t, m.form)
	assert.Equal(t, "Frontend Developer", m.form.inputs[fieldRole].Value())

	m = press(t, m, "!", "enter")

	got := findJob(t, jobs, "1")
	assert.Equal(t, "Frontend Developer!", got.Role)
	assert.Equal(t, job.Prospect, got.Status)
}

func TestBoard_ViewRendersColumnsAndCards(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)

	out := m.View()
	assert.Contains(t, out, "JobTracker")
	assert.Contains(t, out, "Prospect")
	assert.Contains(t, out, "Frontend Developer")
	assert.Contains(t, out, "No jobs here")
}
