package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deriveNow = time.Date(2026, time.June, 15, 9, 30, 0, 0, time.Local)

func boardJobs() []Job {
	return []Job{
		{ID: "1", Role: "Frontend Developer", Company: "Company XYZ", Status: Prospect, DueDate: strptr("2099-01-01")},
		{ID: "2", Role: "UI Engineer", Company: "Company ABC", Status: Prospect, DueDate: strptr("2026-06-14")},
		{ID: "3", Role: "React Engineer", Company: "Company DDD", Status: Rejected},
		{ID: "4", Role: "Backend Developer", Company: "Acme", Status: Applied, DueDate: strptr("2026-06-15")},
	}
}

func TestFilter_MatchesRoleOrCompanySubstringCaseInsensitively(t *testing.T) {
	t.Parallel()

	jobs := boardJobs()

	got := Filter(jobs, View{Search: "engineer", Mode: ViewAll}, deriveNow)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	got = Filter(jobs, View{Search: "  ACME ", Mode: ViewAll}, deriveNow)
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)

	got = Filter(jobs, View{Search: "", Mode: ViewAll}, deriveNow)
	assert.Len(t, got, len(jobs), "empty search passes everything")
}

func TestFilter_AppliesStatusFilterAfterSearch(t *testing.T) {
	t.Parallel()

	status := Prospect
	got := Filter(boardJobs(), View{Search: "engineer", StatusFilter: &status, Mode: ViewAll}, deriveNow)

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilter_KeepsOnlyMatchingDueDates_When_ViewModeIsSpecial(t *testing.T) {
	t.Parallel()

	jobs := boardJobs()

	due := Filter(jobs, View{Mode: ViewDueToday}, deriveNow)
	require.Len(t, due, 1)
	assert.Equal(t, "4", due[0].ID)

	// Job 3 has no due date and must be omitted, not treated as overdue.
	over := Filter(jobs, View{Mode: ViewOverdue}, deriveNow)
	require.Len(t, over, 1)
	assert.Equal(t, "2", over[0].ID)
}

func TestGroup_KeepsEveryStatusKeyAndListOrder(t *testing.T) {
	t.Parallel()

	g := Group(boardJobs())

	require.Len(t, g, len(AllStatuses))
	for _, s := range AllStatuses {
		assert.NotNil(t, g[s])
	}
	require.Len(t, g[Prospect], 2)
	assert.Equal(t, "1", g[Prospect][0].ID)
	assert.Equal(t, "2", g[Prospect][1].ID)
	assert.Empty(t, g[Interview])
	assert.Empty(t, g[Offer])
}

func TestGroup_CommutesWithFilter(t *testing.T) {
	t.Parallel()

	jobs := boardJobs()
	v := View{Search: "engineer", Mode: ViewAll}

	grouped := Group(Filter(jobs, v, deriveNow))
	for _, s := range AllStatuses {
		sf := s
		vs := View{Search: v.Search, StatusFilter: &sf, Mode: v.Mode}
		assert.Equal(t, Filter(jobs, vs, deriveNow), grouped[s])
	}
}

func TestComputeKPIs_CountsWholeListRegardlessOfView(t *testing.T) {
	t.Parallel()

	jobs := boardJobs()
	k := ComputeKPIs(jobs, deriveNow)

	assert.Equal(t, 4, k.Total)
	assert.Equal(t, 2, k.ByStatus[Prospect])
	assert.Equal(t, 1, k.ByStatus[Applied])
	assert.Equal(t, 0, k.ByStatus[Interview])
	assert.Equal(t, 0, k.ByStatus[Offer])
	assert.Equal(t, 1, k.ByStatus[Rejected])
	assert.Equal(t, 1, k.DueToday)
	assert.Equal(t, 1, k.Overdue)

	// KPIs take no view configuration at all: the only way to change
	// them is to mutate the list.
	extra := append(boardJobs(), Job{ID: "5", Role: "SRE", Company: "Acme", Status: Offer})
	assert.Equal(t, 5, ComputeKPIs(extra, deriveNow).Total)
}

func TestDerivations_SingleProspectScenario(t *testing.T) {
	t.Parallel()

	jobs := []Job{{ID: "1", Status: Prospect, DueDate: strptr("2099-01-01")}}

	grouped := Group(Filter(jobs, View{Mode: ViewAll}, deriveNow))
	require.Len(t, grouped[Prospect], 1)
	assert.Equal(t, "1", grouped[Prospect][0].ID)
	for _, s := range []Status{Applied, Interview, Offer, Rejected} {
		assert.Empty(t, grouped[s])
	}

	k := ComputeKPIs(jobs, deriveNow)
	assert.Equal(t, 1, k.Total)
	assert.Equal(t, 0, k.DueToday)
	assert.Equal(t, 0, k.Overdue)
}

func TestToggle_ReturnsToAll_When_ActiveModeSelectedAgain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ViewDueToday, Toggle(ViewAll, ViewDueToday))
	assert.Equal(t, ViewAll, Toggle(ViewDueToday, ViewDueToday))
	assert.Equal(t, ViewOverdue, Toggle(ViewDueToday, ViewOverdue))
	assert.Equal(t, ViewAll, Toggle(ViewOverdue, ViewAll))
	assert.Equal(t, ViewAll, Toggle(ViewAll, ViewAll))
}

func TestParseStatus_IsCaseInsensitiveAndRejectsUnknown(t *testing.T) {
	t.Parallel()

	got, err := ParseStatus("interview")
	require.NoError(t, err)
	assert.Equal(t, Interview, got)

	_, err = ParseStatus("ghosted")
	assert.ErrorContains(t, err, "unknown status")
}
