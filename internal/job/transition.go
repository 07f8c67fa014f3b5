package job

import (
	"time"

	"github.com/jtrack/jtrack/internal/dateutil"
)

// dueOffsets maps a drop target to the number of days until the next
// action is due. Rejected has no entry: landing there clears the due
// date. The offsets are carried over from the original tracker as
// fixed policy; do not derive them.
var dueOffsets = map[Status]int{
	Prospect:  3,
	Applied:   5,
	Interview: 2,
	Offer:     7,
}

// Transition applies a status change to j and returns the updated
// record. Dropping a job on the column it already occupies returns j
// unchanged, due date included. Any other move sets the new status and
// recomputes the due date from the offset table, preserving every
// remaining field. Transition knows nothing about storage; the caller
// persists the result.
func Transition(j Job, target Status, now time.Time) Job {
	if target == j.Status {
		return j
	}
	j.Status = target
	if days, ok := dueOffsets[target]; ok {
		due := dateutil.AddDays(now, days)
		j.DueDate = &due
	} else {
		j.DueDate = nil
	}
	return j
}
