// Package job defines the application-tracking domain: the pipeline
// status enum, the Job record, the status transition policy, and the
// pure derivations (filtering, grouping, KPI counters) the board and
// dashboard render from.
package job

import (
	"fmt"
	"strings"
)

// Status is one stage of the fixed application pipeline.
type Status string

const (
	Prospect  Status = "Prospect"
	Applied   Status = "Applied"
	Interview Status = "Interview"
	Offer     Status = "Offer"
	Rejected  Status = "Rejected"
)

// AllStatuses lists every status in board column order.
var AllStatuses = []Status{Prospect, Applied, Interview, Offer, Rejected}

// ParseStatus resolves a user-supplied status name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want one of %s)", s, statusNames())
}

func statusNames() string {
	names := make([]string, len(AllStatuses))
	for i, st := range AllStatuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}

// Job is one tracked application. Location and DueDate are optional;
// nil means "not specified" and is never coerced to an empty string —
// only the rendering layer substitutes a placeholder. DueDate, when
// set, is a local YYYY-MM-DD string (see dateutil).
//
// The JSON shape matches the v1 storage format exactly.
type Job struct {
	ID       string  `json:"id"`
	Role     string  `json:"role"`
	Company  string  `json:"company"`
	Location *string `json:"location,omitempty"`
	Status   Status  `json:"status"`
	DueDate  *string `json:"dueDate,omitempty"`
}

// Input is a Job without an identity; the store assigns the ID.
type Input struct {
	Role     string
	Company  string
	Location *string
	Status   Status
	DueDate  *string
}
