package store

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jtrack/jtrack/internal/dateutil"
	"github.com/jtrack/jtrack/internal/job"
)

// Jobs is the authoritative in-memory job list plus its persistence.
// Every mutation serializes the whole list back to the KV; a failed
// write is logged and swallowed, and the in-memory list keeps serving
// the session. Loss on the next start is the accepted consequence.
type Jobs struct {
	kv   KV
	log  *slog.Logger
	now  func() time.Time
	jobs []job.Job
}

// Option configures a Jobs store.
type Option func(*Jobs)

// WithClock overrides the wall clock used for seed due dates.
func WithClock(now func() time.Time) Option {
	return func(s *Jobs) { s.now = now }
}

// NewJobs returns a store over kv. Call Load before anything else.
func NewJobs(kv KV, log *slog.Logger, opts ...Option) *Jobs {
	s := &Jobs{kv: kv, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted list. A missing key initializes the seed
// list; an unreadable or malformed value falls back to the seed list
// and is logged, never surfaced as an error.
func (s *Jobs) Load() {
	raw, ok, err := s.kv.Get(KeyJobs)
	if err != nil {
		s.log.Warn("failed to read stored jobs, starting from seed list", "err", err)
		s.jobs = s.seed()
		return
	}
	if !ok {
		s.jobs = s.seed()
		s.persist()
		return
	}
	var jobs []job.Job
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		s.log.Warn("failed to parse stored jobs, starting from seed list", "err", err)
		s.jobs = s.seed()
		return
	}
	s.jobs = jobs
}

// Add assigns a fresh id, appends, persists, and returns the stored
// record.
func (s *Jobs) Add(in job.Input) job.Job {
	j := job.Job{
		ID:       uuid.NewString(),
		Role:     in.Role,
		Company:  in.Company,
		Location: in.Location,
		Status:   in.Status,
		DueDate:  in.DueDate,
	}
	s.jobs = append(s.jobs, j)
	s.persist()
	return j
}

// Update replaces the entry whose id matches j.ID with j verbatim.
// Unknown ids are a silent no-op; callers operate on ids they got from
// the current list.
func (s *Jobs) Update(j job.Job) {
	for i := range s.jobs {
		if s.jobs[i].ID == j.ID {
			s.jobs[i] = j
			break
		}
	}
	s.persist()
}

// Remove drops the entry with the given id and returns it so the
// caller can offer a one-step undo.
func (s *Jobs) Remove(id string) (job.Job, bool) {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			removed := s.jobs[i]
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			s.persist()
			return removed, true
		}
	}
	return job.Job{}, false
}

// Restore reinserts a previously removed job at the head of the list.
// The id is kept, so apart from list position the record is
// indistinguishable from one that was never deleted.
func (s *Jobs) Restore(j job.Job) {
	s.jobs = append([]job.Job{j}, s.jobs...)
	s.persist()
}

// List returns a copy of the current list.
func (s *Jobs) List() []job.Job {
	out := make([]job.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Jobs) persist() {
	data, err := json.Marshal(s.jobs)
	if err != nil {
		s.log.Warn("failed to serialize jobs, keeping in-memory state", "err", err)
		return
	}
	if err := s.kv.Set(KeyJobs, string(data)); err != nil {
		s.log.Warn("failed to persist jobs, keeping in-memory state", "err", err)
	}
}

// seed is the starter list shown on a fresh install.
func (s *Jobs) seed() []job.Job {
	now := s.now()
	montreal := "Montréal"
	remote := "Remote"
	later := dateutil.AddDays(now, 3)
	today := dateutil.Format(now)
	muchLater := dateutil.AddDays(now, 30)
	return []job.Job{
		{ID: uuid.NewString(), Role: "Frontend Developer", Company: "Company XYZ", Location: &montreal, Status: job.Prospect, DueDate: &later},
		{ID: uuid.NewString(), Role: "UI Engineer", Company: "Company ABC", Location: &remote, Status: job.Prospect, DueDate: &today},
		{ID: uuid.NewString(), Role: "React Engineer", Company: "Company DDD", Location: &remote, Status: job.Rejected, DueDate: &muchLater},
	}
}
