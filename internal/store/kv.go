// Package store persists the job list and UI state through a small
// key-value abstraction, so the same logic runs against a file tree, a
// sqlite database, or an in-memory map in tests.
package store

// Storage keys. The v1 suffix on the job key is the only schema
// versioning; the value is the whole job list as one JSON array,
// overwritten wholesale on every mutation.
const (
	KeyJobs    = "jobtracker:v1:jobs"
	KeySidebar = "jobtracker:sidebar-open"
)

// KV is the minimal key-value contract the stores need.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is a map-backed KV for tests and the throwaway
// "--storage memory" mode.
type MemoryKV struct {
	m map[string]string
}

// NewMemoryKV returns an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (kv *MemoryKV) Get(key string) (string, bool, error) {
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *MemoryKV) Set(key, value string) error {
	kv.m[key] = value
	return nil
}
