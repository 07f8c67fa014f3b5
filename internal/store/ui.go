package store

import "log/slog"

// UIState owns presentation state that outlives a session. Only the
// sidebar expanded/collapsed flag persists; transient panel state (the
// mobile-style drawer) stays in memory with the model that owns it.
type UIState struct {
	kv  KV
	log *slog.Logger
}

// NewUIState returns a UI state store over kv.
func NewUIState(kv KV, log *slog.Logger) *UIState {
	return &UIState{kv: kv, log: log}
}

// SidebarOpen loads the persisted sidebar flag. The default, and the
// fallback on any storage trouble, is collapsed.
func (u *UIState) SidebarOpen() bool {
	raw, ok, err := u.kv.Get(KeySidebar)
	if err != nil {
		u.log.Debug("failed to read sidebar state", "err", err)
		return false
	}
	return ok && raw == "1"
}

// SetSidebarOpen persists the flag as "1" or "0".
func (u *UIState) SetSidebarOpen(open bool) {
	v := "0"
	if open {
		v = "1"
	}
	if err := u.kv.Set(KeySidebar, v); err != nil {
		u.log.Debug("failed to persist sidebar state", "err", err)
	}
}
