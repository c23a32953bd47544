// Package layout persists per-session UI state: panel geometry and canvas
// pan/zoom, keyed by an opaque session id.
package layout

import (
	"context"
	"sync"
)

// Update carries the fields present in a layout save request. A nil field
// was absent from the request and leaves the stored value untouched.
type Update struct {
	PanelState  map[string]any
	CanvasState map[string]any
}

// Store persists layout state per session. Load returns an empty mapping
// for unknown sessions.
type Store interface {
	Save(ctx context.Context, sessionID string, update Update) error
	Load(ctx context.Context, sessionID string) (map[string]any, error)
}

// MemoryStore is the default in-process layout store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]any
}

// NewMemoryStore creates an empty layout store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]any)}
}

// Save creates the session record if absent and overwrites only the
// fields present in the update.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, update Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		state = make(map[string]any)
		s.sessions[sessionID] = state
	}

	if update.PanelState != nil {
		state["panel_state"] = update.PanelState
	}
	if update.CanvasState != nil {
		state["canvas_state"] = update.CanvasState
	}

	return nil
}

// Load returns the stored state for the session, or an empty mapping.
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return map[string]any{}, nil
	}

	out := make(map[string]any, len(state))
	for k, v := range state {
		out[k] = v
	}
	return out, nil
}
