// Package ws carries realtime order events to connected participants. A
// presence registry tracks one websocket connection per participant, and a
// dispatcher fans application events out over those connections.
package ws

import (
	"sync"

	"foodcourt/internal/core/domain/model/kernel"
)

// Conn is a registered participant connection. *websocket.Conn is adapted to
// it by the subscribe handler, and tests substitute their own.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Registry is the presence map: which participant is reachable over which
// connection. A participant has at most one live connection; registering
// again replaces and closes the previous one.
type Registry struct {
	mu    sync.RWMutex
	conns map[kernel.UUID]Conn
}

// NewRegistry creates an empty presence registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[kernel.UUID]Conn)}
}

// Register makes the participant reachable over conn. An existing connection
// for the same participant is closed and replaced.
func (r *Registry) Register(participantID kernel.UUID, conn Conn) {
	r.mu.Lock()
	previous := r.conns[participantID]
	r.conns[participantID] = conn
	r.mu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}
}

// Unregister removes the participant's registration, but only if conn is
// still the registered connection. A stale unregister from a replaced
// connection must not evict the replacement.
func (r *Registry) Unregister(participantID kernel.UUID, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conns[participantID] == conn {
		delete(r.conns, participantID)
	}
}

// Lookup returns the participant's connection, if one is registered.
func (r *Registry) Lookup(participantID kernel.UUID) (Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.conns[participantID]
	return conn, ok
}

// Connections returns a point-in-time copy of all registrations.
func (r *Registry) Connections() map[kernel.UUID]Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[kernel.UUID]Conn, len(r.conns))
	for id, conn := range r.conns {
		snapshot[id] = conn
	}
	return snapshot
}
