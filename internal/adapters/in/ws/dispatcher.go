package ws

import (
	"log/slog"

	"foodcourt/internal/core/domain/model/kernel"
)

// Envelope is the wire frame for every event: the event name plus its
// payload, exactly as the role-specific frontends expect.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Dispatcher delivers application events over registered websocket
// connections. Delivery is best-effort: a participant that is offline or
// whose connection fails mid-write simply misses the event, and the caller
// is never told. A connection that fails a write is evicted so the
// participant reconnects cleanly.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over the given presence registry.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger.With("component", "ws_dispatcher"),
	}
}

// Notify sends the event to one participant, if connected.
func (d *Dispatcher) Notify(participantID kernel.UUID, eventName string, payload any) {
	conn, ok := d.registry.Lookup(participantID)
	if !ok {
		d.logger.Debug("participant offline, event dropped",
			"participant_id", participantID.String(), "event", eventName)
		return
	}
	d.send(participantID, conn, eventName, payload)
}

// Broadcast sends the event to every connected participant.
func (d *Dispatcher) Broadcast(eventName string, payload any) {
	for participantID, conn := range d.registry.Connections() {
		d.send(participantID, conn, eventName, payload)
	}
}

func (d *Dispatcher) send(participantID kernel.UUID, conn Conn, eventName string, payload any) {
	err := conn.WriteJSON(Envelope{Event: eventName, Data: payload})
	if err == nil {
		return
	}

	d.logger.Debug("event delivery failed, evicting connection",
		"participant_id", participantID.String(), "event", eventName, "error", err)
	d.registry.Unregister(participantID, conn)
	_ = conn.Close()
}
