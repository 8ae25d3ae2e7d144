package ws

import (
	"io"
	"net/http"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"
)

// socketConn adapts *websocket.Conn to the registry's Conn.
type socketConn struct {
	ws *websocket.Conn
}

func (c socketConn) WriteJSON(v any) error {
	return websocket.JSON.Send(c.ws, v)
}

func (c socketConn) Close() error {
	return c.ws.Close()
}

// Handler serves the subscription endpoint. Clients connect once after
// login and hold the connection for the whole session.
type Handler struct {
	registry *Registry
}

// NewHandler creates the subscription handler over the presence registry.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// Subscribe handles GET /ws?participant_id=<uuid>. The connection stays
// registered until the client disconnects; frames sent by the client are
// drained and ignored, the channel is server-to-client only.
func (h *Handler) Subscribe(c echo.Context) error {
	participantID, err := kernel.UUIDFromString(c.QueryParam("participant_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "participant_id must be a valid UUID")
	}

	websocket.Handler(func(ws *websocket.Conn) {
		conn := socketConn{ws: ws}
		h.registry.Register(participantID, conn)
		defer h.registry.Unregister(participantID, conn)

		_, _ = io.Copy(io.Discard, ws)
	}).ServeHTTP(c.Response(), c.Request())

	return nil
}
