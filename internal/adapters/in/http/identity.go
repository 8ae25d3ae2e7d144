package http

import (
	"net/http"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway after the identity service has
// authenticated the participant.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// actorFromRequest reads the authenticated participant from the identity
// headers. Requests without a usable identity are rejected as unauthorized
// before any handler logic runs.
func actorFromRequest(ctx echo.Context) (order.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return order.Actor{}, echo.NewHTTPError(http.StatusUnauthorized,
			"X-User-Id header must carry the authenticated participant id")
	}

	role, err := order.ParseRole(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return order.Actor{}, echo.NewHTTPError(http.StatusUnauthorized,
			"X-User-Role header must carry a known role")
	}

	return order.NewActor(role, id)
}

// requireRole rejects actors whose role does not match the endpoint's
// audience. Endpoints whose authorization depends on the sub-order state
// leave the check to the domain instead.
func requireRole(actor order.Actor, role order.Role) error {
	if actor.Role() != role {
		return echo.NewHTTPError(http.StatusForbidden,
			"endpoint is restricted to role "+role.String())
	}
	return nil
}
