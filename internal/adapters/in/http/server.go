// Package http adapts the generated server interface onto the application's
// command and query handlers. Handlers stay thin: read identity, bind input,
// call the use case, translate the outcome.
package http

import (
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	updateStatusHandler commands.UpdateSubOrderStatusCommandHandler
	claimHandler        commands.ClaimSubOrderCommandHandler

	// Query handlers
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getShopOrdersHandler     queries.GetShopOrdersQueryHandler
	getCourierOrdersHandler  queries.GetCourierOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStatusHandler commands.UpdateSubOrderStatusCommandHandler,
	claimHandler commands.ClaimSubOrderCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getShopOrdersHandler queries.GetShopOrdersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		claimHandler:             claimHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getShopOrdersHandler:     getShopOrdersHandler,
		getCourierOrdersHandler:  getCourierOrdersHandler,
	}
}

// PlaceOrder handles POST /api/v1/orders - submits a multi-shop cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}
	if err = requireRole(actor, order.RoleCustomer); err != nil {
		return err
	}

	var request servers.PlaceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	address, err := kernel.NewAddress(
		request.Address.Name,
		request.Address.Line,
		request.Address.City,
		request.Address.State,
		request.Address.Pincode,
		request.Address.Mobile,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	payment, err := paymentFromRequest(request.Payment)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]services.CartLine, 0, len(request.Items))
	for _, item := range request.Items {
		itemID, idErr := kernel.UUIDFromBytes(item.ItemId[:])
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		lines = append(lines, services.CartLine{ItemID: itemID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, actor.ID(), address, payment, noteValue(request.Note), lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}
	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(view))
}

// GetCustomerOrders handles GET /api/v1/orders - the caller's order history.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}
	if err = requireRole(actor, order.RoleCustomer); err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}
	views, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = orderResponse(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderById handles GET /api/v1/orders/:orderId - one order in full detail.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}
	if err = requireRole(actor, order.RoleCustomer); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(orderID, actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}
	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(view))
}

// GetShopOrders handles GET /api/v1/shop/orders - the owner's work queue.
func (s *Server) GetShopOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}
	if err = requireRole(actor, order.RoleShopOwner); err != nil {
		return err
	}

	query, err := queries.NewGetShopOrdersQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}
	views, err := s.getShopOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, subOrderResponses(views))
}

// UpdateSubOrderStatus handles PATCH /api/v1/suborders/:subOrderId/status.
// Which transitions the actor may perform is decided by the domain, so no
// role gate here.
func (s *Server) UpdateSubOrderStatus(ctx echo.Context, subOrderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var request servers.StatusUpdateRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	subOrderID, err := kernel.UUIDFromBytes(subOrderId[:])
	if err != nil {
		return respondError(ctx, err)
	}
	cmd, err := commands.NewUpdateSubOrderStatusCommand(actor, subOrderID, string(request.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimSubOrder handles POST /api/v1/suborders/:subOrderId/claim - first
// courier to land the claim gets the delivery.
func (s *Server) ClaimSubOrder(ctx echo.Context, subOrderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}
	if err = requireRole(actor, order.RoleCourier); err != nil {
		return err
	}

	subOrderID, err := kernel.UUIDFromBytes(subOrderId[:])
	if err != nil {
		return respondError(ctx, err)
	}
	cmd, err := commands.NewClaimSubOrderCommand(subOrderID, actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.claimHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryOrders handles GET /api/v1/delivery/orders - the courier's
// assigned sub-orders.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}
	if err = requireRole(actor, order.RoleCourier); err != nil {
		return err
	}

	query, err := queries.NewGetCourierOrdersQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}
	views, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, subOrderResponses(views))
}

func paymentFromRequest(payment *servers.PaymentInfo) (order.PaymentInfo, error) {
	if payment == nil {
		return order.NewPaymentInfo("", "", "")
	}

	var method, status, transactionID string
	if payment.Method != nil {
		method = string(*payment.Method)
	}
	if payment.Status != nil {
		status = string(*payment.Status)
	}
	if payment.TransactionId != nil {
		transactionID = *payment.TransactionId
	}
	return order.NewPaymentInfo(method, status, transactionID)
}

func noteValue(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}
