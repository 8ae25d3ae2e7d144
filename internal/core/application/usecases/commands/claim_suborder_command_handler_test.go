package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimSubOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	w := newSubOrderWorld(t)

	// The repository hands back the row as persisted after the winning claim.
	require.NoError(t, w.subOrder.ChangeStatus(w.owner, order.SubOrderPreparing))
	courierID := kernel.NewUUID()
	require.NoError(t, w.subOrder.Claim(courierID))

	cmd, err := commands.NewClaimSubOrderCommand(w.subOrder.ID(), courierID)
	require.NoError(t, err)

	_, subOrderRepo, uow, factory, directory, notifier := newStatusHandlerMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	subOrderRepo.On("Claim", ctx, w.subOrder.ID(), courierID).Return(w.subOrder, nil).Once()
	directory.On("GetShop", ctx, w.shop.ID).Return(w.shop, nil).Once()

	notifier.On("Broadcast", ports.EventOrderStatusUpdated, mock.MatchedBy(func(p ports.OrderStatusUpdatedPayload) bool {
		return p.Status == "accepted" && p.DeliveryBoy != nil && *p.DeliveryBoy == courierID.String()
	})).Return().Once()
	notifier.On("Notify", w.shop.OwnerID, ports.EventOrderAcceptedByBoy, mock.MatchedBy(func(p ports.OrderAcceptedPayload) bool {
		return p.DeliveryBoy == courierID.String() && p.ShopName == "Dosa Corner"
	})).Return().Once()
	notifier.On("Broadcast", ports.EventOrderRequestAccepted, mock.MatchedBy(func(p ports.OrderRequestAcceptedPayload) bool {
		return p.AcceptedBy == courierID.String()
	})).Return().Once()

	h := commands.NewClaimSubOrderCommandHandler(factory, directory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	notifier.AssertExpectations(t)
	subOrderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimSubOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	w := newSubOrderWorld(t)
	courierID := kernel.NewUUID()

	cmd, err := commands.NewClaimSubOrderCommand(w.subOrder.ID(), courierID)
	require.NoError(t, err)

	_, subOrderRepo, uow, factory, directory, notifier := newStatusHandlerMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	subOrderRepo.On("Claim", ctx, w.subOrder.ID(), courierID).
		Return(nil, errs.NewConflictError("subOrder", "accepted")).Once()

	h := commands.NewClaimSubOrderCommandHandler(factory, directory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}
