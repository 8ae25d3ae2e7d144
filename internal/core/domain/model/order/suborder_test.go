package order_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subOrderFixture struct {
	subOrder *order.SubOrder
	ownerID  kernel.UUID
	shopID   kernel.UUID
	orderID  kernel.UUID
}

func lineItem(t *testing.T, name string, price kernel.Money, qty int) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), name, price, qty)
	require.NoError(t, err)
	return li
}

func newSubOrderFixture(t *testing.T) subOrderFixture {
	t.Helper()

	ownerID := kernel.NewUUID()
	shopID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	items := []order.LineItem{
		lineItem(t, "Masala Dosa", 60, 1),
		lineItem(t, "Filter Coffee", 20, 2),
	}

	subOrder, err := order.NewSubOrder(
		kernel.NewUUID(), orderID, shopID, ownerID,
		100, 5, 40, items, "")
	require.NoError(t, err)

	return subOrderFixture{subOrder: subOrder, ownerID: ownerID, shopID: shopID, orderID: orderID}
}

func actor(t *testing.T, role order.Role, id kernel.UUID) order.Actor {
	t.Helper()
	a, err := order.NewActor(role, id)
	require.NoError(t, err)
	return a
}

func TestNewSubOrder(t *testing.T) {
	t.Run("total is subtotal plus tax plus delivery fee", func(t *testing.T) {
		f := newSubOrderFixture(t)

		assert.Equal(t, kernel.Money(100), f.subOrder.Subtotal())
		assert.Equal(t, kernel.Money(5), f.subOrder.Tax())
		assert.Equal(t, kernel.Money(40), f.subOrder.DeliveryFee())
		assert.Equal(t, kernel.Money(145), f.subOrder.Total())
		assert.Equal(t, order.SubOrderPending, f.subOrder.Status())
		assert.Nil(t, f.subOrder.Courier())
		assert.Equal(t, 3, f.subOrder.TotalQuantity())
	})

	t.Run("subtotal must match line item sum", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "Masala Dosa", 60, 1)}

		_, err := order.NewSubOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			999, 5, 40, items, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires at least one line item", func(t *testing.T) {
		_, err := order.NewSubOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, 0, 40, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSubOrder_OwnerTransitions(t *testing.T) {
	t.Run("owner accepts pending into preparing", func(t *testing.T) {
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)

		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderPreparing))
		assert.Equal(t, order.SubOrderPreparing, f.subOrder.Status())
	})

	t.Run("owner rejects pending into cancelled", func(t *testing.T) {
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)

		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderCancelled))
		assert.Equal(t, order.SubOrderCancelled, f.subOrder.Status())
	})

	t.Run("owner may not set accepted directly", func(t *testing.T) {
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)

		err := f.subOrder.ChangeStatus(owner, order.SubOrderAccepted)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.SubOrderPending, f.subOrder.Status())
	})

	t.Run("owner may not set courier statuses", func(t *testing.T) {
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)

		for _, target := range []order.SubOrderStatus{order.SubOrderOutForDelivery, order.SubOrderDelivered} {
			err := f.subOrder.ChangeStatus(owner, target)
			require.ErrorIs(t, err, errs.ErrNotAuthorized, "target %s", target)
		}
		assert.Equal(t, order.SubOrderPending, f.subOrder.Status())
	})

	t.Run("a different owner identity is rejected", func(t *testing.T) {
		f := newSubOrderFixture(t)
		impostor := actor(t, order.RoleShopOwner, kernel.NewUUID())

		err := f.subOrder.ChangeStatus(impostor, order.SubOrderPreparing)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.SubOrderPending, f.subOrder.Status())
	})

	t.Run("cancel after acceptance is a conflict", func(t *testing.T) {
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)
		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderPreparing))

		err := f.subOrder.ChangeStatus(owner, order.SubOrderCancelled)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.SubOrderPreparing, f.subOrder.Status())
	})

	t.Run("ready_for_pickup requires an assigned courier", func(t *testing.T) {
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)
		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderPreparing))

		err := f.subOrder.ChangeStatus(owner, order.SubOrderReadyForPickup)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("ready_for_pickup succeeds once a courier claimed", func(t *testing.T) {
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)
		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderPreparing))
		require.NoError(t, f.subOrder.Claim(kernel.NewUUID()))

		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderReadyForPickup))
		assert.Equal(t, order.SubOrderReadyForPickup, f.subOrder.Status())
	})
}

func TestSubOrder_OtherRoles(t *testing.T) {
	t.Run("customer may not drive the state machine", func(t *testing.T) {
		f := newSubOrderFixture(t)
		customer := actor(t, order.RoleCustomer, kernel.NewUUID())

		err := f.subOrder.ChangeStatus(customer, order.SubOrderPreparing)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("courier may not accept or cancel for the shop", func(t *testing.T) {
		f := newSubOrderFixture(t)
		courier := actor(t, order.RoleCourier, kernel.NewUUID())

		require.ErrorIs(t, f.subOrder.ChangeStatus(courier, order.SubOrderPreparing), errs.ErrNotAuthorized)
		require.ErrorIs(t, f.subOrder.ChangeStatus(courier, order.SubOrderCancelled), errs.ErrNotAuthorized)
	})
}

func TestSubOrder_Claim(t *testing.T) {
	preparing := func(t *testing.T) subOrderFixture {
		t.Helper()
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)
		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderPreparing))
		return f
	}

	t.Run("claim assigns the courier and advances to accepted", func(t *testing.T) {
		f := preparing(t)
		courierID := kernel.NewUUID()

		require.NoError(t, f.subOrder.Claim(courierID))

		assert.Equal(t, order.SubOrderAccepted, f.subOrder.Status())
		require.NotNil(t, f.subOrder.Courier())
		assert.True(t, f.subOrder.IsAssignedTo(courierID))
	})

	t.Run("second claim is a conflict and does not reassign", func(t *testing.T) {
		f := preparing(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, f.subOrder.Claim(first))

		err := f.subOrder.Claim(second)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, f.subOrder.IsAssignedTo(first))
	})

	t.Run("claim before owner acceptance is a conflict", func(t *testing.T) {
		f := newSubOrderFixture(t)

		err := f.subOrder.Claim(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.SubOrderPending, f.subOrder.Status())
	})
}

func TestSubOrder_CourierTransitions(t *testing.T) {
	claimed := func(t *testing.T) (subOrderFixture, order.Actor) {
		t.Helper()
		f := newSubOrderFixture(t)
		owner := actor(t, order.RoleShopOwner, f.ownerID)
		require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderPreparing))
		courierID := kernel.NewUUID()
		require.NoError(t, f.subOrder.Claim(courierID))
		return f, actor(t, order.RoleCourier, courierID)
	}

	t.Run("assigned courier walks pickup and delivery", func(t *testing.T) {
		f, courier := claimed(t)

		require.NoError(t, f.subOrder.ChangeStatus(courier, order.SubOrderReadyForPickup))
		require.NoError(t, f.subOrder.ChangeStatus(courier, order.SubOrderOutForDelivery))
		require.NoError(t, f.subOrder.ChangeStatus(courier, order.SubOrderDelivered))
		assert.Equal(t, order.SubOrderDelivered, f.subOrder.Status())
	})

	t.Run("courier may leave directly with the order", func(t *testing.T) {
		f, courier := claimed(t)

		require.NoError(t, f.subOrder.ChangeStatus(courier, order.SubOrderOutForDelivery))
		assert.Equal(t, order.SubOrderOutForDelivery, f.subOrder.Status())
	})

	t.Run("delivered requires out_for_delivery first", func(t *testing.T) {
		f, courier := claimed(t)

		err := f.subOrder.ChangeStatus(courier, order.SubOrderDelivered)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("an unassigned courier is rejected", func(t *testing.T) {
		f, _ := claimed(t)
		stranger := actor(t, order.RoleCourier, kernel.NewUUID())

		err := f.subOrder.ChangeStatus(stranger, order.SubOrderOutForDelivery)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("no transitions out of delivered", func(t *testing.T) {
		f, courier := claimed(t)
		require.NoError(t, f.subOrder.ChangeStatus(courier, order.SubOrderOutForDelivery))
		require.NoError(t, f.subOrder.ChangeStatus(courier, order.SubOrderDelivered))

		err := f.subOrder.ChangeStatus(courier, order.SubOrderOutForDelivery)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestSubOrder_RevertToPending(t *testing.T) {
	f := newSubOrderFixture(t)
	owner := actor(t, order.RoleShopOwner, f.ownerID)
	require.NoError(t, f.subOrder.ChangeStatus(owner, order.SubOrderCancelled))

	err := f.subOrder.ChangeStatus(owner, order.SubOrderPending)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.SubOrderCancelled, f.subOrder.Status())
}

func TestParseSubOrderStatus(t *testing.T) {
	t.Run("known statuses round-trip", func(t *testing.T) {
		for _, raw := range []string{
			"pending", "preparing", "accepted", "ready_for_pickup",
			"out_for_delivery", "delivered", "cancelled",
		} {
			status, err := order.ParseSubOrderStatus(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, status.String())
		}
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		_, err := order.ParseSubOrderStatus("rejected")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSubOrder_Restore(t *testing.T) {
	f := newSubOrderFixture(t)
	courierID := kernel.NewUUID()

	restored, err := order.RestoreSubOrder(
		f.subOrder.ID(), f.orderID, f.shopID, f.ownerID,
		100, 5, 40, 145,
		order.SubOrderAccepted, &courierID,
		f.subOrder.Items(), "ring the bell")
	require.NoError(t, err)

	assert.Equal(t, order.SubOrderAccepted, restored.Status())
	assert.Equal(t, kernel.Money(145), restored.Total())
	assert.True(t, restored.IsAssignedTo(courierID))
	assert.Equal(t, "ring the bell", restored.Note())
}
