package order_test

import (
	"testing"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Asha Rao", "12 MG Road", "Bengaluru", "Karnataka", "560001", "9876543210")
	require.NoError(t, err)
	return address
}

func codPayment(t *testing.T) order.PaymentInfo {
	t.Helper()
	payment, err := order.NewPaymentInfo("", "", "")
	require.NoError(t, err)
	return payment
}

func subOrderWithItems(t *testing.T, orderID kernel.UUID, items []order.LineItem, subtotal, tax kernel.Money) *order.SubOrder {
	t.Helper()
	so, err := order.NewSubOrder(
		kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(),
		subtotal, tax, 40, items, "")
	require.NoError(t, err)
	return so
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts created with no sub-orders", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testAddress(t), codPayment(t), " leave at door ")
		require.NoError(t, err)

		assert.Equal(t, order.StatusCreated, o.Status())
		assert.Empty(t, o.SubOrderIDs())
		assert.Equal(t, "leave at door", o.Note())
		assert.Equal(t, order.PaymentMethodCOD, o.Payment().Method())
	})

	t.Run("unconstructed address is rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.Address{}, codPayment(t), "")
		require.Error(t, err)
	})
}

func TestOrder_AttachSubOrders(t *testing.T) {
	t.Run("totals are the sums across sub-orders", func(t *testing.T) {
		// Cart from two shops: shop A has unit prices 50 and 30 (qty 1 and 2),
		// shop B has unit price 200 (qty 1).
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testAddress(t), codPayment(t), "")
		require.NoError(t, err)

		shopA := subOrderWithItems(t, o.ID(), []order.LineItem{
			lineItem(t, "Veg Roll", 50, 1),
			lineItem(t, "Lassi", 30, 2),
		}, 110, 6)
		shopB := subOrderWithItems(t, o.ID(), []order.LineItem{
			lineItem(t, "Family Biryani", 200, 1),
		}, 200, 10)

		require.NoError(t, o.AttachSubOrders([]*order.SubOrder{shopA, shopB}))

		assert.Equal(t, kernel.Money(156), shopA.Total())
		assert.Equal(t, kernel.Money(250), shopB.Total())
		assert.Equal(t, kernel.Money(406), o.TotalAmount())
		assert.Equal(t, 4, o.TotalQuantity())
		assert.Len(t, o.SubOrderIDs(), 2)
	})

	t.Run("attaching twice is a conflict", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testAddress(t), codPayment(t), "")
		require.NoError(t, err)
		so := subOrderWithItems(t, o.ID(), []order.LineItem{lineItem(t, "Veg Roll", 50, 1)}, 50, 3)
		require.NoError(t, o.AttachSubOrders([]*order.SubOrder{so}))

		err = o.AttachSubOrders([]*order.SubOrder{so})

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("attaching nothing is rejected", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testAddress(t), codPayment(t), "")
		require.NoError(t, err)

		require.ErrorIs(t, o.AttachSubOrders(nil), errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), testAddress(t), codPayment(t), "",
		406, 4, order.StatusCreated, ids)
	require.NoError(t, err)

	assert.Equal(t, kernel.Money(406), o.TotalAmount())
	assert.Equal(t, 4, o.TotalQuantity())
	assert.Len(t, o.SubOrderIDs(), 2)
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"created", "confirmed", "processing", "completed", "cancelled"} {
		status, err := order.ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, status.String())
	}

	_, err := order.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"customer", "shopOwner", "courier"} {
		role, err := order.ParseRole(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, role.String())
	}

	_, err := order.ParseRole("admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPaymentInfo(t *testing.T) {
	t.Run("defaults to COD pending", func(t *testing.T) {
		p, err := order.NewPaymentInfo("", "", "")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethodCOD, p.Method())
		assert.Equal(t, order.PaymentStatusPending, p.Status())
		assert.Empty(t, p.TransactionID())
	})

	t.Run("keeps gateway transaction id", func(t *testing.T) {
		p, err := order.NewPaymentInfo("RAZORPAY", "paid", "pay_123")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethodRazorpay, p.Method())
		assert.Equal(t, order.PaymentStatusPaid, p.Status())
		assert.Equal(t, "pay_123", p.TransactionID())
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		_, err := order.NewPaymentInfo("BARTER", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
