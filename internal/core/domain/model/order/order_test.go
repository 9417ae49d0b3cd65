package order_test

import (
	"math"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(t *testing.T, price int64, qty int) order.LineItem {
	t.Helper()
	p, err := kernel.NewMoney(price)
	require.NoError(t, err)
	li, err := order.NewLineItem(kernel.NewUUID(), "item", p, qty, "")
	require.NoError(t, err)
	return li
}

func address(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("Home", "12 MG Road", "", "Bengaluru", "560001")
	require.NoError(t, err)
	return a
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{lineItem(t, 100, 2), lineItem(t, 50, 1)}, address(t))
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	t.Run("should place order with computed total", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, 100, 2), lineItem(t, 50, 1)}

		o, err := order.NewOrder(customerID, vendorID, items, address(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(250), o.Total().Amount())
		assert.Equal(t, order.Ordered, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
		assert.True(t, o.IsPlacedBy(customerID))
		assert.True(t, o.VendorID().IsEqual(vendorID))
		assert.Len(t, o.Items(), 2)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.ReasonPlaced, events[0].Reason)
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))
	})

	t.Run("should require at least one item", func(t *testing.T) {
		o, err := order.NewOrder(customerID, vendorID, nil, address(t))

		require.ErrorIs(t, err, order.ErrItemsAreRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject total that does not fit in money", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, math.MaxInt64/2+1, 1), lineItem(t, math.MaxInt64/2+1, 1)}

		o, err := order.NewOrder(customerID, vendorID, items, address(t))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, o)
	})

	t.Run("should join construction errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, vendorID, []order.LineItem{{}}, kernel.Address{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})

	t.Run("items are copied", func(t *testing.T) {
		o := newOrder(t)

		items := o.Items()
		items[0] = order.LineItem{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	total, _ := kernel.NewMoney(250)
	created := time.Now().Add(-time.Hour).UTC()

	t.Run("should restore all axes", func(t *testing.T) {
		o, err := order.RestoreOrder(id, kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{lineItem(t, 250, 1)}, total,
			order.Preparing, order.PaymentCompleted, order.DeliveryPending,
			address(t), created, created)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		_, err := order.RestoreOrder(id, kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{lineItem(t, 250, 1)}, total,
			order.UnknownStatus, order.UnknownPaymentStatus, order.UnknownDeliveryStatus,
			address(t), created, created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "paymentStatus")
		assert.Contains(t, err.Error(), "deliveryStatus")
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestOrder_AdvanceStatus(t *testing.T) {
	t.Run("preparing leaves delivery untouched", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AdvanceStatus(order.Preparing))

		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
	})

	t.Run("out_for_delivery cross-sets delivery status", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AdvanceStatus(order.OutForDelivery))

		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, order.DeliveryOutForDelivery, o.DeliveryStatus())
	})

	t.Run("delivered cross-sets delivery status", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AdvanceStatus(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.DeliveryDelivered, o.DeliveryStatus())
	})

	t.Run("no ordering is enforced between calls", func(t *testing.T) {
		// Given a delivered order
		o := newOrder(t)
		require.NoError(t, o.AdvanceStatus(order.Delivered))

		// When it is moved back to preparing
		err := o.AdvanceStatus(order.Preparing)

		// Then the backwards move is accepted; delivery status keeps its last value
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.DeliveryDelivered, o.DeliveryStatus())
	})

	for _, target := range []order.Status{order.Ordered, order.Cancelled, order.UnknownStatus} {
		t.Run("rejects "+target.String(), func(t *testing.T) {
			o := newOrder(t)

			err := o.AdvanceStatus(target)

			require.ErrorIs(t, err, order.ErrInvalidStatus)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Ordered, o.Status())
			assert.Empty(t, o.DomainEvents())
		})
	}
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels regardless of payment and delivery", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.StartDelivery())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus(), "cancel does not refund")
		assert.Equal(t, order.DeliveryOutForDelivery, o.DeliveryStatus())
	})

	t.Run("delivered orders cannot be cancelled", func(t *testing.T) {
		paymentStates := []func(o *order.Order){
			func(*order.Order) {},
			func(o *order.Order) { _ = o.MarkPaid() },
			func(o *order.Order) { o.MarkRefunded() },
		}

		for _, setPayment := range paymentStates {
			o := newOrder(t)
			setPayment(o)
			require.NoError(t, o.AdvanceStatus(order.Delivered))

			err := o.Cancel()

			require.ErrorIs(t, err, order.ErrAlreadyDelivered)
			require.ErrorIs(t, err, errs.ErrStateIsInvalid)
			assert.Equal(t, order.Delivered, o.Status())
		}
	})
}

func TestOrder_PaymentAxis(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.ValidatePayable())
	require.NoError(t, o.MarkPaid())
	assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())

	require.ErrorIs(t, o.ValidatePayable(), order.ErrAlreadyPaid)
	require.ErrorIs(t, o.MarkPaid(), order.ErrAlreadyPaid)

	o.MarkRefunded()
	assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())

	o.ResetPayment()
	o.ResetPayment()
	assert.Equal(t, order.PaymentPending, o.PaymentStatus())

	reasons := make([]string, 0)
	for _, e := range o.DomainEvents() {
		reasons = append(reasons, e.Reason)
	}
	assert.Equal(t, []string{
		order.ReasonPaymentCompleted,
		order.ReasonPaymentRefunded,
		order.ReasonPaymentReset,
		order.ReasonPaymentReset,
	}, reasons)
}

func TestOrder_DeliveryAxis(t *testing.T) {
	t.Run("start delivery requires pending", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, order.DeliveryOutForDelivery, o.DeliveryStatus())

		require.ErrorIs(t, o.StartDelivery(), order.ErrOrderNotPending)
		require.ErrorIs(t, o.ValidateDeliveryPending(), errs.ErrStateIsInvalid)
	})

	t.Run("delivered completes overall status", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.StartDelivery())

		require.NoError(t, o.UpdateDelivery(order.DeliveryDelivered))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.DeliveryDelivered, o.DeliveryStatus())
	})

	t.Run("out_for_delivery leaves overall status", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.UpdateDelivery(order.DeliveryOutForDelivery))

		assert.Equal(t, order.Ordered, o.Status())
		assert.Equal(t, order.DeliveryOutForDelivery, o.DeliveryStatus())
	})

	t.Run("pending is not an agent target", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.UpdateDelivery(order.DeliveryPending), order.ErrInvalidDeliveryStatus)
	})
}

func TestOrder_AuthorizeCustomer(t *testing.T) {
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(customerID, kernel.NewUUID(), []order.LineItem{lineItem(t, 10, 1)}, address(t))
	require.NoError(t, err)

	owner, _ := kernel.NewActor(customerID, kernel.Customer)
	stranger, _ := kernel.NewActor(kernel.NewUUID(), kernel.Customer)
	admin, _ := kernel.NewActor(customerID, kernel.Admin)

	require.NoError(t, o.AuthorizeCustomer(owner))
	require.ErrorIs(t, o.AuthorizeCustomer(stranger), errs.ErrForbidden)
	require.ErrorIs(t, o.AuthorizeCustomer(admin), order.ErrNotOrderCustomer)
}
