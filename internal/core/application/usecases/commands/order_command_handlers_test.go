package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, kernel.Customer)
	vendorID := kernel.NewUUID()
	itemA := newMenuItem(t, vendorID, "Masala Dosa", 100)
	itemB := newMenuItem(t, vendorID, "Filter Coffee", 50)

	cmd, err := commands.NewPlaceOrderCommand(customer, []services.CartLine{
		{MenuItemID: itemA.ID(), Quantity: 2},
		{MenuItemID: itemB.ID(), Quantity: 1},
	}, newAddress(t))
	require.NoError(t, err)

	menu := map[kernel.UUID]*catalog.MenuItem{itemA.ID(): itemA, itemB.ID(): itemB}

	uow, r := newUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.items.On("GetMany", ctx, []kernel.UUID{itemA.ID(), itemB.ID()}).Return(menu, nil).Once(),
		r.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	placed, err := commands.NewPlaceOrderCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(250), placed.Total().Amount())
	assert.True(t, placed.VendorID().IsEqual(vendorID))
	assert.True(t, placed.CustomerID().IsEqual(customer.ID()))
	assert.Equal(t, order.Ordered, placed.Status())
	assert.Equal(t, order.PaymentPending, placed.PaymentStatus())
	assert.Equal(t, order.DeliveryPending, placed.DeliveryStatus())
	uow.AssertExpectations(t)
	r.assert(t)
}

func TestPlaceOrderCommandHandler_Handle_MixedVendors(t *testing.T) {
	ctx := t.Context()
	itemA := newMenuItem(t, kernel.NewUUID(), "Masala Dosa", 100)
	itemB := newMenuItem(t, kernel.NewUUID(), "Biryani", 250)

	cmd, err := commands.NewPlaceOrderCommand(newActor(t, kernel.Customer), []services.CartLine{
		{MenuItemID: itemA.ID(), Quantity: 1},
		{MenuItemID: itemB.ID(), Quantity: 1},
	}, newAddress(t))
	require.NoError(t, err)

	uow, r := newUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.items.On("GetMany", ctx, mock.Anything).
			Return(map[kernel.UUID]*catalog.MenuItem{itemA.ID(): itemA, itemB.ID(): itemB}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewPlaceOrderCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrMixedVendorOrder)
	assert.True(t, errs.IsInvalidInput(err))
	r.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(newActor(t, kernel.Customer), []services.CartLine{
		{MenuItemID: kernel.NewUUID(), Quantity: 1},
	}, newAddress(t))
	require.NoError(t, err)

	uow, r := newUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.items.On("GetMany", ctx, mock.Anything).Return(map[kernel.UUID]*catalog.MenuItem{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewPlaceOrderCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrItemNotFound)
}

func TestPlaceOrderCommandHandler_Handle_NotCustomer(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(newActor(t, kernel.Vendor), []services.CartLine{
		{MenuItemID: kernel.NewUUID(), Quantity: 1},
	}, newAddress(t))
	require.NoError(t, err)
	factory := new(MockUoWFactory[commands.OrderUoW])

	_, err = commands.NewPlaceOrderCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrPlaceOrderForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestNewPlaceOrderCommand_Validation(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(newActor(t, kernel.Customer), nil, newAddress(t))
	require.ErrorIs(t, err, order.ErrItemsAreRequired)

	_, err = commands.NewPlaceOrderCommand(newActor(t, kernel.Customer),
		[]services.CartLine{{Quantity: 1}}, newAddress(t))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero commands.PlaceOrderCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestAdvanceOrderStatusCommandHandler_Handle(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("out_for_delivery drags delivery status", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, ownerID)
		o := newOrder(t, kernel.NewUUID(), vendor.ID(), 250)
		cmd, err := commands.NewAdvanceOrderStatusCommand(actorWithID(t, ownerID, kernel.Vendor), o.ID(), order.OutForDelivery)
		require.NoError(t, err)

		uow, r := newUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once(),
			r.orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewAdvanceOrderStatusCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, order.DeliveryOutForDelivery, o.DeliveryStatus())
		r.assert(t)
	})

	t.Run("admin may jump straight to delivered", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, ownerID)
		o := newOrder(t, kernel.NewUUID(), vendor.ID(), 250)
		cmd, err := commands.NewAdvanceOrderStatusCommand(newActor(t, kernel.Admin), o.ID(), order.Delivered)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once()
		r.orders.On("Update", ctx, o).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewAdvanceOrderStatusCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.DeliveryDelivered, o.DeliveryStatus())
	})

	t.Run("foreign vendor is forbidden", func(t *testing.T) {
		ctx := t.Context()
		vendor := newVendor(t, ownerID)
		o := newOrder(t, kernel.NewUUID(), vendor.ID(), 250)
		cmd, err := commands.NewAdvanceOrderStatusCommand(newActor(t, kernel.Vendor), o.ID(), order.Preparing)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		r.vendors.On("Get", ctx, vendor.ID()).Return(vendor, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewAdvanceOrderStatusCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Ordered, o.Status())
	})

	t.Run("missing order", func(t *testing.T) {
		ctx := t.Context()
		orderID := kernel.NewUUID()
		cmd, err := commands.NewAdvanceOrderStatusCommand(newActor(t, kernel.Admin), orderID, order.Preparing)
		require.NoError(t, err)

		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewAdvanceOrderStatusCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("cancelled and ordered are not advance targets", func(t *testing.T) {
		for _, s := range []order.Status{order.Cancelled, order.Ordered, order.UnknownStatus} {
			_, err := commands.NewAdvanceOrderStatusCommand(newActor(t, kernel.Admin), kernel.NewUUID(), s)
			require.ErrorIs(t, err, order.ErrInvalidStatus, s.String())
			assert.True(t, errs.IsInvalidInput(err))
		}
	})
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	ownerID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	run := func(t *testing.T, actor kernel.Actor, o *order.Order, vendor *catalog.Vendor, expectUpdate bool) error {
		t.Helper()
		ctx := t.Context()
		uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		r.vendors.On("Get", ctx, o.VendorID()).Return(vendor, nil).Maybe()
		if expectUpdate {
			r.orders.On("Update", ctx, o).Return(nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()
		}
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewCancelOrderCommand(actor, o.ID())
		require.NoError(t, err)
		err = commands.NewCancelOrderCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)
		r.assert(t)
		return err
	}

	t.Run("owning customer cancels", func(t *testing.T) {
		vendor := newVendor(t, ownerID)
		o := newOrder(t, customerID, vendor.ID(), 100)

		require.NoError(t, run(t, actorWithID(t, customerID, kernel.Customer), o, vendor, true))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("owning vendor cancels a paid order without refund", func(t *testing.T) {
		vendor := newVendor(t, ownerID)
		o := newOrder(t, customerID, vendor.ID(), 100)
		require.NoError(t, o.MarkPaid())

		require.NoError(t, run(t, actorWithID(t, ownerID, kernel.Vendor), o, vendor, true))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		vendor := newVendor(t, ownerID)
		o := newOrder(t, customerID, vendor.ID(), 100)

		err := run(t, newActor(t, kernel.Customer), o, vendor, false)
		require.ErrorIs(t, err, order.ErrNotOrderCustomer)
	})

	t.Run("delivery agent is forbidden", func(t *testing.T) {
		vendor := newVendor(t, ownerID)
		o := newOrder(t, customerID, vendor.ID(), 100)

		err := run(t, newActor(t, kernel.DeliveryAgent), o, vendor, false)
		require.ErrorIs(t, err, commands.ErrCancelOrderForbidden)
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		vendor := newVendor(t, ownerID)
		o := newOrder(t, customerID, vendor.ID(), 100)
		require.NoError(t, o.AdvanceStatus(order.Delivered))

		err := run(t, newActor(t, kernel.Admin), o, vendor, false)
		require.ErrorIs(t, err, order.ErrAlreadyDelivered)
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})
}

func TestCancelOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, kernel.NewUUID(), kernel.NewUUID(), 100)
	cmd, err := commands.NewCancelOrderCommand(newActor(t, kernel.Admin), o.ID())
	require.NoError(t, err)

	uow, r := newUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		r.orders.On("Update", ctx, o).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCancelOrderCommandHandler(factoryFor[commands.OrderUoW](uow)).Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
