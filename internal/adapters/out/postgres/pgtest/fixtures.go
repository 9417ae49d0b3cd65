package pgtest

import (
	"time"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// NewVendor builds an unsaved vendor owned by ownerID.
func NewVendor(t require.TestingT, ownerID kernel.UUID) *catalog.Vendor {
	v, err := catalog.NewVendor(ownerID, "Dosa Corner", "South Indian", nil)
	require.NoError(t, err)
	return v
}

// NewMenuItem builds an unsaved, available menu item of vendorID.
func NewMenuItem(t require.TestingT, vendorID kernel.UUID, name string, price int64) *catalog.MenuItem {
	money, err := kernel.NewMoney(price)
	require.NoError(t, err)
	item, err := catalog.NewMenuItem(vendorID, name, "", money)
	require.NoError(t, err)
	return item
}

func NewAddress(t require.TestingT) kernel.Address {
	address, err := kernel.NewAddress("home", "12 MG Road", "Flat 3", "Bengaluru", "560001")
	require.NoError(t, err)
	return address
}

// NewOrder builds an unsaved order of two lines, 2×100 and 1×50, totalling 250.
func NewOrder(t require.TestingT, customerID, vendorID kernel.UUID) *order.Order {
	o, err := order.NewOrder(customerID, vendorID, newLines(t), NewAddress(t))
	require.NoError(t, err)
	return o
}

// RestoreOrder builds an unsaved order with the given status and creation time.
func RestoreOrder(
	t require.TestingT,
	customerID, vendorID kernel.UUID,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	total, err := kernel.NewMoney(250)
	require.NoError(t, err)

	deliveryStatus := order.DeliveryPending
	if status == order.Delivered {
		deliveryStatus = order.DeliveryDelivered
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, vendorID,
		newLines(t), total,
		status, order.PaymentPending, deliveryStatus,
		NewAddress(t), createdAt, createdAt,
	)
	require.NoError(t, err)
	return o
}

func newLines(t require.TestingT) []order.LineItem {
	hundred, err := kernel.NewMoney(100)
	require.NoError(t, err)
	fifty, err := kernel.NewMoney(50)
	require.NoError(t, err)

	first, err := order.NewLineItem(kernel.NewUUID(), "Masala Dosa", hundred, 2, "extra chutney")
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), "Filter Coffee", fifty, 1, "")
	require.NoError(t, err)

	return []order.LineItem{first, second}
}
