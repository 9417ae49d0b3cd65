package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// RetentionPeriod is how long orders are kept before housekeeping purges them.
const RetentionPeriod = 30 * 24 * time.Hour

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")

	ErrInvalidStatus = errs.NewValueIsInvalidErrorWithCause(
		"status", errors.New("target must be preparing, out_for_delivery or delivered"))
	ErrInvalidDeliveryStatus = errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus", errors.New("target must be out_for_delivery or delivered"))

	ErrAlreadyDelivered = errs.NewStateIsInvalidError("order is already delivered")
	ErrAlreadyPaid      = errs.NewStateIsInvalidError("order is already paid")
	ErrOrderNotPending  = errs.NewStateIsInvalidError("order delivery is not pending")

	ErrNotOrderCustomer = errs.NewForbiddenError("actor is not the customer of the order")
)

// Order is the aggregate root of the ordering lifecycle.
//
// Invariants:
//   - every line item belongs to the single vendor referenced by vendorID
//   - total equals Σ(unit price × quantity) and is fixed at placement
//   - the delivery address is a snapshot, never a live reference
//
// The three status axes are only linked by the cross-setting rules of the
// mutating methods below. Stricter transitions are deliberately not enforced.
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	vendorID       kernel.UUID
	items          []LineItem
	total          kernel.Money
	status         Status
	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus
	address        kernel.Address
	createdAt      time.Time
	updatedAt      time.Time

	events []ChangedEvent
	guard  guard.ConstructorGuard
}

// NewOrder places an order in state (ordered, pending, pending) and computes its total.
//
// Example:
//
//	item, _ := order.NewLineItem(menuItemID, "Masala Dosa", price, 2, "extra chutney")
//	o, err := order.NewOrder(customerID, vendorID, []order.LineItem{item}, address)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Total()) // price × 2
func NewOrder(customerID, vendorID kernel.UUID, items []LineItem, address kernel.Address) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		id:             kernel.NewUUID(),
		status:         Ordered,
		paymentStatus:  PaymentPending,
		deliveryStatus: DeliveryPending,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setItems(items),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	total, err := TotalOf(o.items)
	if err != nil {
		return nil, err
	}
	o.total = total

	o.record(ReasonPlaced)
	return o, nil
}

// RestoreOrder rebuilds an order from storage. The stored total is trusted as is.
func RestoreOrder(
	id, customerID, vendorID kernel.UUID,
	items []LineItem,
	total kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	deliveryStatus DeliveryStatus,
	address kernel.Address,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setItems(items),
		o.setAddress(address),
		total.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
		deliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.status = status
	o.paymentStatus = paymentStatus
	o.deliveryStatus = deliveryStatus
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) CustomerID() kernel.UUID        { return o.customerID }
func (o *Order) VendorID() kernel.UUID          { return o.vendorID }
func (o *Order) Total() kernel.Money            { return o.total }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) PaymentStatus() PaymentStatus   { return o.paymentStatus }
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }
func (o *Order) Address() kernel.Address        { return o.address }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }

// Items returns a copy of the line items in cart order.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// IsPlacedBy reports whether customerID owns the order.
func (o *Order) IsPlacedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// AuthorizeCustomer passes only the customer who placed the order.
func (o *Order) AuthorizeCustomer(actor kernel.Actor) error {
	if !actor.Is(kernel.Customer) || !o.IsPlacedBy(actor.ID()) {
		return ErrNotOrderCustomer
	}
	return nil
}

// AdvanceStatus sets status to preparing, out_for_delivery or delivered.
// Moving out for delivery or to delivered drags deliveryStatus along. Any
// order of calls is accepted, including ordered → delivered.
func (o *Order) AdvanceStatus(target Status) error {
	if !target.IsAdvanceTarget() {
		return ErrInvalidStatus
	}

	o.status = target
	switch target { //nolint:exhaustive // only the two delivery-linked targets cross-set
	case OutForDelivery:
		o.deliveryStatus = DeliveryOutForDelivery
	case Delivered:
		o.deliveryStatus = DeliveryDelivered
	}

	o.record(ReasonStatusAdvanced)
	return nil
}

// Cancel moves any non-delivered order to cancelled. Payment and delivery
// axes are left untouched; a completed payment is not refunded.
func (o *Order) Cancel() error {
	if o.status == Delivered {
		return ErrAlreadyDelivered
	}

	o.status = Cancelled
	o.record(ReasonCancelled)
	return nil
}

// ValidatePayable rejects orders whose payment already completed.
func (o *Order) ValidatePayable() error {
	if o.paymentStatus == PaymentCompleted {
		return ErrAlreadyPaid
	}
	return nil
}

// MarkPaid completes the payment axis. At most one attempt may complete it.
func (o *Order) MarkPaid() error {
	if err := o.ValidatePayable(); err != nil {
		return err
	}

	o.paymentStatus = PaymentCompleted
	o.record(ReasonPaymentCompleted)
	return nil
}

// ResetPayment moves the payment axis back to pending after a failed attempt.
func (o *Order) ResetPayment() {
	o.paymentStatus = PaymentPending
	o.record(ReasonPaymentReset)
}

func (o *Order) MarkRefunded() {
	o.paymentStatus = PaymentRefunded
	o.record(ReasonPaymentRefunded)
}

// ValidateDeliveryPending rejects orders already handed to an agent or delivered.
func (o *Order) ValidateDeliveryPending() error {
	if o.deliveryStatus != DeliveryPending {
		return ErrOrderNotPending
	}
	return nil
}

// StartDelivery is the agent's acceptance: both status and deliveryStatus
// become out_for_delivery.
func (o *Order) StartDelivery() error {
	if err := o.ValidateDeliveryPending(); err != nil {
		return err
	}

	o.status = OutForDelivery
	o.deliveryStatus = DeliveryOutForDelivery
	o.record(ReasonDeliveryStarted)
	return nil
}

// UpdateDelivery applies an agent-reported delivery status. Delivered also
// completes the overall status.
func (o *Order) UpdateDelivery(target DeliveryStatus) error {
	if !target.IsAgentTarget() {
		return ErrInvalidDeliveryStatus
	}

	o.deliveryStatus = target
	if target == DeliveryDelivered {
		o.status = Delivered
	}

	o.record(ReasonDeliveryUpdated)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []ChangedEvent {
	out := make([]ChangedEvent, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(reason string) {
	now := time.Now().UTC()
	o.updatedAt = now
	o.events = append(o.events, ChangedEvent{
		EventID:        kernel.NewUUID(),
		OrderID:        o.id,
		CustomerID:     o.customerID,
		VendorID:       o.vendorID,
		Reason:         reason,
		Status:         o.status,
		PaymentStatus:  o.paymentStatus,
		DeliveryStatus: o.deliveryStatus,
		OccurredAt:     now,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.vendorID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	validated := make([]LineItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		validated = append(validated, item)
	}

	o.items = validated
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
