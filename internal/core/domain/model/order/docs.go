// Package order implements the Order aggregate: placement, the overall status
// machine and the payment and delivery axes that other components drive.
//
// Key business rules:
//   - an order is placed in state (ordered, pending, pending) with at least one line item
//   - the total is Σ(unit price × quantity), computed once at placement
//   - AdvanceStatus accepts preparing, out_for_delivery and delivered in any order
//   - Cancel is refused only for delivered orders
//   - accepting a delivery requires deliveryStatus pending
//
// Every change of a status axis records a ChangedEvent.
package order
