// Package payment models payment attempts for an order.
//
// An attempt is created in state initiated with a fresh transaction reference and
// is then driven by gateway callbacks keyed by that reference:
//
//	initiated ──success──> success ──refund──> refunded
//	    │
//	    └──failure──> failed ──retry──> (new attempt, initiated)
//
// Several attempts may exist per order. Retry clones the most recent failed one.
package payment
