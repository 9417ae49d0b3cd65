// Package agent implements the DeliveryAgent aggregate and its assignment set.
//
// The assignment set holds the orders currently active for an agent. It is an
// owned collection with set semantics: adding an order twice keeps one entry and
// removal matches an exact order reference. Delivered orders leave the set, so the
// set is not a delivery history.
package agent
