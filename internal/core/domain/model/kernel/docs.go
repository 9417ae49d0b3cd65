// Package kernel provides the shared value objects of the food ordering domain.
//
// The package includes:
//   - UUID: identifier of every aggregate
//   - Point: a geographic position in longitude/latitude order
//   - Money: an amount in integer minor currency units, so totals are exact
//   - Address: a delivery address snapshot copied into orders at placement
//   - Actor and Role: the authenticated caller supplied by the identity provider
//
// Every value object embeds a guard.ConstructorGuard and rejects zero values in Validate.
package kernel
