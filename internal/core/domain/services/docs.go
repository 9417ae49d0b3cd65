// Package services provides domain services whose rules span more than one
// aggregate.
//
// The package includes:
//   - CartPricer: resolves cart lines against catalog menu items into priced order line items
//   - RatingAggregator: rebuilds a vendor's cached rating from its full review set
package services
