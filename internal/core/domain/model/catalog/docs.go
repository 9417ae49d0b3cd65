// Package catalog holds the vendor and menu item records consumed by order placement.
//
// A Vendor carries its derived rating fields (average and count). They are a cache
// of the vendor's review set: the rating aggregator rebuilds them wholesale through
// ApplyRating and nothing else writes them.
package catalog
