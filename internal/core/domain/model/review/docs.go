// Package review implements customer reviews of vendors and their menu items.
//
// A review may only be written by a customer who has a delivered order from
// the vendor, and a customer holds one review per vendor and menu item. Every
// review mutation invalidates the vendor's cached rating.
package review
