// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CatalogUoW covers vendor and menu maintenance.
	CatalogUoW interface {
		TxManager
		VendorRepoFactory
		MenuItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW covers placement and the vendor/customer driven status changes.
	// Vendors are needed for ownership checks, menu items for pricing.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
		MenuItemRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW covers payment attempts and the order payment axis.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   attempt, err := uow.PaymentRepository().GetByTransactionRef(ctx, ref)
	//   o, err := uow.OrderRepository().Get(ctx, attempt.OrderID())
	//   // ... mutate both
	//
	//   err = uow.Commit(ctx)
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeliveryUoW covers delivery agents, their assignment sets and the order
	// delivery axis.
	DeliveryUoW interface {
		TxManager
		AgentRepoFactory
		OrderRepoFactory
		VendorRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReviewUoW covers reviews, eligibility lookups on orders and the vendor
	// rating cache.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		VendorRepoFactory
		MenuItemRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
