// Package commands contains the write-side operations: each command
// validates its input, runs inside a unit of work, and persists aggregate
// changes with compare-and-swap guarded writes.
package commands

import (
	"context"

	"sokoni/internal/core/ports"
)

// Narrow unit-of-work interfaces so each handler declares exactly the
// repositories it touches.
type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides the delivery repository bound to the transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// RiderRepoFactory provides the rider repository bound to the transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// ProductRepoFactory provides the product repository bound to the transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ShopRepoFactory provides the shop repository bound to the transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// OutboxRepoFactory provides the outbox repository bound to the transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CheckoutUoW covers checkout: orders, deliveries, stock, shops and
	// queued notifications change in one transaction.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		ProductRepoFactory
		ShopRepoFactory
		OutboxRepoFactory
	}

	// CheckoutUoWFactory creates checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW covers order status changes and cancellations: the order,
	// its delivery, restored stock, the owning shop and notifications.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		ProductRepoFactory
		ShopRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW covers rider-side delivery operations with their order
	// cascades, rider totals, restored stock and notifications.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		RiderRepoFactory
		ProductRepoFactory
		OutboxRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RiderUoW covers rider profile management.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// OutboxUoW covers the notification dispatch job's writes.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
