// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TicketSequencerFactory provides access to the ticket sequencer within
	// a transaction, so issued numbers roll back with the order.
	TicketSequencerFactory interface {
		TicketSequencer() ports.TicketSequencer
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands modify an existing order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which also
	// needs ticket issuance in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   kitchen, err := uow.TicketSequencer().Next(ctx, tenantID, order.KitchenSeries)
	//   // ... build and persist the order
	//
	//   err = uow.Commit(ctx)
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		TicketSequencerFactory
	}

	// CreateOrderUoWFactory creates new unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}
)
