// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"procurement/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReturnRepoFactory provides access to the return repository within a transaction.
	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	// CreditNoteRepoFactory provides access to the credit note repository within a transaction.
	CreditNoteRepoFactory interface {
		CreditNoteRepository() ports.CreditNoteRepository
	}

	// ProductRepoFactory provides access to the inventory repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ProductMappingRepoFactory provides access to established catalog-to-product
	// mappings within a transaction.
	ProductMappingRepoFactory interface {
		ProductMappingRepository() ports.ProductMappingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that touch nothing but the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages the delivery confirmation transaction: the order, the
	// inventory it feeds and the catalog mappings established along the way all
	// commit or roll back together.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		ProductMappingRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReturnUoW manages transactions for return registration, which reads the
	// referenced order while writing the return.
	ReturnUoW interface {
		TxManager
		ReturnRepoFactory
		OrderRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// CreditNoteUoW manages the return settlement transaction: completing the
	// return and issuing its credit note are a single atomic step.
	CreditNoteUoW interface {
		TxManager
		ReturnRepoFactory
		CreditNoteRepoFactory
	}

	// CreditNoteUoWFactory creates new settlement unit of work instances.
	CreditNoteUoWFactory interface {
		Create() CreditNoteUoW
	}
)
