package ports

import (
	"context"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
// Orders are never deleted through this contract; they disappear only when the
// referenced client or driver is deleted.
type OrderRepository interface {
	// Add inserts a new order and returns it with its generated identifier and,
	// when none was supplied, the creation time assigned by storage.
	// Returns errs.ObjectNotFoundError when the client or driver does not exist.
	Add(ctx context.Context, o *order.Order) (*order.Order, error)

	// Update writes all mutable fields of an existing order.
	// Returns errs.ObjectNotFoundError when the order, client or driver does not exist.
	Update(ctx context.Context, o *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ObjectNotFoundError when no order has that identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
