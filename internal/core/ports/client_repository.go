package ports

import (
	"context"

	"taxi/internal/core/domain/model/client"
	"taxi/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for clients.
type ClientRepository interface {
	// Add inserts a new client and returns it with its generated identifier.
	Add(ctx context.Context, c *client.Client) (*client.Client, error)

	// Get retrieves a client by identifier.
	// Returns errs.ObjectNotFoundError when no client has that identifier.
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)

	// Delete removes a client together with every order referencing it.
	// Returns errs.ObjectNotFoundError when no client has that identifier.
	Delete(ctx context.Context, id kernel.ID) error
}
