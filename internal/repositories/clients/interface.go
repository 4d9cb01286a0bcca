package clients

import (
	"context"

	"github.com/dmitrijs2005/janolinej/internal/models"
)

// Repository describes the client operations used by the services.
type Repository interface {
	// List returns all clients ordered by name.
	List(ctx context.Context) ([]models.Client, error)

	// Create inserts a client and returns its id. The registration timestamp
	// is set by the store. Failures are wrapped with a common reason sentinel.
	Create(ctx context.Context, c models.NewClient) (int64, error)

	// Count returns the number of clients.
	Count(ctx context.Context) (int, error)
}
