// Package users provides read access to the operator accounts seeded at
// startup.
package users

import (
	"context"

	"github.com/dmitrijs2005/janolinej/internal/models"
)

// Repository looks users up for the login gate.
type Repository interface {
	// GetByCredentials returns the first user whose email and plain-text
	// password both match exactly, or common.ErrorNotFound.
	GetByCredentials(ctx context.Context, email, password string) (*models.User, error)
}
