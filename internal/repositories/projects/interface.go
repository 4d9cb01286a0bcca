package projects

import (
	"context"

	"github.com/dmitrijs2005/janolinej/internal/models"
)

// Repository describes the project operations used by the services.
type Repository interface {
	// ListWithClient returns every project joined to its client name,
	// ordered by status.
	ListWithClient(ctx context.Context) ([]models.ProjectView, error)

	// Create inserts a project with models.DefaultStatus and returns its id.
	// The client reference is not checked.
	Create(ctx context.Context, p models.NewProject) (int64, error)

	// Count returns the number of projects.
	Count(ctx context.Context) (int, error)

	// CountByStatus returns the number of projects whose status equals s.
	CountByStatus(ctx context.Context, s models.Status) (int, error)

	// SumBudgetByStatus returns the budget total of projects whose status
	// equals s, or 0 when there are none.
	SumBudgetByStatus(ctx context.Context, s models.Status) (float64, error)
}
