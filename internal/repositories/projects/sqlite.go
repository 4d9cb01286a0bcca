package projects

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/janolinej/internal/dbx"
	"github.com/dmitrijs2005/janolinej/internal/models"
)

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to db.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListWithClient(ctx context.Context) ([]models.ProjectView, error) {
	query := `SELECT p.id, p.name, p.description, p.client_id, p.status,
			p.start_date, p.end_date, p.budget, c.name
		FROM projects p
		LEFT JOIN clients c ON p.client_id = c.id
		ORDER BY p.status, p.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []models.ProjectView
	for rows.Next() {
		var (
			v                             models.ProjectView
			description, status           sql.NullString
			startDate, endDate, clientNam sql.NullString
			clientID                      sql.NullInt64
			budget                        sql.NullFloat64
		)
		err := rows.Scan(&v.ID, &v.Name, &description, &clientID, &status,
			&startDate, &endDate, &budget, &clientNam)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}

		v.Description = description.String
		v.Status = models.Status(status.String)
		v.StartDate = startDate.String
		v.EndDate = endDate.String
		v.Budget = budget.Float64
		if clientID.Valid {
			id := clientID.Int64
			v.ClientID = &id
		}
		if clientNam.Valid {
			name := clientNam.String
			v.ClientName = &name
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, p models.NewProject) (int64, error) {
	query := `INSERT INTO projects (name, description, client_id, status, start_date, end_date, budget)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.ClientID, string(models.DefaultStatus), p.StartDate, p.EndDate, p.Budget)
	if err != nil {
		return 0, fmt.Errorf("failed to insert project: %w", dbx.ClassifyWriteError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get project id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) CountByStatus(ctx context.Context, s models.Status) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE status = ?`, string(s)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects by status: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) SumBudgetByStatus(ctx context.Context, s models.Status) (float64, error) {
	// SUM over no rows is NULL
	var sum sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT SUM(budget) FROM projects WHERE status = ?`, string(s)).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum project budgets: %w", err)
	}
	return sum.Float64, nil
}
