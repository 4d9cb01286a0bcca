package clients

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/janolinej/internal/dbx"
	"github.com/dmitrijs2005/janolinej/internal/models"
)

// timestampLayout is the format SQLite's CURRENT_TIMESTAMP produces (UTC).
const timestampLayout = "2006-01-02 15:04:05"

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to db.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Client, error) {
	query := `SELECT id, name, tax_id, phone, email, registered_at
		FROM clients
		ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", err)
	}
	defer rows.Close()

	var result []models.Client
	for rows.Next() {
		var (
			c                   models.Client
			taxID, phone, email sql.NullString
			registeredAt        string
		)
		if err := rows.Scan(&c.ID, &c.Name, &taxID, &phone, &email, &registeredAt); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		c.TaxID, c.Phone, c.Email = taxID.String, phone.String, email.String

		c.RegisteredAt, err = time.ParseInLocation(timestampLayout, registeredAt, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("client %d: bad registered_at %q: %w", c.ID, registeredAt, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, c models.NewClient) (int64, error) {
	query := `INSERT INTO clients (name, tax_id, phone, email) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, c.Name, c.TaxID, c.Phone, c.Email)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", dbx.ClassifyWriteError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get client id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return n, nil
}
