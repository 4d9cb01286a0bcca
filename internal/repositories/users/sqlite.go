package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/janolinej/internal/common"
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

func (r *SQLiteRepository) GetByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	query := `SELECT id, name, email, password, role FROM users
		WHERE email = ? AND password = ?
		LIMIT 1`

	var (
		u    models.User
		role sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, email, password).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	u.Role = models.Role(role.String)
	return &u, nil
}
