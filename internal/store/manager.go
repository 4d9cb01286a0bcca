package store

import (
	"github.com/dmitrijs2005/janolinej/internal/dbx"
	"github.com/dmitrijs2005/janolinej/internal/repositories/clients"
	"github.com/dmitrijs2005/janolinej/internal/repositories/projects"
	"github.com/dmitrijs2005/janolinej/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code can
// run against the pool or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Clients(db dbx.DBTX) clients.Repository
	Projects(db dbx.DBTX) projects.Repository
}

// SQLiteRepositoryManager vends SQLite-backed repository implementations.
type SQLiteRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Clients returns a clients.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Clients(db dbx.DBTX) clients.Repository {
	return clients.NewSQLiteRepository(db)
}

// Projects returns a projects.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewSQLiteRepository(db)
}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
