package clients

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/janolinej/internal/common"
	"github.com/dmitrijs2005/janolinej/internal/migrations"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

func names(cs []models.Client) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestList_SeedOrderedByName(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Empresa ABC Ltda",
		"João Silva Construtora",
		"Maria Oliveira",
		"Shopping Center Plaza",
	}, names(got))

	first := got[0]
	assert.Equal(t, int64(2), first.ID)
	assert.Equal(t, "98.765.432/0001-10", first.TaxID)
	assert.Equal(t, "(11) 7777-6666", first.Phone)
	assert.Equal(t, "contato@empresaabc.com", first.Email)
	assert.False(t, first.RegisteredAt.IsZero())
}

func TestList_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	a, err := r.List(ctx)
	require.NoError(t, err)
	b, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCreate_AddsOneSortedRow(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Minute)
	id, err := r.Create(ctx, models.NewClient{
		Name:  "Condomínio Bela Vista",
		TaxID: "11.222.333/0001-44",
		Phone: "(11) 5555-1234",
		Email: "sindico@belavista.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.True(t, sort.StringsAreSorted(names(got)))

	var added *models.Client
	for i := range got {
		if got[i].ID == id {
			added = &got[i]
		}
	}
	require.NotNil(t, added)
	assert.Equal(t, "Condomínio Bela Vista", added.Name)
	assert.Equal(t, "11.222.333/0001-44", added.TaxID)
	assert.Equal(t, "(11) 5555-1234", added.Phone)
	assert.Equal(t, "sindico@belavista.com", added.Email)
	assert.True(t, added.RegisteredAt.After(before))
	assert.Equal(t, time.UTC, added.RegisteredAt.Location())

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCreate_AllowsDuplicatesAndEmptyFields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, models.NewClient{Name: "Maria Oliveira", Email: "maria@email.com"})
	require.NoError(t, err)
	_, err = r.Create(ctx, models.NewClient{})
	require.NoError(t, err)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestCreate_ClosedStoreIsUnavailable(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Create(context.Background(), models.NewClient{Name: "X"})
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestCreate_DriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO clients`).
		WithArgs("A", "B", "C", "D").
		WillReturnError(sql.ErrConnDone)

	_, err = NewSQLiteRepository(db).Create(context.Background(), models.NewClient{Name: "A", TaxID: "B", Phone: "C", Email: "D"})
	require.ErrorIs(t, err, common.ErrUnavailable)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_BadTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "tax_id", "phone", "email", "registered_at"}).
		AddRow(1, "A", nil, nil, nil, "yesterday")
	mock.ExpectQuery(`SELECT id, name, tax_id, phone, email, registered_at`).WillReturnRows(rows)

	_, err = NewSQLiteRepository(db).List(context.Background())
	require.ErrorContains(t, err, "bad registered_at")
}
