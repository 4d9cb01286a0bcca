package dbx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/dmitrijs2005/janolinej/internal/common"
	"github.com/stretchr/testify/require"
)

func TestClassifyWriteError_Nil(t *testing.T) {
	require.NoError(t, ClassifyWriteError(nil))
}

func TestClassifyWriteError_ConnectionProblems(t *testing.T) {
	for _, err := range []error{
		sql.ErrConnDone,
		driver.ErrBadConn,
		context.Canceled,
		context.DeadlineExceeded,
		errors.New("sql: database is closed"),
	} {
		got := ClassifyWriteError(err)
		require.ErrorIs(t, got, common.ErrUnavailable, err.Error())
		require.ErrorIs(t, got, err)
	}
}

func TestClassifyWriteError_Unknown(t *testing.T) {
	orig := errors.New("something odd")
	got := ClassifyWriteError(orig)
	require.ErrorIs(t, got, common.ErrUnclassifiedWrite)
	require.ErrorIs(t, got, orig)
}

func TestClassifyWriteError_SQLiteConstraints(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `CREATE TABLE u (email TEXT UNIQUE NOT NULL)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO u(email) VALUES ('a@b.c')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO u(email) VALUES ('a@b.c')`)
	require.ErrorIs(t, ClassifyWriteError(err), common.ErrDuplicate)

	_, err = db.ExecContext(ctx, `INSERT INTO u(email) VALUES (NULL)`)
	got := ClassifyWriteError(err)
	require.ErrorIs(t, got, common.ErrConstraint)
	require.NotErrorIs(t, got, common.ErrDuplicate)
}

func TestClassifyWriteError_ForeignKey(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `CREATE TABLE parent (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `CREATE TABLE child (parent_id INTEGER REFERENCES parent(id))`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO child(parent_id) VALUES (42)`)
	require.ErrorIs(t, ClassifyWriteError(err), common.ErrInvalidReference)
}
