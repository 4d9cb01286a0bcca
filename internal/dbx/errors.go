package dbx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/janolinej/internal/common"
	"modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ClassifyWriteError wraps a failed insert/update error with the matching
// reason sentinel from package common. The original error stays in the chain.
// A nil err yields nil.
func ClassifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", writeReason(err), err)
}

func writeReason(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		switch code {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return common.ErrDuplicate
		case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return common.ErrInvalidReference
		}
		// extended result codes keep the primary code in the low byte
		switch code & 0xff {
		case sqlite3lib.SQLITE_CONSTRAINT:
			return common.ErrConstraint
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED, sqlite3lib.SQLITE_READONLY,
			sqlite3lib.SQLITE_IOERR, sqlite3lib.SQLITE_CANTOPEN, sqlite3lib.SQLITE_FULL,
			sqlite3lib.SQLITE_NOMEM, sqlite3lib.SQLITE_CORRUPT:
			return common.ErrUnavailable
		}
	}

	switch {
	case errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		strings.Contains(err.Error(), "database is closed"):
		return common.ErrUnavailable
	}
	return common.ErrUnclassifiedWrite
}
