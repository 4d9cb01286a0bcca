package services

import (
	"github.com/dmitrijs2005/janolinej/internal/dbx"
)

// DB is the handle services run against; *sql.DB satisfies it.
type DB interface {
	dbx.DBTX
	dbx.TxBeginner
}
