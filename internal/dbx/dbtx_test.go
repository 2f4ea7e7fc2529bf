package dbx

import (
	"database/sql"
	"testing"
)

func TestHandlesSatisfyDBTX(t *testing.T) {
	var _ DBTX = (*sql.DB)(nil)
	var _ DBTX = (*sql.Tx)(nil)
}
