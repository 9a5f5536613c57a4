package repository

import (
	"github.com/cascade-admin/locations/internal/db"
	"github.com/cascade-admin/locations/internal/domain"

	"github.com/go-sql-driver/mysql"
)

func mapWriteError(err error) error {
	//nolint:errorlint
	if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
		return domain.ErrDuplicateEntry
	}
	return err
}
