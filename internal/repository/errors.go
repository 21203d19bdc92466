// Package repository contains data access logic separated from HTTP handlers.
// This file defines error values and helpers shared across repositories.
// Ownership failures deliberately surface as the same not-found sentinel as a
// missing row: a caller probing ids must not be able to learn that somebody
// else's resource exists.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrConflict is returned when a write cannot proceed because of conflicting
// state, such as inserting a row that references a nonexistent exercise.
// Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// mysqlErrIs reports whether err is a MySQL server error with the given
// number (1452 = foreign key violation, 1062 = duplicate key).
func mysqlErrIs(err error, number uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}

const (
	mysqlErrDuplicate = 1062
	mysqlErrFKFailure = 1452
)
