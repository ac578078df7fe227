package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation  = "23505"
	sqliteUniqueFailed = "unique constraint failed: "
)

// UniqueViolation reports whether err is a unique-key violation. The returned
// name is the Postgres constraint name, or the "table.column" list SQLite
// prints. It is empty when the driver does not say.
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == pgUniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	msg := strings.ToLower(err.Error())
	if i := strings.Index(msg, sqliteUniqueFailed); i >= 0 {
		return msg[i+len(sqliteUniqueFailed):], true
	}
	if strings.Contains(msg, "duplicate key value") {
		return msg, true
	}
	return "", false
}

// ConstraintIs reports whether a name returned by UniqueViolation refers to
// any of the given constraints or columns.
func ConstraintIs(name string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}
