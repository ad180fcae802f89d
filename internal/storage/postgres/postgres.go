// Package postgres is implementation of storage interface.
package postgres

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/inkwell-blog/inkwell/internal/storage"
)

const uniqueViolation = "23505"

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func isUniqueViolation(err error) bool {
	if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
		return true
	}

	return false
}

func stringsUnique(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}