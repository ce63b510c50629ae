package db

import (
	"database/sql"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema. Any query
// error, bad connections included, counts as "no".
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// NullString unwraps a nullable column into a plain string.
func NullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
