package database

import (
	"database/sql"
	"strconv"
	"strings"
)

// DB wraps *sql.DB with the driver name so repositories can write their queries once
// with "?" placeholders and rebind them for dialects that use numbered ones.
type DB struct {
	*sql.DB
	driver string
}

func Wrap(db *sql.DB, driver string) *DB {
	return &DB{DB: db, driver: driver}
}

func (d *DB) Driver() string {
	return d.driver
}

// Rebind rewrites "?" placeholders to "$1".."$N" for Postgres. SQLite queries are
// returned unchanged. Placeholders inside single-quoted literals are left alone.
func (d *DB) Rebind(query string) string {
	if d.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inLiteral = !inLiteral
			b.WriteByte(c)
		case c == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
