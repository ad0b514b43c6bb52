package storage

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Row is the single-row scan contract shared by both backends.
type Row interface {
	Scan(dest ...any) error
}

// dialect covers the two places the backends genuinely differ: placeholder
// syntax and how to get the freshly inserted row back. Statements are
// authored with '?' placeholders everywhere; the dialect owns the
// translation.
type dialect interface {
	name() string
	rebind(query string) string
	insertReturning(ctx context.Context, db *sql.DB, table, insert string, args []any) (Row, error)
}

type sqliteDialect struct{}

func (sqliteDialect) name() string { return "sqlite" }

func (sqliteDialect) rebind(query string) string { return query }

// insertReturning for SQLite runs the insert, reads the auto-generated id,
// and fetches the row back by that id.
func (sqliteDialect) insertReturning(ctx context.Context, db *sql.DB, table, insert string, args []any) (Row, error) {
	res, err := db.ExecContext(ctx, insert, args...)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return db.QueryRowContext(ctx, "SELECT * FROM "+table+" WHERE id = ?", id), nil
}

type postgresDialect struct{}

func (postgresDialect) name() string { return "postgres" }

// rebind renumbers '?' placeholders to $1..$n, leaving quoted literals alone.
func (postgresDialect) rebind(query string) string {
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

// insertReturning for Postgres folds the fetch into the insert with a
// RETURNING clause so it is one round trip.
func (d postgresDialect) insertReturning(ctx context.Context, db *sql.DB, table, insert string, args []any) (Row, error) {
	return db.QueryRowContext(ctx, d.rebind(ensureReturning(insert)), args...), nil
}

// ensureReturning appends "RETURNING *" unless the statement already carries
// a RETURNING clause.
func ensureReturning(insert string) string {
	if strings.Contains(strings.ToUpper(insert), "RETURNING") {
		return insert
	}
	return strings.TrimRight(insert, " \t\n;") + " RETURNING *"
}
