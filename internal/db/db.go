package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DB wraps database/sql with knowledge of the active driver so queries
// written with '?' placeholders can be rebound for Postgres.
type DB struct {
	*sql.DB
	driver Driver
}

func Open(databaseURL string) (*DB, error) {
	driver, dsn := ParseDSN(databaseURL)

	conn, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{DB: conn, driver: driver}, nil
}

func (d *DB) Driver() Driver {
	return d.driver
}

// Rebind converts '?' placeholders to the driver-specific format. Postgres
// uses $1, $2, ...; MySQL and SQLite take the query unchanged.
func (d *DB) Rebind(query string) string {
	if d.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}
