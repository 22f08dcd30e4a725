package repos

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	if !strings.HasPrefix(dsn, ":") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS orders(
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  created        TEXT NOT NULL,
  customer_name  TEXT,
  customer_email TEXT,
  address        TEXT,
  items_json     TEXT,
  total          REAL
);
CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created);
`
	_, err := db.Exec(schema)
	return err
}
