package data

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS discs (
		id          TEXT PRIMARY KEY,
		holder      TEXT NOT NULL UNIQUE,
		url         TEXT NOT NULL,
		fingerprint INTEGER NOT NULL,
		name        TEXT NOT NULL,
		burned_at   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS discs_name ON discs (name)`,
	`CREATE INDEX IF NOT EXISTS discs_fingerprint ON discs (fingerprint)`,
	`CREATE TABLE IF NOT EXISTS permission_grants (
		player TEXT NOT NULL,
		node   TEXT NOT NULL,
		PRIMARY KEY (player, node)
	)`,
}

// Migrate creates any missing tables. It is safe to run on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	log.WithField("component", "data").Debugf("applied %d migrations", len(migrations))
	return nil
}
