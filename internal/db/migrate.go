package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the catalog schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_templates (
		id          TEXT PRIMARY KEY,
		key         TEXT NOT NULL UNIQUE COLLATE NOCASE,
		name        TEXT NOT NULL,
		is_baseline INTEGER NOT NULL DEFAULT 0 CHECK(is_baseline IN (0,1)),
		body_yaml   TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_plan_templates_baseline
		ON plan_templates(is_baseline) WHERE is_baseline = 1`,

	`CREATE TABLE IF NOT EXISTS chassis (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL UNIQUE COLLATE NOCASE,
		position      INTEGER NOT NULL DEFAULT 0,
		mounts        TEXT NOT NULL DEFAULT '',
		oil_pan       TEXT NOT NULL DEFAULT '',
		wiring        TEXT NOT NULL DEFAULT '',
		cooling       TEXT NOT NULL DEFAULT '',
		fuel          TEXT NOT NULL DEFAULT '',
		exhaust       TEXT NOT NULL DEFAULT '',
		driveline     TEXT NOT NULL DEFAULT '',
		notes_json    TEXT NOT NULL DEFAULT '[]',
		override_yaml TEXT,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS chassis_aliases (
		alias      TEXT PRIMARY KEY COLLATE NOCASE,
		chassis_id TEXT NOT NULL REFERENCES chassis(id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chassis_aliases_chassis ON chassis_aliases(chassis_id)`,

	`CREATE TABLE IF NOT EXISTS engines (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE COLLATE NOCASE,
		family      TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL DEFAULT 0,
		ecu         TEXT NOT NULL DEFAULT '',
		accessories TEXT NOT NULL DEFAULT '',
		notes_json  TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS transmissions (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE COLLATE NOCASE,
		position   INTEGER NOT NULL DEFAULT 0,
		notes_json TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS presets (
		id                TEXT PRIMARY KEY,
		seq               INTEGER NOT NULL UNIQUE,
		title             TEXT NOT NULL,
		chassis_name      TEXT NOT NULL,
		engine_name       TEXT NOT NULL,
		transmission_name TEXT NOT NULL,
		use_case          TEXT NOT NULL DEFAULT 'street'
		                  CHECK(use_case IN ('street','offroad','track')),
		created_at        TEXT NOT NULL
	)`,
}
