package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/domain"
)

// SQLiteChassisRepo implements ChassisRepo using a SQLite database.
type SQLiteChassisRepo struct {
	db db.DBTX
}

// NewSQLiteChassisRepo creates a new SQLiteChassisRepo.
func NewSQLiteChassisRepo(conn db.DBTX) *SQLiteChassisRepo {
	return &SQLiteChassisRepo{db: conn}
}

const chassisColumns = `c.id, c.name, c.position, c.mounts, c.oil_pan, c.wiring, c.cooling,
	c.fuel, c.exhaust, c.driveline, c.notes_json, c.override_yaml, c.created_at`

func (r *SQLiteChassisRepo) Create(ctx context.Context, c *domain.Chassis) error {
	notes, err := encodeNotes(c.Notes)
	if err != nil {
		return err
	}
	var override any
	if c.OverrideYAML != "" {
		override = c.OverrideYAML
	}

	query := `INSERT INTO chassis (id, name, position, mounts, oil_pan, wiring, cooling,
		fuel, exhaust, driveline, notes_json, override_yaml, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Position,
		c.Defaults.Mounts,
		c.Defaults.OilPan,
		c.Defaults.Wiring,
		c.Defaults.Cooling,
		c.Defaults.Fuel,
		c.Defaults.Exhaust,
		c.Defaults.Driveline,
		notes,
		override,
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting chassis %q: %w", c.Name, err)
	}

	for _, alias := range c.Aliases {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO chassis_aliases (alias, chassis_id) VALUES (?, ?)`, alias, c.ID)
		if err != nil {
			return fmt.Errorf("inserting alias %q for chassis %q: %w", alias, c.Name, err)
		}
	}
	return nil
}

// GetByName looks up a chassis by canonical name first, then by alias.
func (r *SQLiteChassisRepo) GetByName(ctx context.Context, name string) (*domain.Chassis, error) {
	query := `SELECT ` + chassisColumns + ` FROM chassis c
		WHERE c.name = ?
		   OR c.id = (SELECT chassis_id FROM chassis_aliases WHERE alias = ?)
		ORDER BY c.name = ? DESC
		LIMIT 1`
	c, err := r.scan(r.db.QueryRowContext(ctx, query, name, name, name))
	if err != nil {
		return nil, err
	}
	aliases, err := r.aliases(ctx)
	if err != nil {
		return nil, err
	}
	c.Aliases = aliases[c.ID]
	return c, nil
}

func (r *SQLiteChassisRepo) List(ctx context.Context) ([]*domain.Chassis, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+chassisColumns+` FROM chassis c ORDER BY c.position, c.name`)
	if err != nil {
		return nil, fmt.Errorf("listing chassis: %w", err)
	}

	var list []*domain.Chassis
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("listing chassis: %w", err)
	}
	rows.Close()

	// Aliases are read after the chassis cursor is closed; the in-memory
	// store runs on a single connection.
	aliases, err := r.aliases(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		c.Aliases = aliases[c.ID]
	}
	return list, nil
}

func (r *SQLiteChassisRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chassis_aliases`); err != nil {
		return fmt.Errorf("clearing chassis aliases: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chassis`); err != nil {
		return fmt.Errorf("clearing chassis: %w", err)
	}
	return nil
}

func (r *SQLiteChassisRepo) aliases(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT chassis_id, alias FROM chassis_aliases ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing chassis aliases: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, alias string
		if err := rows.Scan(&id, &alias); err != nil {
			return nil, fmt.Errorf("scanning chassis alias: %w", err)
		}
		out[id] = append(out[id], alias)
	}
	return out, rows.Err()
}

func (r *SQLiteChassisRepo) scan(row rowScanner) (*domain.Chassis, error) {
	var (
		c         domain.Chassis
		notes     string
		override  sql.NullString
		createdAt string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Position,
		&c.Defaults.Mounts,
		&c.Defaults.OilPan,
		&c.Defaults.Wiring,
		&c.Defaults.Cooling,
		&c.Defaults.Fuel,
		&c.Defaults.Exhaust,
		&c.Defaults.Driveline,
		&notes,
		&override,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("chassis: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning chassis: %w", err)
	}
	if c.Notes, err = decodeNotes(notes); err != nil {
		return nil, fmt.Errorf("chassis %q: %w", c.Name, err)
	}
	c.OverrideYAML = override.String
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}
