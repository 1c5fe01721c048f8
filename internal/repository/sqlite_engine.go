package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/domain"
)

// SQLiteEngineRepo implements EngineRepo using a SQLite database.
type SQLiteEngineRepo struct {
	db db.DBTX
}

// NewSQLiteEngineRepo creates a new SQLiteEngineRepo.
func NewSQLiteEngineRepo(conn db.DBTX) *SQLiteEngineRepo {
	return &SQLiteEngineRepo{db: conn}
}

const engineColumns = `id, name, family, position, ecu, accessories, notes_json, created_at`

func (r *SQLiteEngineRepo) Create(ctx context.Context, e *domain.Engine) error {
	notes, err := encodeNotes(e.Notes)
	if err != nil {
		return err
	}
	query := `INSERT INTO engines (` + engineColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.Family,
		e.Position,
		e.ECU,
		e.Accessories,
		notes,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting engine %q: %w", e.Name, err)
	}
	return nil
}

func (r *SQLiteEngineRepo) GetByName(ctx context.Context, name string) (*domain.Engine, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+engineColumns+` FROM engines WHERE name = ?`, name)
	return r.scan(row)
}

func (r *SQLiteEngineRepo) List(ctx context.Context) ([]*domain.Engine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+engineColumns+` FROM engines ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("listing engines: %w", err)
	}
	defer rows.Close()

	var engines []*domain.Engine
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}
	return engines, rows.Err()
}

func (r *SQLiteEngineRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM engines`); err != nil {
		return fmt.Errorf("clearing engines: %w", err)
	}
	return nil
}

func (r *SQLiteEngineRepo) scan(row rowScanner) (*domain.Engine, error) {
	var (
		e         domain.Engine
		notes     string
		createdAt string
	)
	err := row.Scan(&e.ID, &e.Name, &e.Family, &e.Position, &e.ECU, &e.Accessories, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("engine: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning engine: %w", err)
	}
	if e.Notes, err = decodeNotes(notes); err != nil {
		return nil, fmt.Errorf("engine %q: %w", e.Name, err)
	}
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}
