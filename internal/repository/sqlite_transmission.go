package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/domain"
)

// SQLiteTransmissionRepo implements TransmissionRepo using a SQLite database.
type SQLiteTransmissionRepo struct {
	db db.DBTX
}

// NewSQLiteTransmissionRepo creates a new SQLiteTransmissionRepo.
func NewSQLiteTransmissionRepo(conn db.DBTX) *SQLiteTransmissionRepo {
	return &SQLiteTransmissionRepo{db: conn}
}

const transmissionColumns = `id, name, position, notes_json, created_at`

func (r *SQLiteTransmissionRepo) Create(ctx context.Context, t *domain.Transmission) error {
	notes, err := encodeNotes(t.Notes)
	if err != nil {
		return err
	}
	query := `INSERT INTO transmissions (` + transmissionColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, t.ID, t.Name, t.Position, notes, formatTime(t.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting transmission %q: %w", t.Name, err)
	}
	return nil
}

func (r *SQLiteTransmissionRepo) GetByName(ctx context.Context, name string) (*domain.Transmission, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transmissionColumns+` FROM transmissions WHERE name = ?`, name)
	return r.scan(row)
}

func (r *SQLiteTransmissionRepo) List(ctx context.Context) ([]*domain.Transmission, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+transmissionColumns+` FROM transmissions ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("listing transmissions: %w", err)
	}
	defer rows.Close()

	var list []*domain.Transmission
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *SQLiteTransmissionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transmissions`); err != nil {
		return fmt.Errorf("clearing transmissions: %w", err)
	}
	return nil
}

func (r *SQLiteTransmissionRepo) scan(row rowScanner) (*domain.Transmission, error) {
	var (
		t         domain.Transmission
		notes     string
		createdAt string
	)
	err := row.Scan(&t.ID, &t.Name, &t.Position, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transmission: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning transmission: %w", err)
	}
	if t.Notes, err = decodeNotes(notes); err != nil {
		return nil, fmt.Errorf("transmission %q: %w", t.Name, err)
	}
	t.CreatedAt = parseTime(createdAt)
	return &t, nil
}
