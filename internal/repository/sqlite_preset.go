package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/domain"
)

// SQLitePresetRepo implements PresetRepo using a SQLite database.
type SQLitePresetRepo struct {
	db db.DBTX
}

// NewSQLitePresetRepo creates a new SQLitePresetRepo.
func NewSQLitePresetRepo(conn db.DBTX) *SQLitePresetRepo {
	return &SQLitePresetRepo{db: conn}
}

const presetColumns = `id, seq, title, chassis_name, engine_name, transmission_name, use_case, created_at`

func (r *SQLitePresetRepo) Create(ctx context.Context, p *domain.Preset) error {
	query := `INSERT INTO presets (` + presetColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Seq,
		p.Title,
		p.Chassis,
		p.Engine,
		p.Transmission,
		string(p.Use),
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting preset %q: %w", p.Title, err)
	}
	return nil
}

func (r *SQLitePresetRepo) GetBySeq(ctx context.Context, seq int) (*domain.Preset, error) {
	return r.scan(r.db.QueryRowContext(ctx, `SELECT `+presetColumns+` FROM presets WHERE seq = ?`, seq))
}

func (r *SQLitePresetRepo) GetByTitle(ctx context.Context, title string) (*domain.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE LOWER(title) = LOWER(?) ORDER BY seq LIMIT 1`
	return r.scan(r.db.QueryRowContext(ctx, query, title))
}

// Search returns presets whose title, selection or use case contains filter,
// case-insensitively, ordered by seq. An empty filter returns every preset.
func (r *SQLitePresetRepo) Search(ctx context.Context, filter string) ([]*domain.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets
		WHERE LOWER(title || ' ' || chassis_name || ' ' || engine_name || ' ' ||
		            transmission_name || ' ' || use_case) LIKE ? ESCAPE '\'
		ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, likePattern(filter))
	if err != nil {
		return nil, fmt.Errorf("searching presets: %w", err)
	}
	defer rows.Close()

	var presets []*domain.Preset
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *SQLitePresetRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM presets`); err != nil {
		return fmt.Errorf("clearing presets: %w", err)
	}
	return nil
}

func (r *SQLitePresetRepo) scan(row rowScanner) (*domain.Preset, error) {
	var (
		p         domain.Preset
		use       string
		createdAt string
	)
	err := row.Scan(&p.ID, &p.Seq, &p.Title, &p.Chassis, &p.Engine, &p.Transmission, &use, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preset: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preset: %w", err)
	}
	p.Use = domain.UseCase(use)
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}
