package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

// NewSQLiteTemplateRepo creates a new SQLiteTemplateRepo.
func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: conn}
}

const templateColumns = `id, key, name, is_baseline, body_yaml, created_at`

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.Template) error {
	query := `INSERT INTO plan_templates (` + templateColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Key,
		t.Name,
		boolToInt(t.IsBaseline),
		t.BodyYAML,
		formatTime(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting template %q: %w", t.Key, err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByKey(ctx context.Context, key string) (*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM plan_templates WHERE key = ?`
	return r.scan(r.db.QueryRowContext(ctx, query, key))
}

func (r *SQLiteTemplateRepo) GetBaseline(ctx context.Context) (*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM plan_templates WHERE is_baseline = 1`
	return r.scan(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.Template, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+templateColumns+` FROM plan_templates ORDER BY is_baseline DESC, key`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *SQLiteTemplateRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_templates`); err != nil {
		return fmt.Errorf("clearing templates: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTemplateRepo) scan(row rowScanner) (*domain.Template, error) {
	var (
		t          domain.Template
		isBaseline int
		createdAt  string
	)
	err := row.Scan(&t.ID, &t.Key, &t.Name, &isBaseline, &t.BodyYAML, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("template: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning template: %w", err)
	}
	t.IsBaseline = isBaseline != 0
	t.CreatedAt = parseTime(createdAt)
	return &t, nil
}
