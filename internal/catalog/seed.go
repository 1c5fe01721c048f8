package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/repository"
	"github.com/alexanderramin/swapplan/internal/template"
	"github.com/google/uuid"
)

// Stores groups the catalog repositories.
type Stores struct {
	Templates     repository.TemplateRepo
	Chassis       repository.ChassisRepo
	Engines       repository.EngineRepo
	Transmissions repository.TransmissionRepo
	Presets       repository.PresetRepo
}

// NewStores builds SQLite-backed stores over conn, which may be a *sql.DB
// or a transaction.
func NewStores(conn db.DBTX) Stores {
	return Stores{
		Templates:     repository.NewSQLiteTemplateRepo(conn),
		Chassis:       repository.NewSQLiteChassisRepo(conn),
		Engines:       repository.NewSQLiteEngineRepo(conn),
		Transmissions: repository.NewSQLiteTransmissionRepo(conn),
		Presets:       repository.NewSQLitePresetRepo(conn),
	}
}

// Seed validates doc and replaces the store contents with it in a single
// transaction. On any error nothing is written.
func Seed(ctx context.Context, uow db.UnitOfWork, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	now := time.Now().UTC()
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		s := NewStores(tx)
		if err := s.clear(ctx); err != nil {
			return err
		}

		for _, t := range doc.Templates {
			body, err := template.Encode(t.Body)
			if err != nil {
				return fmt.Errorf("template %q: %w", t.Key, err)
			}
			name, _ := t.Body["name"].(string)
			err = s.Templates.Create(ctx, &domain.Template{
				ID:         uuid.New().String(),
				Key:        t.Key,
				Name:       domain.CoalesceStr(name, t.Key),
				IsBaseline: domain.NormalizeKey(t.Key) == domain.NormalizeKey(doc.Baseline),
				BodyYAML:   body,
				CreatedAt:  now,
			})
			if err != nil {
				return err
			}
		}

		for i, c := range doc.Chassis {
			var override string
			if c.Override != nil {
				body, err := template.Encode(c.Override)
				if err != nil {
					return fmt.Errorf("chassis %q override: %w", c.Name, err)
				}
				override = body
			}
			err := s.Chassis.Create(ctx, &domain.Chassis{
				ID:           uuid.New().String(),
				Name:         c.Name,
				Aliases:      c.Aliases,
				Position:     i,
				Defaults:     c.Defaults.toDomain(),
				Notes:        c.Notes,
				OverrideYAML: override,
				CreatedAt:    now,
			})
			if err != nil {
				return err
			}
		}

		for i, e := range doc.Engines {
			err := s.Engines.Create(ctx, &domain.Engine{
				ID:          uuid.New().String(),
				Name:        e.Name,
				Family:      e.Family,
				Position:    i,
				ECU:         e.ECU,
				Accessories: e.Accessories,
				Notes:       e.Notes,
				CreatedAt:   now,
			})
			if err != nil {
				return err
			}
		}

		for i, t := range doc.Transmissions {
			err := s.Transmissions.Create(ctx, &domain.Transmission{
				ID:        uuid.New().String(),
				Name:      t.Name,
				Position:  i,
				Notes:     t.Notes,
				CreatedAt: now,
			})
			if err != nil {
				return err
			}
		}

		for i, p := range doc.Presets {
			use := domain.UseStreet
			if p.Use != "" {
				use, _ = domain.ParseUseCase(p.Use)
			}
			err := s.Presets.Create(ctx, &domain.Preset{
				ID:           uuid.New().String(),
				Seq:          i + 1,
				Title:        p.Title,
				Chassis:      p.Chassis,
				Engine:       p.Engine,
				Transmission: p.Transmission,
				Use:          use,
				CreatedAt:    now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s Stores) clear(ctx context.Context) error {
	if err := s.Presets.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.Transmissions.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.Engines.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.Chassis.DeleteAll(ctx); err != nil {
		return err
	}
	return s.Templates.DeleteAll(ctx)
}
