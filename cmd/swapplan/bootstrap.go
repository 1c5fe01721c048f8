package main

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/swapplan/internal/catalog"
	"github.com/alexanderramin/swapplan/internal/cli"
	"github.com/alexanderramin/swapplan/internal/config"
	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/service"
)

// bootstrap opens the store, seeds it with the built-in catalog plus any
// configured catalog files, and wires the services. The returned func
// closes the database.
func bootstrap(cfg config.Config, logOut io.Writer) (*cli.App, func() error, error) {
	ctx := context.Background()

	docs := make([]*catalog.Document, 0, len(cfg.CatalogFiles)+1)
	builtin, err := catalog.LoadDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("loading built-in catalog: %w", err)
	}
	docs = append(docs, builtin)
	for _, path := range cfg.CatalogFiles {
		doc, err := catalog.LoadFile(path)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, doc)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	uow := db.NewSQLiteUnitOfWork(database)
	if err := catalog.Seed(ctx, uow, catalog.Merge(docs...)); err != nil {
		database.Close()
		return nil, nil, err
	}

	stores := catalog.NewStores(database)
	registry, err := catalog.BuildRegistry(ctx, stores)
	if err != nil {
		database.Close()
		return nil, nil, err
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logOut))
	}

	app := &cli.App{
		Plans:               service.NewPlanService(registry, observers...),
		Catalog:             service.NewCatalogService(stores.Chassis, stores.Engines, stores.Transmissions, stores.Presets, observers...),
		Templates:           service.NewTemplateService(registry, stores.Templates, observers...),
		DefaultUse:          cfg.DefaultUse,
		DefaultTransmission: cfg.DefaultTransmission,
	}
	return app, database.Close, nil
}
