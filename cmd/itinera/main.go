package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/itinera/internal/cli"
	"github.com/alexanderramin/itinera/internal/config"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire repositories
	accRepo := repository.NewSQLiteAccommodationRepo(database)
	actRepo := repository.NewSQLiteActivityRepo(database)
	importRepo := repository.NewSQLiteCatalogImportRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	catalogSvc := service.NewCatalogService(accRepo, actRepo, importRepo, uow, observer)
	if err := seedCatalog(context.Background(), catalogSvc, cfg.CatalogPath); err != nil {
		return err
	}

	app := &cli.App{
		Catalog: catalogSvc,
		Quotes:  service.NewQuoteService(actRepo, observer),
		Plans:   service.NewPlanService(accRepo, actRepo, cfg.Location, observer),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

// seedCatalog fills an empty store, from ITINERA_CATALOG when set and from
// the embedded catalog otherwise.
func seedCatalog(ctx context.Context, svc service.CatalogService, path string) error {
	if path == "" {
		_, err := svc.EnsureDefault(ctx)
		return err
	}

	acts, err := svc.ListActivities(ctx, nil)
	if err != nil {
		return err
	}
	if len(acts) > 0 {
		return nil
	}
	if _, err := svc.Import(ctx, path); err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}
	return nil
}
