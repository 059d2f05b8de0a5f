package bootstrap

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/domain/usecase/catalog"
	"github.com/amirhossein-jamali/library-lending/internal/domain/usecase/loan"
	"github.com/amirhossein-jamali/library-lending/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/query"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/config"
)

// Container holds the wired services shared by the HTTP server and the CLI
type Container struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	DB           *database.Manager

	Catalog *catalog.CatalogUseCase
	Loans   *loan.LoanUseCase
	Reports *report.ReportUseCase
}

// New connects to the configured database and wires the use cases. It does not migrate.
func New(cfg *config.Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Container, error) {
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), logger, timeProvider)
	if _, err := dbManager.Connect(); err != nil {
		return nil, err
	}

	queryRepo, err := query.NewLoanQueryRepository(dbManager, logger, timeProvider)
	if err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to create query repository: %w", err)
	}

	location := cfg.Library.Location()
	uow := dbManager.CreateUnitOfWork()

	return &Container{
		Config:       cfg,
		Logger:       logger,
		TimeProvider: timeProvider,
		DB:           dbManager,
		Catalog: catalog.NewCatalogUseCase(uow, logger).
			WithRetry(timeProvider, cfg.Library.CheckoutMaxRetries, 0),
		Loans: loan.NewLoanUseCase(uow, queryRepo, timeProvider, logger, cfg.Library.CheckoutMaxRetries).
			WithLocation(location),
		Reports: report.NewReportUseCase(queryRepo, location, logger),
	}, nil
}

// Migrate brings the schema to the current version
func (c *Container) Migrate(ctx context.Context) error {
	if err := c.DB.MigrationManager().MigrateAll(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the database connection
func (c *Container) Close() error {
	return c.DB.Close()
}
