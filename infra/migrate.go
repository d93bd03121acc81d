package infra

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/internal/migrations"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations; other dialects use GORM AutoMigrate over the models.
func Migrate(db *gorm.DB, dialect Dialect, logger *slog.Logger) error {
	if dialect != DialectPostgres {
		logger.Info("Auto-migrating schema", "dialect", dialect)
		return db.AutoMigrate(model.All()...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	version, _, _ := m.Version()
	logger.Info("Database migrated", "version", version)
	return nil
}
