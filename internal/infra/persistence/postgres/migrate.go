package postgres

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending migration for db's dialect.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	sqlDB, dir, err := prepareGoose(db)
	if err != nil {
		return err
	}

	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// MigrationVersion returns the currently applied schema version.
func MigrationVersion(ctx context.Context, db *gorm.DB) (int64, error) {
	sqlDB, _, err := prepareGoose(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, errors.Wrap(err, "read migration version")
	}

	return version, nil
}

// MigrationStatus prints the applied state of every migration.
func MigrationStatus(ctx context.Context, db *gorm.DB) error {
	sqlDB, dir, err := prepareGoose(db)
	if err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, sqlDB, dir), "migration status")
}

// LatestMigrationVersion is the highest version embedded for db's dialect.
func LatestMigrationVersion(db *gorm.DB) (int64, error) {
	_, dir, err := prepareGoose(db)
	if err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var latest int64
	for _, entry := range entries {
		version, err := goose.NumericComponent(entry.Name())
		if err != nil {
			continue
		}
		latest = max(latest, version)
	}

	return latest, nil
}

func prepareGoose(db *gorm.DB) (sqlDB *sql.DB, dir string, err error) {
	sqlDB, err = db.DB()
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	dialect := Dialect(db)
	if err := goose.SetDialect(dialect); err != nil {
		return nil, "", errors.WithStack(err)
	}
	goose.SetBaseFS(migrationsFS)

	dir = "migrations/postgres"
	if dialect == "sqlite3" {
		dir = "migrations/sqlite"
	}

	return sqlDB, dir, nil
}
