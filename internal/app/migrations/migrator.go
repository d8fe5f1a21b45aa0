package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/db"
	"github.com/yigit/alumnihub/internal/pkg/dberrors"
)

//go:embed sql/*.sql
var embedded embed.FS

// schemaMigrationsPK is the primary key constraint of the tracking table
const schemaMigrationsPK = "schema_migrations_pkey"

// errAppliedConcurrently rolls back a migration another runner recorded first
var errAppliedConcurrently = errors.New("migration applied concurrently")

// Migrator manages database migrations
type Migrator struct {
	db     *db.PostgresDB
	files  fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a migrator over the migrations bundled with the binary
func NewMigrator(database *db.PostgresDB, logger zerolog.Logger) *Migrator {
	sub, _ := fs.Sub(embedded, "sql")
	return &Migrator{db: database, files: sub, logger: logger}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.Pool.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied. A concurrent runner that recorded it first is not an error.
func recordMigration(ctx context.Context, tx pgx.Tx, version string) (bool, error) {
	_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now())
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, schemaMigrationsPK) {
			return false, nil
		}
		return false, fmt.Errorf("failed to record migration: %w", err)
	}
	return true, nil
}

// Versions lists the bundled migration files in execution order
func (m *Migrator) Versions() ([]string, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// versionOf extracts the version from a file name ("001_init.sql" => "001")
func versionOf(name string) string {
	version, _, _ := strings.Cut(path.Base(name), "_")
	return version
}

// Apply executes one bundled migration unless it was already applied
func (m *Migrator) Apply(ctx context.Context, name string) error {
	version := versionOf(name)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("migration", name).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(m.files, name)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	err = m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", name, err)
		}
		recorded, err := recordMigration(ctx, tx, version)
		if err != nil {
			return err
		}
		if !recorded {
			return errAppliedConcurrently
		}
		return nil
	})
	if errors.Is(err, errAppliedConcurrently) {
		m.logger.Info().Str("migration", name).Msg("Migration applied concurrently, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	m.logger.Info().Str("migration", name).Msg("Migration applied")
	return nil
}

// Migrate applies every bundled migration in order
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	names, err := m.Versions()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := m.Apply(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
