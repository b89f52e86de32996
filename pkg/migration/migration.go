package migration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

// Migration represents a single database migration loaded from disk.
type Migration struct {
	ID      string
	Name    string
	UpSQL   string
	DownSQL string
}

// Runner handles PostgreSQL migration execution
type Runner struct {
	client       postgresql.PostgreSQLClient
	migrationDir string
	tableName    string
}

// Config for migration runner
type Config struct {
	MigrationDir string
	TableName    string // Migration table name (default: "schema_migrations")
}

// NewRunner creates a new migration runner for PostgreSQL
func NewRunner(client postgresql.PostgreSQLClient, config Config) *Runner {
	if config.TableName == "" {
		config.TableName = "schema_migrations"
	}

	return &Runner{
		client:       client,
		migrationDir: config.MigrationDir,
		tableName:    config.TableName,
	}
}

// EnsureMigrationTable creates the schema_migrations table if it doesn't exist
func (r *Runner) EnsureMigrationTable(ctx context.Context) error {
	createTableSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
	`, r.tableName)

	_, err := r.client.Exec(ctx, createTableSQL)
	return err
}

// GetAppliedMigrations returns a map of applied migration IDs
func (r *Runner) GetAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	applied := make(map[string]bool)

	query := fmt.Sprintf("SELECT id FROM %s ORDER BY applied_at", r.tableName)
	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}

	return applied, rows.Err()
}

// LoadMigrations loads all migration files from the migration directory.
// Files are paired as <id>_<name>.up.sql / <id>_<name>.down.sql.
func (r *Runner) LoadMigrations() ([]Migration, error) {
	upFiles, err := filepath.Glob(filepath.Join(r.migrationDir, "*.up.sql"))
	if err != nil {
		return nil, err
	}

	sort.Strings(upFiles)

	var migrations []Migration
	for _, upFile := range upFiles {
		migration, err := r.parseMigrationFiles(upFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse migration %s: %v", upFile, err)
		}
		migrations = append(migrations, migration)
	}

	return migrations, nil
}

// parseMigrationFiles parses UP and DOWN migration files
func (r *Runner) parseMigrationFiles(upFilePath string) (Migration, error) {
	upContent, err := os.ReadFile(upFilePath)
	if err != nil {
		return Migration{}, err
	}

	base := strings.TrimSuffix(filepath.Base(upFilePath), ".up.sql")
	id, name, found := strings.Cut(base, "_")
	if !found {
		name = base
	}

	migration := Migration{
		ID:    id,
		Name:  name,
		UpSQL: string(upContent),
	}

	// DOWN file is optional
	downFilePath := filepath.Join(r.migrationDir, base+".down.sql")
	if downContent, err := os.ReadFile(downFilePath); err == nil {
		migration.DownSQL = string(downContent)
	}

	return migration, nil
}

// Up applies all pending migrations in order.
func (r *Runner) Up(ctx context.Context) error {
	if err := r.EnsureMigrationTable(ctx); err != nil {
		return fmt.Errorf("failed to ensure migration table: %w", err)
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	for _, migration := range migrations {
		if applied[migration.ID] {
			continue
		}

		err := postgresql.WithTx(ctx, r.client, func(txCtx context.Context) error {
			if _, err := r.client.Exec(txCtx, migration.UpSQL); err != nil {
				return err
			}

			insertSQL := fmt.Sprintf("INSERT INTO %s (id, name) VALUES ($1, $2)", r.tableName)
			_, err := r.client.Exec(txCtx, insertSQL, migration.ID, migration.Name)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %s (%s) failed: %w", migration.ID, migration.Name, err)
		}
	}

	return nil
}

// Down rolls back the most recently applied migration.
func (r *Runner) Down(ctx context.Context) error {
	if err := r.EnsureMigrationTable(ctx); err != nil {
		return fmt.Errorf("failed to ensure migration table: %w", err)
	}

	var id string
	query := fmt.Sprintf("SELECT id FROM %s ORDER BY applied_at DESC LIMIT 1", r.tableName)
	if err := r.client.QueryRow(ctx, query).Scan(&id); err != nil {
		return fmt.Errorf("no migration to roll back: %w", err)
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	for _, migration := range migrations {
		if migration.ID != id {
			continue
		}
		if migration.DownSQL == "" {
			return fmt.Errorf("migration %s has no down file", id)
		}

		return postgresql.WithTx(ctx, r.client, func(txCtx context.Context) error {
			if _, err := r.client.Exec(txCtx, migration.DownSQL); err != nil {
				return err
			}

			deleteSQL := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.tableName)
			_, err := r.client.Exec(txCtx, deleteSQL, id)
			return err
		})
	}

	return fmt.Errorf("migration %s not found on disk", id)
}
