package db

import (
	"errors"
	"fmt"
	"log"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	// Register the postgres database driver and the file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunSQLMigrations applies the SQL files in dir to a Postgres database.
// The DSN must be in URL form (postgres://...).
func RunSQLMigrations(dir, dsn string) error {
	lower := strings.ToLower(dsn)
	if !strings.HasPrefix(lower, "postgres://") && !strings.HasPrefix(lower, "postgresql://") {
		return fmt.Errorf("sql migrations need a postgres:// DSN, got %s", MaskDSN(dsn))
	}

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("[DB] migrations: no change")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Printf("[DB] migrations applied (version=%d dirty=%v)", version, dirty)
	return nil
}
