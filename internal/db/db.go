package db

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulse/internal/model"
)

var passwordRe = regexp.MustCompile(`(password=)([^\s]+)|(://[^:/@]+:)([^@]+)(@)`)

// Open returns a connected GORM DB instance for the given driver.
func Open(driver, dsn string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	log.Printf("[DB] connected (%s) %s", driver, MaskDSN(dsn))
	return db, nil
}

// Models lists every table owned by the service, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.Profile{},
		&model.OrgInvite{},
		&model.Professional{},
		&model.Course{},
		&model.CourseProfession{},
		&model.DisciplineState{},
		&model.CeSend{},
		&model.Touchpoint{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return ensureIndexes(db)
}

// ensureIndexes creates the expression indexes gorm tags cannot describe.
func ensureIndexes(db *gorm.DB) error {
	stmt := "CREATE UNIQUE INDEX IF NOT EXISTS idx_professionals_rep_email ON professionals (rep_id, lower(email))"
	if db.Dialector.Name() == "mysql" {
		if db.Migrator().HasIndex(&model.Professional{}, "idx_professionals_rep_email") {
			return nil
		}
		stmt = "CREATE UNIQUE INDEX idx_professionals_rep_email ON professionals (rep_id, (lower(email)))"
	}
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create idx_professionals_rep_email: %w", err)
	}
	return nil
}

// DropAll drops every table in reverse dependency order. Missing tables are skipped.
func DropAll(db *gorm.DB) {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			log.Printf("[DB] drop %T failed (may not exist): %v", models[i], err)
		}
	}
}

// MaskDSN hides the password of a key=value or URL style DSN.
func MaskDSN(dsn string) string {
	return passwordRe.ReplaceAllString(dsn, "${1}${3}***${5}")
}
