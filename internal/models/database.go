package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type FinoraContext string

const (
	DBContextURL FinoraContext = "finora-backend-url"
)

var pluralIes = regexp.MustCompile("ies$")

// uniqueViolations maps the prefix of sqlite unique constraint errors to
// the errors returned to the user.
var uniqueViolations = map[string]error{
	"UNIQUE constraint failed: users.email":       ErrEmailNotUnique,
	"UNIQUE constraint failed: categories.name":   ErrCategoryNameNotUnique,
	"UNIQUE constraint failed: monthly_balances.": ErrMonthlyBalanceNotUnique,
}

// Connect opens the SQLite database at dsn, migrates and seeds it and
// configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// Migrations run with foreign keys disabled, sqlite recreates
	// tables when columns change
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	err = seed(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "finora:after_query", queryCallback},
		{db.Callback().Query().After("*"), "finora:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "finora:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "finora:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "finora:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "finora:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "finora:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with one that names the resource
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIes.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint violations with user facing errors
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for prefix, err := range uniqueViolations {
		if strings.Contains(db.Error.Error(), prefix) {
			db.Error = err
			return
		}
	}
}

// generalCallback handles errors the user cannot act on.
// They are logged and replaced with ErrGeneral.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(User{}, Category{}, Transaction{}, MonthlyBalance{}, MatchRule{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
