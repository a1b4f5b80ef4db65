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
	"github.com/proyect-bank/backend/internal/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and returns the handle used by all
// components. When cfg.Host is set, a postgresql connection is opened,
// otherwise a local sqlite database is used.
func Connect(cfg config.Database) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var db *gorm.DB
	var err error

	if cfg.Host != "" {
		log.Debug().Msg("DB_HOST is set, using postgresql")
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s", cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	} else {
		log.Debug().Msg("DB_HOST is not set, using sqlite database")
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", cfg.Path)), gormConfig)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.Host != "" {
		// Requests beyond the pool cap wait for a free connection or
		// fail on the driver's acquire timeout.
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
	} else {
		// This is done to prevent SQLITE_BUSY errors.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("proyect_bank:after_query", queryCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Query().After("*").Register("proyect_bank:after_query_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("proyect_bank:after_create", createUpdateCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Create().After("*").Register("proyect_bank:after_create_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("proyect_bank:after_update", createUpdateCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Update().After("*").Register("proyect_bank:after_update_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("proyect_bank:after_delete_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// migrate migrates all models to the schema defined in the code.
// Referenced tables come first so that foreign keys resolve.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(State{}, Type{}, Category{}, Movement{}, Phase{}, Profile{}, Account{}, Budget{}, Transaction{})
	if err != nil {
		return fmt.Errorf("error during database migration: %w", err)
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for _, unique := range []struct {
		table  string
		column string
		err    error
	}{
		{"profiles", "email", ErrProfileEmailNotUnique},
		{"states", "name", ErrStateNameNotUnique},
		{"types", "name", ErrTypeNameNotUnique},
		{"categories", "name", ErrCategoryNameNotUnique},
		{"phases", "name", ErrPhaseNameNotUnique},
		{"accounts", "name", ErrAccountNameNotUnique},
		{"budgets", "name", ErrBudgetNameNotUnique},
	} {
		if uniqueViolation(db.Error.Error(), unique.table, unique.column) {
			db.Error = unique.err
			return
		}
	}
}

// uniqueViolation matches unique constraint errors for a column.
//
// sqlite reports the failed constraint as "table.column", postgresql
// reports the name of the index, which gorm derives as "idx_table_column".
func uniqueViolation(message, table, column string) bool {
	if !strings.Contains(message, "UNIQUE constraint failed") && !strings.Contains(message, "duplicate key value") {
		return false
	}

	return strings.Contains(message, table+"."+column) || strings.Contains(message, table+"_"+column)
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}
