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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the HTTP handlers.
var DB *gorm.DB

type TwigsContext string

const (
	DBContextURL TwigsContext = "twigs-backend-url"
)

var plural = regexp.MustCompile("ies$")

// Connect opens the database for the DSN, migrates the schema and
// registers the error translation callbacks.
//
// DSNs starting with postgres:// or postgresql:// use PostgreSQL, all
// others are treated as a path to an sqlite database file.
func Connect(dsn string) error {
	config := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var dialector gorm.Dialector
	isSQLite := !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://")
	if isSQLite {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dialector = sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator))
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// sqlite only supports one writer, a single connection prevents SQLITE_BUSY
	if isSQLite {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(Budget{}, Category{}, Transaction{}, User{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	callbacks := []struct {
		register func(string, func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{db.Callback().Query().After("*").Register, "twigs:after_query", queryCallback},
		{db.Callback().Query().After("*").Register, "twigs:after_query_general", generalCallback},
		{db.Callback().Row().After("*").Register, "twigs:after_row_general", generalCallback},
		{db.Callback().Create().After("*").Register, "twigs:after_create", createUpdateCallback},
		{db.Callback().Create().After("*").Register, "twigs:after_create_general", generalCallback},
		{db.Callback().Update().After("*").Register, "twigs:after_update", createUpdateCallback},
		{db.Callback().Update().After("*").Register, "twigs:after_update_general", generalCallback},
		{db.Callback().Delete().After("*").Register, "twigs:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.register(c.name, c.fn); err != nil {
			return fmt.Errorf("registering callback %s: %w", c.name, err)
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with one naming the
// resource type.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint violations with user friendly errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: users.username"),
		strings.Contains(msg, "duplicate key value violates unique constraint \"idx_users_username\""):
		db.Error = ErrUsernameNotUnique

	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		db.Error = ErrReferencedResourceMissing
	}
}

// generalCallback handles errors we cannot give the user a helpful message for.
//
// The error is logged and replaced with ErrGeneral.
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
