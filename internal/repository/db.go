package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	mysqldsn "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/veritable/veritable-go/internal/crypto"
	"github.com/veritable/veritable-go/internal/model"
)

// Default back-office credentials seeded when the admins table is empty.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "Admin@2024!"
)

// Open connects to the backing store. An empty databaseURL selects the
// embedded SQLite file; a postgres:// or MySQL DSN selects the corresponding
// networked engine.
func Open(databaseURL, sqlitePath string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if databaseURL == "" {
		if dir := filepath.Dir(sqlitePath); dir != "." {
			if err := os.MkdirAll(dir, fs.ModePerm); err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(sqlitePath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL")
	} else {
		var err error
		dialector, err = dialectorFor(databaseURL)
		if err != nil {
			return nil, err
		}
	}

	gormLogger := logger.Discard
	if debug {
		gormLogger = logger.Default
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// dialectorFor picks the GORM driver matching the connection string.
func dialectorFor(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "mysql://"):
		return gormmysql.Open(strings.TrimPrefix(databaseURL, "mysql://")), nil
	default:
		// Native MySQL DSNs (user:pass@tcp(host)/db) have no scheme prefix.
		if _, err := mysqldsn.ParseDSN(databaseURL); err == nil {
			return gormmysql.Open(databaseURL), nil
		}
		return nil, fmt.Errorf("unsupported DATABASE_URL %q", databaseURL)
	}
}

// Migrate creates or updates the schema for every entity, including the
// Favorite and ReadingProgress tables that no route exposes yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Admin{},
		&model.User{},
		&model.Publication{},
		&model.Favorite{},
		&model.ReadingProgress{},
	)
}

// SeedAdmin creates the default administrator when the admins table is empty.
// It reports whether a row was created.
func SeedAdmin(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := crypto.HashPassword(defaultAdminPassword)
	if err != nil {
		return false, err
	}
	admin := &model.Admin{Username: defaultAdminUsername, PasswordHash: hash}
	if err := db.Create(admin).Error; err != nil {
		return false, err
	}
	return true, nil
}

// IsNotFound reports whether err is the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
