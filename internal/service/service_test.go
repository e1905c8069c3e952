package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/veritable/veritable-go/internal/repository"
)

// newTestRepos opens an in-memory SQLite store with the schema migrated and
// the default admin seeded.
func newTestRepos(t *testing.T) (*repository.UserRepository, *repository.AdminRepository, *repository.PublicationRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := repository.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := repository.SeedAdmin(db); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	return repository.NewUserRepository(db),
		repository.NewAdminRepository(db),
		repository.NewPublicationRepository(db)
}
