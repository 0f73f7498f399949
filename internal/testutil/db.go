package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alexndrfrd/programatorultau/internal/domain"
)

// OpenTestDB connects to the Postgres named by TEST_DATABASE_URL and
// migrates a clean schema. Tests that need a real database skip when the
// variable is unset so the unit suite stays runnable anywhere.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping Postgres integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.Migrator().DropTable(&domain.Booking{}, &domain.ContactMessage{}); err != nil {
		t.Fatalf("drop tables: %v", err)
	}
	if err := db.AutoMigrate(&domain.Booking{}, &domain.ContactMessage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Truncate empties the booking tables between subtests.
func Truncate(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Exec(`TRUNCATE bookings, contact_messages`).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
}
