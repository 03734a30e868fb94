package mysql

import (
	"context"
	"testing"

	bookDomain "bookease-backend/internal/domain/book"
	loanDomain "bookease-backend/internal/domain/loan"
	notifDomain "bookease-backend/internal/domain/notification"
	userDomain "bookease-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB spins up an in-memory sqlite with the full schema. One
// connection only: every :memory: connection would otherwise get its own
// empty database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&bookDomain.Book{},
		&loanDomain.Loan{},
		&userDomain.User{},
		&notifDomain.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBook(t *testing.T, db *gorm.DB, bookID string, total, available int) {
	t.Helper()
	b := &bookDomain.Book{
		BookID: bookID, Title: "t-" + bookID, Author: "a",
		TotalCopies: total, AvailableCopies: available,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed book %s: %v", bookID, err)
	}
}

func mustBook(t *testing.T, db *gorm.DB, bookID string) *bookDomain.Book {
	t.Helper()
	b, err := NewBookRepository(db).GetByBookID(context.Background(), bookID)
	if err != nil {
		t.Fatalf("get book %s: %v", bookID, err)
	}
	return b
}
