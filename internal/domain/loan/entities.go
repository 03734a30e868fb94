package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
)

const (
	// Period is the fixed lending period; due_at = borrowed_at + Period.
	Period = 14 * 24 * time.Hour
	// DueSoonWindow is how far ahead of due_at a loan counts as due soon.
	DueSoonWindow = 3 * 24 * time.Hour
)

var (
	ErrNotFound        = errors.New("loan not found")
	ErrAlreadyBorrowed = errors.New("user already has an active loan for this book")
	ErrAlreadyReturned = errors.New("loan already returned")
	ErrForbidden       = errors.New("not allowed to act on this loan")
)

type Loan struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	UserID     string         `gorm:"size:32;index:idx_loans_user_book" json:"user_id"`
	BookID     string         `gorm:"size:32;index:idx_loans_user_book;index:idx_loans_book" json:"book_id"`
	BorrowedAt time.Time      `gorm:"not null" json:"borrowed_at"`
	DueAt      time.Time      `gorm:"not null" json:"due_at"`
	ReturnedAt *time.Time     `json:"returned_at,omitempty"`
	Status     Status         `gorm:"size:16;default:'active';index" json:"status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// DueAtFor computes the fixed due date for a loan taken at borrowedAt.
func DueAtFor(borrowedAt time.Time) time.Time { return borrowedAt.Add(Period) }
