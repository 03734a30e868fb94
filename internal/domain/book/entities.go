package book

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("book not found")
	ErrNotAvailable   = errors.New("no copies available")
	ErrHasActiveLoans = errors.New("book has active loans")
	// ErrInconsistent signals a copy-count invariant violation detected at
	// runtime (e.g. a release that would push available above total).
	ErrInconsistent = errors.New("book copy counts inconsistent")
)

type Book struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	BookID          string         `gorm:"size:32;uniqueIndex:ux_books_book_id" json:"book_id"`
	Title           string         `gorm:"size:255" json:"title"`
	Author          string         `gorm:"size:255" json:"author"`
	ISBN            string         `gorm:"size:32" json:"isbn"`
	CoverURL        string         `gorm:"type:text" json:"cover_url"`
	Description     string         `gorm:"type:text" json:"description"`
	Genre           string         `gorm:"size:64" json:"genre"`
	TotalCopies     int            `gorm:"not null" json:"total_copies"`
	AvailableCopies int            `gorm:"not null" json:"available_copies"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Book) TableName() string { return "books" }
