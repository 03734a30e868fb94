package mysql

import (
	"context"
	"errors"
	"log"

	bookDomain "bookease-backend/internal/domain/book"

	"gorm.io/gorm"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) GetByBookID(ctx context.Context, bookID string) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, bookDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BookRepository) List(ctx context.Context) ([]bookDomain.Book, error) {
	var out []bookDomain.Book
	res := r.db.WithContext(ctx).Order("title ASC").Find(&out)
	return out, res.Error
}

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).Count(&n)
	return n, res.Error
}

func (r *BookRepository) UpdateDetails(ctx context.Context, b *bookDomain.Book) error {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("book_id = ?", b.BookID).
		Updates(map[string]any{
			"title":       b.Title,
			"author":      b.Author,
			"isbn":        b.ISBN,
			"cover_url":   b.CoverURL,
			"description": b.Description,
			"genre":       b.Genre,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Updates with identical values also report 0 rows on MySQL, so
		// confirm existence before calling it missing.
		if _, err := r.GetByBookID(ctx, b.BookID); err != nil {
			return err
		}
	}
	return nil
}

// TryReserveCopy is the single point where a copy is taken: a conditional
// decrement so two callers racing for the last copy cannot both win.
func (r *BookRepository) TryReserveCopy(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("book_id = ? AND available_copies > 0", bookID).
		UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}
	// Nothing matched: either the book is gone or it is out of copies.
	if _, err := r.GetByBookID(ctx, bookID); err != nil {
		return err
	}
	return bookDomain.ErrNotAvailable
}

// ReleaseCopy increments available_copies, guarded so it can never exceed
// total_copies. Hitting the guard means the counters were already wrong.
func (r *BookRepository) ReleaseCopy(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("book_id = ? AND available_copies < total_copies", bookID).
		UpdateColumn("available_copies", gorm.Expr("available_copies + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}
	if _, err := r.GetByBookID(ctx, bookID); err != nil {
		return err
	}
	log.Printf("release on book %s would exceed total_copies", bookID)
	return bookDomain.ErrInconsistent
}

func (r *BookRepository) SetTotalCopies(ctx context.Context, bookID string, newTotal int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b bookDomain.Book
		if err := tx.Where("book_id = ?", bookID).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bookDomain.ErrNotFound
			}
			return err
		}
		updates := map[string]any{"total_copies": newTotal}
		if b.AvailableCopies > newTotal {
			updates["available_copies"] = newTotal
		}
		return tx.Model(&bookDomain.Book{}).Where("book_id = ?", bookID).Updates(updates).Error
	})
}

func (r *BookRepository) Delete(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&bookDomain.Book{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return bookDomain.ErrNotFound
	}
	return nil
}
