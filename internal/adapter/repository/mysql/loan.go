package mysql

import (
	"context"
	"errors"
	"time"

	loanDomain "bookease-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	q := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE and serializes writers anyway
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.Loan
	res := q.Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetActiveByUserAndBook(ctx context.Context, userID, bookID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND status = ?", userID, bookID, loanDomain.StatusActive).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

// MarkReturned only matches the row while it is still active, so a second
// return attempt reports ErrAlreadyReturned instead of flipping twice.
func (r *LoanRepository) MarkReturned(ctx context.Context, loanID string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.StatusActive).
		Updates(map[string]any{
			"status":      loanDomain.StatusReturned,
			"returned_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}
	if _, err := r.GetByLoanID(ctx, loanID); err != nil {
		return err
	}
	return loanDomain.ErrAlreadyReturned
}

func (r *LoanRepository) ListByUser(ctx context.Context, userID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("borrowed_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Order("borrowed_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("status = ?", loanDomain.StatusActive).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) CountActiveByBook(ctx context.Context, bookID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("book_id = ? AND status = ?", bookID, loanDomain.StatusActive).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) CountBorrowedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("borrowed_at > ?", since).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) ActiveDueBefore(ctx context.Context, userID string, cutoff time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND due_at <= ?", userID, loanDomain.StatusActive, cutoff).
		Order("due_at ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) BorrowedTimesSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var out []time.Time
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("borrowed_at > ?", since).
		Pluck("borrowed_at", &out)
	return out, res.Error
}

func (r *LoanRepository) PurgeByBook(ctx context.Context, bookID string) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("book_id = ?", bookID).
		Delete(&loanDomain.Loan{}).Error
}
