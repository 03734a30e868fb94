package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the enclosing transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetActiveByUserAndBook(ctx context.Context, userID, bookID string) (*Loan, error)

	// MarkReturned flips status active -> returned and sets returned_at,
	// conditionally: it returns ErrAlreadyReturned when the loan was no
	// longer active.
	MarkReturned(ctx context.Context, loanID string, at time.Time) error

	ListByUser(ctx context.Context, userID string) ([]Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)

	CountActive(ctx context.Context) (int64, error)
	CountActiveByBook(ctx context.Context, bookID string) (int64, error)
	CountBorrowedSince(ctx context.Context, since time.Time) (int64, error)

	// ActiveDueBefore returns the user's active loans with due_at <= cutoff.
	ActiveDueBefore(ctx context.Context, userID string, cutoff time.Time) ([]Loan, error)
	// BorrowedTimesSince returns borrowed_at of every loan taken since the
	// given instant, for activity bucketing.
	BorrowedTimesSince(ctx context.Context, since time.Time) ([]time.Time, error)

	// PurgeByBook hard-deletes every loan row for a book. Callers must have
	// verified that none of them is active.
	PurgeByBook(ctx context.Context, bookID string) error
}
