package loanmock

import (
	"context"
	"time"

	domain "bookease-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones return zero values
// or domain.ErrNotFound where a lookup is expected.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn            func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn   func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetActiveByUserAndBookFn func(ctx context.Context, userID, bookID string) (*domain.Loan, error)
	MarkReturnedFn           func(ctx context.Context, loanID string, at time.Time) error
	ListByUserFn             func(ctx context.Context, userID string) ([]domain.Loan, error)
	ListAllFn                func(ctx context.Context) ([]domain.Loan, error)
	CountActiveFn            func(ctx context.Context) (int64, error)
	CountActiveByBookFn      func(ctx context.Context, bookID string) (int64, error)
	CountBorrowedSinceFn     func(ctx context.Context, since time.Time) (int64, error)
	ActiveDueBeforeFn        func(ctx context.Context, userID string, cutoff time.Time) ([]domain.Loan, error)
	BorrowedTimesSinceFn     func(ctx context.Context, since time.Time) ([]time.Time, error)
	PurgeByBookFn            func(ctx context.Context, bookID string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetActiveByUserAndBook(ctx context.Context, userID, bookID string) (*domain.Loan, error) {
	if m.GetActiveByUserAndBookFn != nil {
		return m.GetActiveByUserAndBookFn(ctx, userID, bookID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) MarkReturned(ctx context.Context, loanID string, at time.Time) error {
	if m.MarkReturnedFn != nil {
		return m.MarkReturnedFn(ctx, loanID, at)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountActiveByBook(ctx context.Context, bookID string) (int64, error) {
	if m.CountActiveByBookFn != nil {
		return m.CountActiveByBookFn(ctx, bookID)
	}
	return 0, nil
}

func (m *Repo) CountBorrowedSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountBorrowedSinceFn != nil {
		return m.CountBorrowedSinceFn(ctx, since)
	}
	return 0, nil
}

func (m *Repo) ActiveDueBefore(ctx context.Context, userID string, cutoff time.Time) ([]domain.Loan, error) {
	if m.ActiveDueBeforeFn != nil {
		return m.ActiveDueBeforeFn(ctx, userID, cutoff)
	}
	return nil, nil
}

func (m *Repo) BorrowedTimesSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	if m.BorrowedTimesSinceFn != nil {
		return m.BorrowedTimesSinceFn(ctx, since)
	}
	return nil, nil
}

func (m *Repo) PurgeByBook(ctx context.Context, bookID string) error {
	if m.PurgeByBookFn != nil {
		return m.PurgeByBookFn(ctx, bookID)
	}
	return nil
}
