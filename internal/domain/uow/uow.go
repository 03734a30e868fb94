package uow

import (
	"context"

	"bookease-backend/internal/domain/book"
	"bookease-backend/internal/domain/loan"
)

type Repos struct {
	Books book.Repository
	Loans loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
