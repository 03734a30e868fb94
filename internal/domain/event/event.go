package event

import (
	"context"
	"time"
)

const (
	KindLoanBorrowed = "loan.borrowed"
	KindLoanReturned = "loan.returned"
)

// LoanEvent is the domain event emitted after a committed loan transition.
type LoanEvent struct {
	Kind   string    `json:"kind"`
	LoanID string    `json:"loan_id"`
	UserID string    `json:"user_id"`
	BookID string    `json:"book_id"`
	DueAt  time.Time `json:"due_at"`
	At     time.Time `json:"at"`
}

type Publisher interface {
	PublishLoanEvent(ctx context.Context, ev LoanEvent) error
}

// Nop discards events; used when no broker is configured.
type Nop struct{}

func (Nop) PublishLoanEvent(context.Context, LoanEvent) error { return nil }
