package loan

import (
	"context"
	"errors"
	"log"
	"time"

	"bookease-backend/internal/domain/event"
	"bookease-backend/internal/domain/identity"
	domain "bookease-backend/internal/domain/loan"
	"bookease-backend/internal/domain/uow"
	"bookease-backend/pkg/id"
)

// BorrowPolicy is an optional extra admission check run before a copy is
// reserved (e.g. a per-user quota). Returning an error rejects the borrow.
type BorrowPolicy func(ctx context.Context, r uow.Repos, userID, bookID string) error

type Usecase struct {
	loans  domain.Repository
	uow    uow.UnitOfWork
	events event.Publisher
	policy BorrowPolicy
	now    func() time.Time
}

type Option func(*Usecase)

func WithBorrowPolicy(p BorrowPolicy) Option { return func(u *Usecase) { u.policy = p } }
func WithClock(now func() time.Time) Option  { return func(u *Usecase) { u.now = now } }

func NewUsecase(loans domain.Repository, tx uow.UnitOfWork, events event.Publisher, opts ...Option) *Usecase {
	u := &Usecase{loans: loans, uow: tx, events: events, now: func() time.Time { return time.Now().UTC() }}
	if u.events == nil {
		u.events = event.Nop{}
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Borrow reserves a copy and opens a loan in one transaction. Exactly one of
// the two can never happen alone: a failed insert rolls the reservation back.
func (u *Usecase) Borrow(ctx context.Context, ident identity.Identity, in BorrowInput) (*LoanDTO, error) {
	var created *domain.Loan

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// One active loan per (user, book).
		_, err := r.Loans.GetActiveByUserAndBook(ctx, ident.UserID, in.BookID)
		switch {
		case err == nil:
			return domain.ErrAlreadyBorrowed
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		if u.policy != nil {
			if err := u.policy(ctx, r, ident.UserID, in.BookID); err != nil {
				return err
			}
		}

		if err := r.Books.TryReserveCopy(ctx, in.BookID); err != nil {
			return err
		}

		now := u.now()
		l := &domain.Loan{
			LoanID:     id.NewID32(),
			UserID:     ident.UserID,
			BookID:     in.BookID,
			BorrowedAt: now,
			DueAt:      domain.DueAtFor(now),
			Status:     domain.StatusActive,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, event.KindLoanBorrowed, created)
	return toDTO(created), nil
}

// Return flips the loan to returned and releases its copy, both inside the
// loan-locked transaction; a failed release rolls the flip back.
func (u *Usecase) Return(ctx context.Context, ident identity.Identity, loanID string) (*LoanDTO, error) {
	var returned *domain.Loan

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status == domain.StatusReturned {
			return domain.ErrAlreadyReturned
		}
		if !ident.CanActFor(l.UserID) {
			return domain.ErrForbidden
		}

		now := u.now()
		if err := r.Loans.MarkReturned(ctx, l.LoanID, now); err != nil {
			return err
		}
		if err := r.Books.ReleaseCopy(ctx, l.BookID); err != nil {
			return err
		}

		l.Status = domain.StatusReturned
		l.ReturnedAt = &now
		returned = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, event.KindLoanReturned, returned)
	return toDTO(returned), nil
}

// List returns the caller's loans, or every loan for an admin.
func (u *Usecase) List(ctx context.Context, ident identity.Identity) ([]LoanDTO, error) {
	var (
		ls  []domain.Loan
		err error
	)
	if ident.Admin {
		ls, err = u.loans.ListAll(ctx)
	} else {
		ls, err = u.loans.ListByUser(ctx, ident.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, ident identity.Identity, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if !ident.CanActFor(l.UserID) {
		return nil, domain.ErrForbidden
	}
	return toDTO(l), nil
}

// publish is best effort: the transaction is committed, a broker hiccup must
// not fail the request.
func (u *Usecase) publish(ctx context.Context, kind string, l *domain.Loan) {
	ev := event.LoanEvent{
		Kind:   kind,
		LoanID: l.LoanID,
		UserID: l.UserID,
		BookID: l.BookID,
		DueAt:  l.DueAt,
		At:     u.now(),
	}
	if err := u.events.PublishLoanEvent(ctx, ev); err != nil {
		log.Printf("publish %s for loan %s: %v", kind, l.LoanID, err)
	}
}
