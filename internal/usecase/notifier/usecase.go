package notifier

import (
	"context"
	"fmt"
	"time"

	"bookease-backend/internal/domain/identity"
	loanDomain "bookease-backend/internal/domain/loan"
	notifDomain "bookease-backend/internal/domain/notification"

	"github.com/google/uuid"
)

type Usecase struct {
	loans  loanDomain.Repository
	notifs notifDomain.Repository
}

func NewUsecase(loans loanDomain.Repository, notifs notifDomain.Repository) *Usecase {
	return &Usecase{loans: loans, notifs: notifs}
}

// Reminder is a due-soon/overdue entry derived from the loan ledger. It is
// recomputed on every call; nothing here is cached.
type Reminder struct {
	LoanID  string    `json:"loan_id"`
	BookID  string    `json:"book_id"`
	DueAt   time.Time `json:"due_at"`
	Overdue bool      `json:"overdue"`
}

// DueSoonOrOverdue lists the user's active loans due within the due-soon
// window of asOf, or already past due.
func (u *Usecase) DueSoonOrOverdue(ctx context.Context, ident identity.Identity, asOf time.Time) ([]Reminder, error) {
	ls, err := u.loans.ActiveDueBefore(ctx, ident.UserID, asOf.Add(loanDomain.DueSoonWindow))
	if err != nil {
		return nil, err
	}
	out := make([]Reminder, 0, len(ls))
	for _, l := range ls {
		out = append(out, Reminder{
			LoanID:  l.LoanID,
			BookID:  l.BookID,
			DueAt:   l.DueAt,
			Overdue: l.DueAt.Before(asOf),
		})
	}
	return out, nil
}

// Notice is the human-readable payload handed to the delivery channel.
type Notice struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RelatedID string `json:"related_id"`
}

// BorrowConfirmation builds the confirmation notice for a just-created loan.
// Pure function; delivery is the caller's concern.
func BorrowConfirmation(l *loanDomain.Loan, bookTitle string) Notice {
	return Notice{
		Title:     "Book borrowed",
		Message:   fmt.Sprintf("You borrowed %q, due back %s.", bookTitle, l.DueAt.Format("Jan 2, 2006")),
		Type:      notifDomain.TypeBorrowed,
		RelatedID: l.LoanID,
	}
}

type CreateInput struct {
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RelatedID string `json:"related_id"`
}

// Create stores a notice for a user. Non-admins may only notify themselves.
func (u *Usecase) Create(ctx context.Context, ident identity.Identity, in CreateInput) (*notifDomain.Notification, error) {
	if !ident.CanActFor(in.UserID) {
		return nil, loanDomain.ErrForbidden
	}
	n := &notifDomain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         in.UserID,
		Title:          in.Title,
		Message:        in.Message,
		Type:           in.Type,
		RelatedID:      in.RelatedID,
	}
	if err := u.notifs.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (u *Usecase) ListMine(ctx context.Context, ident identity.Identity) ([]notifDomain.Notification, error) {
	return u.notifs.ListByUser(ctx, ident.UserID)
}

func (u *Usecase) MarkRead(ctx context.Context, ident identity.Identity, notificationID string) error {
	n, err := u.notifs.GetByNotificationID(ctx, notificationID)
	if err != nil {
		return err
	}
	if !ident.CanActFor(n.UserID) {
		return loanDomain.ErrForbidden
	}
	return u.notifs.MarkRead(ctx, notificationID)
}

func (u *Usecase) Delete(ctx context.Context, ident identity.Identity, notificationID string) error {
	n, err := u.notifs.GetByNotificationID(ctx, notificationID)
	if err != nil {
		return err
	}
	if !ident.CanActFor(n.UserID) {
		return loanDomain.ErrForbidden
	}
	return u.notifs.Delete(ctx, notificationID)
}
