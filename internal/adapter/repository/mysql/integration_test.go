package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	bookDomain "bookease-backend/internal/domain/book"
	"bookease-backend/internal/domain/identity"
	loanDomain "bookease-backend/internal/domain/loan"
	"bookease-backend/internal/usecase/catalog"
	"bookease-backend/internal/usecase/dashboard"
	loanuc "bookease-backend/internal/usecase/loan"
	"bookease-backend/internal/usecase/notifier"
)

// Full lifecycle against real repositories: three copies, four borrowers,
// the delete guard, returns, then deletion.
func TestLoanLifecycle_EndToEnd(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	bookRepo := NewBookRepository(db)
	loanRepo := NewLoanRepository(db)
	notifRepo := NewNotificationRepository(db)
	guow := NewGormUoW(db)

	t0 := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	now := t0
	clock := func() time.Time { return now }

	loanUC := loanuc.NewUsecase(loanRepo, guow, nil, loanuc.WithClock(clock))
	catalogUC := catalog.NewUsecase(bookRepo, guow)
	notifierUC := notifier.NewUsecase(loanRepo, notifRepo)

	b, err := catalogUC.Create(ctx, catalog.CreateBookInput{Title: "Dune", Author: "Herbert", TotalCopies: 3})
	if err != nil {
		t.Fatalf("create book: %v", err)
	}

	users := []string{
		"11111111111111111111111111111111",
		"22222222222222222222222222222222",
		"33333333333333333333333333333333",
		"44444444444444444444444444444444",
	}
	borrow := func(user string) (*loanuc.LoanDTO, error) {
		return loanUC.Borrow(ctx, identity.Identity{UserID: user}, loanuc.BorrowInput{BookID: b.BookID})
	}

	l1, err := borrow(users[0])
	if err != nil {
		t.Fatalf("u1 borrow: %v", err)
	}
	if !l1.DueAt.Equal(t0.Add(14 * 24 * time.Hour)) {
		t.Fatalf("u1 due_at = %v", l1.DueAt)
	}
	if _, err := borrow(users[1]); err != nil {
		t.Fatalf("u2 borrow: %v", err)
	}
	if got := mustBook(t, db, b.BookID).AvailableCopies; got != 1 {
		t.Fatalf("available = %d, want 1", got)
	}

	// Same user, same book, loan still open.
	if _, err := borrow(users[0]); !errors.Is(err, loanDomain.ErrAlreadyBorrowed) {
		t.Fatalf("repeat borrow err = %v, want ErrAlreadyBorrowed", err)
	}
	if got := mustBook(t, db, b.BookID).AvailableCopies; got != 1 {
		t.Fatalf("rejected borrow consumed a copy: %d", got)
	}

	if _, err := borrow(users[2]); err != nil {
		t.Fatalf("u3 borrow: %v", err)
	}
	// Pool exhausted.
	if _, err := borrow(users[3]); !errors.Is(err, bookDomain.ErrNotAvailable) {
		t.Fatalf("u4 borrow err = %v, want ErrNotAvailable", err)
	}
	if got := mustBook(t, db, b.BookID).AvailableCopies; got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}

	// Deletion is refused while loans are open.
	if err := catalogUC.Delete(ctx, b.BookID); !errors.Is(err, bookDomain.ErrHasActiveLoans) {
		t.Fatalf("delete err = %v, want ErrHasActiveLoans", err)
	}

	// Twelve days in, u1's loan shows up as due soon but not overdue.
	now = t0.Add(12 * 24 * time.Hour)
	rs, err := notifierUC.DueSoonOrOverdue(ctx, identity.Identity{UserID: users[0]}, now)
	if err != nil || len(rs) != 1 || rs[0].Overdue {
		t.Fatalf("reminders = %+v, %v", rs, err)
	}

	// Everyone returns; a repeat return is rejected; the copy count recovers.
	if _, err := loanUC.Return(ctx, identity.Identity{UserID: users[0]}, l1.LoanID); err != nil {
		t.Fatalf("u1 return: %v", err)
	}
	if _, err := loanUC.Return(ctx, identity.Identity{UserID: users[0]}, l1.LoanID); !errors.Is(err, loanDomain.ErrAlreadyReturned) {
		t.Fatalf("repeat return err = %v, want ErrAlreadyReturned", err)
	}
	for _, user := range users[1:3] {
		ls, err := loanUC.List(ctx, identity.Identity{UserID: user})
		if err != nil || len(ls) != 1 {
			t.Fatalf("list for %s = %v, %v", user, ls, err)
		}
		if _, err := loanUC.Return(ctx, identity.Identity{UserID: user}, ls[0].LoanID); err != nil {
			t.Fatalf("return for %s: %v", user, err)
		}
	}
	if got := mustBook(t, db, b.BookID).AvailableCopies; got != 3 {
		t.Fatalf("available after returns = %d, want 3", got)
	}

	// Returned copy is borrowable again.
	if _, err := borrow(users[3]); err != nil {
		t.Fatalf("u4 borrow after returns: %v", err)
	}
	ls, err := loanUC.List(ctx, identity.Identity{UserID: users[3]})
	if err != nil || len(ls) != 1 {
		t.Fatalf("u4 loans = %v, %v", ls, err)
	}
	if _, err := loanUC.Return(ctx, identity.Identity{UserID: users[3]}, ls[0].LoanID); err != nil {
		t.Fatalf("u4 return: %v", err)
	}

	// No active loans left: delete purges history and removes the book.
	if err := catalogUC.Delete(ctx, b.BookID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := catalogUC.Get(ctx, b.BookID); !errors.Is(err, bookDomain.ErrNotFound) {
		t.Fatalf("get after delete err = %v, want ErrNotFound", err)
	}
	all, err := loanRepo.ListAll(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("loans after purge = %v, %v", all, err)
	}
}

// A single copy handed back and forth never goes negative and never double
// books.
func TestSingleCopy_NoOversell(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	bookRepo := NewBookRepository(db)
	loanRepo := NewLoanRepository(db)
	guow := NewGormUoW(db)
	loanUC := loanuc.NewUsecase(loanRepo, guow, nil)
	catalogUC := catalog.NewUsecase(bookRepo, guow)

	b, err := catalogUC.Create(ctx, catalog.CreateBookInput{Title: "Solo", TotalCopies: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u1 := identity.Identity{UserID: "11111111111111111111111111111111"}
	u2 := identity.Identity{UserID: "22222222222222222222222222222222"}

	l, err := loanUC.Borrow(ctx, u1, loanuc.BorrowInput{BookID: b.BookID})
	if err != nil {
		t.Fatalf("u1 borrow: %v", err)
	}
	if _, err := loanUC.Borrow(ctx, u2, loanuc.BorrowInput{BookID: b.BookID}); !errors.Is(err, bookDomain.ErrNotAvailable) {
		t.Fatalf("u2 borrow err = %v, want ErrNotAvailable", err)
	}
	if _, err := loanUC.Return(ctx, u1, l.LoanID); err != nil {
		t.Fatalf("u1 return: %v", err)
	}
	if _, err := loanUC.Borrow(ctx, u2, loanuc.BorrowInput{BookID: b.BookID}); err != nil {
		t.Fatalf("u2 borrow after return: %v", err)
	}
	got := mustBook(t, db, b.BookID)
	if got.AvailableCopies != 0 || got.TotalCopies != 1 {
		t.Fatalf("copies = %d/%d", got.AvailableCopies, got.TotalCopies)
	}
}

// Weekly activity over real rows: empty days still present, zero counts.
func TestWeeklyActivity_FromLedger(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	bookRepo := NewBookRepository(db)
	loanRepo := NewLoanRepository(db)
	userRepo := NewUserRepository(db)
	dashUC := dashboard.NewUsecase(bookRepo, loanRepo, userRepo)

	seedBook(t, db, bID, 5, 5)
	asOf := time.Date(2025, 9, 14, 12, 0, 0, 0, time.UTC) // Sunday
	seedLoan(t, db, "mon1", uID, bID, time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC), loanDomain.StatusActive)
	seedLoan(t, db, "mon2", uID2, bID, time.Date(2025, 9, 8, 17, 0, 0, 0, time.UTC), loanDomain.StatusReturned)
	seedLoan(t, db, "fri1", uID, bID, time.Date(2025, 9, 12, 11, 0, 0, 0, time.UTC), loanDomain.StatusReturned)
	seedLoan(t, db, "old", uID, bID, time.Date(2025, 9, 1, 11, 0, 0, 0, time.UTC), loanDomain.StatusReturned)

	got, err := dashUC.WeeklyActivity(ctx, asOf)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	wantCounts := []int{2, 0, 0, 0, 1, 0, 0}
	for i, d := range got {
		if d.Loans != wantCounts[i] {
			t.Fatalf("slot %d (%s) = %d, want %d", i, d.Day, d.Loans, wantCounts[i])
		}
	}

	stats, err := dashUC.Stats(ctx, asOf)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalBooks != 1 || stats.ActiveLoans != 1 || stats.LoansLast7Days != 3 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(stats.Activity) != 7 {
		t.Fatalf("activity slots = %d", len(stats.Activity))
	}
}
