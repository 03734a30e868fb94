package mysql

import (
	"context"
	"errors"
	"testing"

	bookDomain "bookease-backend/internal/domain/book"
)

const (
	bID  = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	bID2 = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func TestTryReserveCopy_DecrementsUntilExhausted(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	seedBook(t, db, bID, 2, 2)
	ctx := context.Background()

	if err := repo.TryReserveCopy(ctx, bID); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	if err := repo.TryReserveCopy(ctx, bID); err != nil {
		t.Fatalf("second reserve: %v", err)
	}
	if got := mustBook(t, db, bID).AvailableCopies; got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}

	err := repo.TryReserveCopy(ctx, bID)
	if !errors.Is(err, bookDomain.ErrNotAvailable) {
		t.Fatalf("exhausted reserve err = %v, want ErrNotAvailable", err)
	}
	if got := mustBook(t, db, bID).AvailableCopies; got != 0 {
		t.Fatalf("failed reserve changed the counter: %d", got)
	}
}

func TestTryReserveCopy_UnknownBook(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)

	err := repo.TryReserveCopy(context.Background(), "missing")
	if !errors.Is(err, bookDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReleaseCopy_GuardedByTotal(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	seedBook(t, db, bID, 2, 1)
	ctx := context.Background()

	if err := repo.ReleaseCopy(ctx, bID); err != nil {
		t.Fatalf("release: %v", err)
	}
	if got := mustBook(t, db, bID).AvailableCopies; got != 2 {
		t.Fatalf("available = %d, want 2", got)
	}

	// Already full: the guard trips instead of overshooting.
	err := repo.ReleaseCopy(ctx, bID)
	if !errors.Is(err, bookDomain.ErrInconsistent) {
		t.Fatalf("err = %v, want ErrInconsistent", err)
	}
	if got := mustBook(t, db, bID).AvailableCopies; got != 2 {
		t.Fatalf("guarded release changed the counter: %d", got)
	}
}

func TestReleaseCopy_UnknownBook(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)

	err := repo.ReleaseCopy(context.Background(), "missing")
	if !errors.Is(err, bookDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSetTotalCopies_ClampsAvailableDown(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	seedBook(t, db, bID, 5, 4)
	ctx := context.Background()

	if err := repo.SetTotalCopies(ctx, bID, 2); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	b := mustBook(t, db, bID)
	if b.TotalCopies != 2 || b.AvailableCopies != 2 {
		t.Fatalf("copies = %d/%d, want 2/2", b.AvailableCopies, b.TotalCopies)
	}

	// Growing leaves available alone.
	if err := repo.SetTotalCopies(ctx, bID, 10); err != nil {
		t.Fatalf("grow: %v", err)
	}
	b = mustBook(t, db, bID)
	if b.TotalCopies != 10 || b.AvailableCopies != 2 {
		t.Fatalf("copies = %d/%d, want 2/10", b.AvailableCopies, b.TotalCopies)
	}
}

func TestUpdateDetails_IdenticalValuesIsNotMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	seedBook(t, db, bID, 1, 1)
	ctx := context.Background()

	b := mustBook(t, db, bID)
	if err := repo.UpdateDetails(ctx, b); err != nil {
		t.Fatalf("no-op update: %v", err)
	}

	b.Title = "renamed"
	if err := repo.UpdateDetails(ctx, b); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := mustBook(t, db, bID).Title; got != "renamed" {
		t.Fatalf("title = %q", got)
	}

	b.BookID = "missing"
	if err := repo.UpdateDetails(ctx, b); !errors.Is(err, bookDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_SoftDeletesAndHidesFromList(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	seedBook(t, db, bID, 1, 1)
	seedBook(t, db, bID2, 1, 1)
	ctx := context.Background()

	if err := repo.Delete(ctx, bID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByBookID(ctx, bID); !errors.Is(err, bookDomain.ErrNotFound) {
		t.Fatalf("get after delete err = %v, want ErrNotFound", err)
	}
	books, err := repo.List(ctx)
	if err != nil || len(books) != 1 || books[0].BookID != bID2 {
		t.Fatalf("list = %v, %v", books, err)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count = %d, %v", n, err)
	}

	if err := repo.Delete(ctx, bID); !errors.Is(err, bookDomain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
