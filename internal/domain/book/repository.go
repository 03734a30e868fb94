package book

import "context"

type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByBookID(ctx context.Context, bookID string) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Count(ctx context.Context) (int64, error)

	// UpdateDetails overwrites the descriptive fields only; copy counters
	// are touched exclusively through the methods below.
	UpdateDetails(ctx context.Context, b *Book) error

	// TryReserveCopy atomically decrements available_copies when it is > 0.
	// Returns ErrNotAvailable when no copy is left, ErrNotFound when the
	// book does not exist.
	TryReserveCopy(ctx context.Context, bookID string) error

	// ReleaseCopy atomically increments available_copies, never past
	// total_copies. An increment that would exceed total_copies returns
	// ErrInconsistent.
	ReleaseCopy(ctx context.Context, bookID string) error

	// SetTotalCopies updates total_copies and clamps available_copies down
	// to the new total when needed.
	SetTotalCopies(ctx context.Context, bookID string, newTotal int) error

	Delete(ctx context.Context, bookID string) error
}
