package bookmock

import (
	"context"

	domain "bookease-backend/internal/domain/book"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, b *domain.Book) error
	GetByBookIDFn    func(ctx context.Context, bookID string) (*domain.Book, error)
	ListFn           func(ctx context.Context) ([]domain.Book, error)
	CountFn          func(ctx context.Context) (int64, error)
	UpdateDetailsFn  func(ctx context.Context, b *domain.Book) error
	TryReserveCopyFn func(ctx context.Context, bookID string) error
	ReleaseCopyFn    func(ctx context.Context, bookID string) error
	SetTotalCopiesFn func(ctx context.Context, bookID string, newTotal int) error
	DeleteFn         func(ctx context.Context, bookID string) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBookID(ctx context.Context, bookID string) (*domain.Book, error) {
	if m.GetByBookIDFn != nil {
		return m.GetByBookIDFn(ctx, bookID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) UpdateDetails(ctx context.Context, b *domain.Book) error {
	if m.UpdateDetailsFn != nil {
		return m.UpdateDetailsFn(ctx, b)
	}
	return nil
}

func (m *Repo) TryReserveCopy(ctx context.Context, bookID string) error {
	if m.TryReserveCopyFn != nil {
		return m.TryReserveCopyFn(ctx, bookID)
	}
	return nil
}

func (m *Repo) ReleaseCopy(ctx context.Context, bookID string) error {
	if m.ReleaseCopyFn != nil {
		return m.ReleaseCopyFn(ctx, bookID)
	}
	return nil
}

func (m *Repo) SetTotalCopies(ctx context.Context, bookID string, newTotal int) error {
	if m.SetTotalCopiesFn != nil {
		return m.SetTotalCopiesFn(ctx, bookID, newTotal)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, bookID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, bookID)
	}
	return nil
}
