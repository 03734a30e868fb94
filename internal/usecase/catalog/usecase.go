package catalog

import (
	"errors"

	"context"

	bookDomain "bookease-backend/internal/domain/book"
	"bookease-backend/internal/domain/uow"
	"bookease-backend/pkg/id"
)

type Usecase struct {
	books bookDomain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(books bookDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{books: books, uow: tx}
}

type CreateBookInput struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	TotalCopies int    `json:"total_copies"`
}

type UpdateBookInput struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	TotalCopies int    `json:"total_copies"`
}

// Create opens the catalog entry with every copy on the shelf.
func (u *Usecase) Create(ctx context.Context, in CreateBookInput) (*bookDomain.Book, error) {
	if in.TotalCopies < 0 {
		return nil, errors.New("total_copies must be >= 0")
	}
	b := &bookDomain.Book{
		BookID:          id.NewID32(),
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		CoverURL:        in.CoverURL,
		Description:     in.Description,
		Genre:           in.Genre,
		TotalCopies:     in.TotalCopies,
		AvailableCopies: in.TotalCopies,
	}
	if err := u.books.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *Usecase) Get(ctx context.Context, bookID string) (*bookDomain.Book, error) {
	return u.books.GetByBookID(ctx, bookID)
}

func (u *Usecase) List(ctx context.Context) ([]bookDomain.Book, error) {
	return u.books.List(ctx)
}

// Update rewrites the descriptive fields and, when the copy count changed,
// re-clamps availability through SetTotalCopies.
func (u *Usecase) Update(ctx context.Context, bookID string, in UpdateBookInput) (*bookDomain.Book, error) {
	if in.TotalCopies < 0 {
		return nil, errors.New("total_copies must be >= 0")
	}
	cur, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	cur.Title = in.Title
	cur.Author = in.Author
	cur.ISBN = in.ISBN
	cur.CoverURL = in.CoverURL
	cur.Description = in.Description
	cur.Genre = in.Genre
	if err := u.books.UpdateDetails(ctx, cur); err != nil {
		return nil, err
	}
	if in.TotalCopies != cur.TotalCopies {
		if err := u.books.SetTotalCopies(ctx, bookID, in.TotalCopies); err != nil {
			return nil, err
		}
	}
	return u.books.GetByBookID(ctx, bookID)
}

// Delete refuses while any loan of the book is active; once the guard
// passes it purges the book's loan history and removes the book, all in one
// transaction.
func (u *Usecase) Delete(ctx context.Context, bookID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Books.GetByBookID(ctx, bookID); err != nil {
			return err
		}
		n, err := r.Loans.CountActiveByBook(ctx, bookID)
		if err != nil {
			return err
		}
		if n > 0 {
			return bookDomain.ErrHasActiveLoans
		}
		// Guard passed: history purge is an explicit, irreversible step.
		if err := r.Loans.PurgeByBook(ctx, bookID); err != nil {
			return err
		}
		return r.Books.Delete(ctx, bookID)
	})
}
