package dashboard

import (
	"context"
	"time"

	bookDomain "bookease-backend/internal/domain/book"
	loanDomain "bookease-backend/internal/domain/loan"
	userDomain "bookease-backend/internal/domain/user"
)

type Usecase struct {
	books bookDomain.Repository
	loans loanDomain.Repository
	users userDomain.Repository
}

func NewUsecase(books bookDomain.Repository, loans loanDomain.Repository, users userDomain.Repository) *Usecase {
	return &Usecase{books: books, loans: loans, users: users}
}

type DayActivity struct {
	Day   string `json:"day"`
	Loans int    `json:"loans"`
}

type StatsDTO struct {
	TotalBooks     int64         `json:"total_books"`
	ActiveLoans    int64         `json:"active_loans"`
	TotalUsers     int64         `json:"total_users"`
	LoansLast7Days int64         `json:"loans_last_7_days"`
	Activity       []DayActivity `json:"activity"`
}

var dayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Stats computes the dashboard counters plus the weekly activity series.
// Reads are per-request snapshots; no incremental state is kept.
func (u *Usecase) Stats(ctx context.Context, asOf time.Time) (*StatsDTO, error) {
	totalBooks, err := u.books.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeLoans, err := u.loans.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := u.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	since := asOf.Add(-7 * 24 * time.Hour)
	recent, err := u.loans.CountBorrowedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	activity, err := u.WeeklyActivity(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return &StatsDTO{
		TotalBooks:     totalBooks,
		ActiveLoans:    activeLoans,
		TotalUsers:     totalUsers,
		LoansLast7Days: recent,
		Activity:       activity,
	}, nil
}

// WeeklyActivity buckets the trailing 7 days of borrows into a fixed
// Monday-to-Sunday series. Buckets are computed from time.Weekday in Go, not
// from database day names, so empty days always appear with a zero count.
func (u *Usecase) WeeklyActivity(ctx context.Context, asOf time.Time) ([]DayActivity, error) {
	since := asOf.Add(-7 * 24 * time.Hour)
	times, err := u.loans.BorrowedTimesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	var counts [7]int
	for _, t := range times {
		if t.After(asOf) {
			continue
		}
		counts[mondayIndex(t)]++
	}

	out := make([]DayActivity, 7)
	for i := range out {
		out[i] = DayActivity{Day: dayLabels[i], Loans: counts[i]}
	}
	return out, nil
}

// mondayIndex maps time.Weekday (Sunday = 0) onto Monday-first slots.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
