package http

import (
	"errors"
	"net/http"

	bookDomain "bookease-backend/internal/domain/book"
	"bookease-backend/internal/domain/identity"
	loanDomain "bookease-backend/internal/domain/loan"
	notifDomain "bookease-backend/internal/domain/notification"

	"github.com/labstack/echo/v4"
)

// IdentityKey is where the identity middleware stores the resolved caller.
const IdentityKey = "identity"

func identityFrom(c echo.Context) identity.Identity {
	if v, ok := c.Get(IdentityKey).(identity.Identity); ok {
		return v
	}
	return identity.Identity{}
}

// statusFor maps domain errors onto HTTP status codes. Business-rule
// rejections are conflicts, never 500s.
func statusFor(err error) int {
	switch {
	case errors.Is(err, bookDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, notifDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, bookDomain.ErrNotAvailable),
		errors.Is(err, bookDomain.ErrHasActiveLoans),
		errors.Is(err, loanDomain.ErrAlreadyBorrowed),
		errors.Is(err, loanDomain.ErrAlreadyReturned):
		return http.StatusConflict
	case errors.Is(err, loanDomain.ErrForbidden):
		return http.StatusForbidden
	default:
		// includes bookDomain.ErrInconsistent and unknown persistence errors
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}
