package http

import (
	"net/http"
	"time"

	"bookease-backend/internal/usecase/loan"
	"bookease-backend/internal/usecase/notifier"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	uc       *loan.Usecase
	notifier *notifier.Usecase
}

func NewLoanHandler(uc *loan.Usecase, n *notifier.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, notifier: n}
}

type borrowReq struct {
	BookID string `json:"book_id" validate:"required,hex32"`
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), identityFrom(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Borrow(c echo.Context) error {
	var req borrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Borrow(c.Request().Context(), identityFrom(c), loan.BorrowInput{BookID: req.BookID})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Return(c echo.Context) error {
	dto, err := h.uc.Return(c.Request().Context(), identityFrom(c), c.Param("loan_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Reminders derives the caller's due-soon and overdue loans on demand.
func (h *LoanHandler) Reminders(c echo.Context) error {
	out, err := h.notifier.DueSoonOrOverdue(c.Request().Context(), identityFrom(c), time.Now().UTC())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
