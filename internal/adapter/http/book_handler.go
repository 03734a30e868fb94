package http

import (
	"net/http"

	"bookease-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type BookHandler struct{ uc *catalog.Usecase }

func NewBookHandler(uc *catalog.Usecase) *BookHandler { return &BookHandler{uc: uc} }

type createBookReq struct {
	Title       string `json:"title"        validate:"required"`
	Author      string `json:"author"       validate:"required"`
	ISBN        string `json:"isbn"`
	CoverURL    string `json:"cover_url"    validate:"omitempty,url"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	TotalCopies int    `json:"total_copies" validate:"gte=0"`
}

func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *BookHandler) GetBook(c echo.Context) error {
	b, err := h.uc.Get(c.Request().Context(), c.Param("book_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookHandler) CreateBook(c echo.Context) error {
	var req createBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.Create(c.Request().Context(), catalog.CreateBookInput(req))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BookHandler) UpdateBook(c echo.Context) error {
	var req createBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.Update(c.Request().Context(), c.Param("book_id"), catalog.UpdateBookInput(req))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// DeleteBook refuses with 409 while the book still has active loans.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("book_id")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "book deleted"})
}
