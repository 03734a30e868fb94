package http

import (
	"net/http"

	"bookease-backend/internal/usecase/notifier"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ uc *notifier.Usecase }

func NewNotificationHandler(uc *notifier.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

type createNotificationReq struct {
	UserID    string `json:"user_id"    validate:"required,hex32"`
	Title     string `json:"title"      validate:"required"`
	Message   string `json:"message"    validate:"required"`
	Type      string `json:"type"       validate:"required,oneof=due_soon overdue borrowed"`
	RelatedID string `json:"related_id"`
}

func (h *NotificationHandler) List(c echo.Context) error {
	out, err := h.uc.ListMine(c.Request().Context(), identityFrom(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	n, err := h.uc.Create(c.Request().Context(), identityFrom(c), notifier.CreateInput(req))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.uc.MarkRead(c.Request().Context(), identityFrom(c), c.Param("notification_id")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "notification marked as read"})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), identityFrom(c), c.Param("notification_id")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "notification deleted"})
}
