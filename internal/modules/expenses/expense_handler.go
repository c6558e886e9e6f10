package expenses

import (
	"net/http"

	"rayo-courier/internal/models"
	"rayo-courier/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for operating expenses.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new expense handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(c echo.Context) error {
	expenses, err := h.svc.List(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
	}
	return utils.RespondWithJSON(c, http.StatusOK, expenses)
}

func (h *Handler) Create(c echo.Context) error {
	var req models.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	expense, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, expense)
}

func (h *Handler) Update(c echo.Context) error {
	var req models.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	expense, err := h.svc.Update(c.Request().Context(), c.Param("expenseId"), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, expense)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("expenseId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
