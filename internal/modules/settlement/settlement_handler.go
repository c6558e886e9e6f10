package settlement

import (
	"net/http"

	"rayo-courier/internal/models"
	"rayo-courier/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for COD settlement.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new settlement handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Outstanding(c echo.Context) error {
	out, err := h.svc.Outstanding(c.Request().Context(), c.Param("kurirId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, out)
}

func (h *Handler) Settle(c echo.Context) error {
	var req models.SettleRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Settle(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, result)
}

func (h *Handler) SettleOne(c echo.Context) error {
	var req models.SettleOneRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.SettleOne(c.Request().Context(), c.Param("orderId"), req.BuktiURL)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, result)
}

func (h *Handler) History(c echo.Context) error {
	history, err := h.svc.History(c.Request().Context(), c.QueryParam("kurir_id"))
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settlement history")
	}
	return utils.RespondWithJSON(c, http.StatusOK, history)
}
