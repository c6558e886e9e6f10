package finance

import (
	"net/http"
	"time"

	"rayo-courier/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for financial summaries.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new finance handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// Summary returns the daily reconciliation. The date query param defaults to
// today in server-local time.
func (h *Handler) Summary(c echo.Context) error {
	day := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	summary, err := h.svc.Summary(c.Request().Context(), day)
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute summary")
	}
	return utils.RespondWithJSON(c, http.StatusOK, summary)
}

func (h *Handler) CourierLedgers(c echo.Context) error {
	ledgers, err := h.svc.CourierLedgers(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute courier ledgers")
	}
	return utils.RespondWithJSON(c, http.StatusOK, ledgers)
}
