package couriers

import (
	"net/http"

	"rayo-courier/internal/models"
	"rayo-courier/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the courier registry.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new courier handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(c echo.Context) error {
	couriers, err := h.svc.List(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve couriers")
	}
	return utils.RespondWithJSON(c, http.StatusOK, couriers)
}

func (h *Handler) ListAktif(c echo.Context) error {
	couriers, err := h.svc.ListAktif(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve couriers")
	}
	return utils.RespondWithJSON(c, http.StatusOK, couriers)
}

func (h *Handler) Get(c echo.Context) error {
	courier, err := h.svc.Get(c.Request().Context(), c.Param("kurirId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, courier)
}

func (h *Handler) Create(c echo.Context) error {
	var req models.CreateCourierRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	courier, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, courier)
}

func (h *Handler) Update(c echo.Context) error {
	var req models.UpdateCourierRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	courier, err := h.svc.Update(c.Request().Context(), c.Param("kurirId"), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, courier)
}

func (h *Handler) ToggleAktif(c echo.Context) error {
	courier, err := h.svc.ToggleAktif(c.Request().Context(), c.Param("kurirId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, courier)
}

func (h *Handler) ToggleOnline(c echo.Context) error {
	courier, err := h.svc.ToggleOnline(c.Request().Context(), c.Param("kurirId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, courier)
}

func (h *Handler) Performance(c echo.Context) error {
	perf, err := h.svc.Performance(c.Request().Context(), c.Param("kurirId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, perf)
}
