package orders

import (
	"net/http"

	"rayo-courier/internal/models"
	"rayo-courier/pkg/export"
	"rayo-courier/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the order ledger.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new order handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c echo.Context) error {
	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	order, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusCreated, order)
}

func (h *Handler) List(c echo.Context) error {
	// Couriers only see their own queue.
	_, role, kurirID, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var orders []*models.Order
	if role == models.RoleKurir && kurirID != nil {
		orders, err = h.svc.ListByKurir(c.Request().Context(), *kurirID)
	} else {
		orders, err = h.svc.List(c.Request().Context())
	}
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
	}
	return utils.RespondWithJSON(c, http.StatusOK, map[string]interface{}{"orders": orders, "total": len(orders)})
}

func (h *Handler) Get(c echo.Context) error {
	order, err := h.svc.Get(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, order)
}

func (h *Handler) Update(c echo.Context) error {
	var req models.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	order, err := h.svc.Update(c.Request().Context(), c.Param("orderId"), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, order)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("orderId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) FeeQuote(c echo.Context) error {
	quote, err := h.svc.FeeQuote(c.QueryParam("service_type"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, quote)
}

func (h *Handler) AssignCourier(c echo.Context) error {
	var req models.AssignCourierRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.svc.AssignCourier(c.Request().Context(), c.Param("orderId"), req.KurirID); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	_, role, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	if err := h.svc.UpdateStatus(c.Request().Context(), c.Param("orderId"), req.Status, role); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleNonCodPaid(c echo.Context) error {
	if err := h.svc.ToggleNonCodPaid(c.Request().Context(), c.Param("orderId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MarkTalanganReimbursed(c echo.Context) error {
	if err := h.svc.MarkTalanganReimbursed(c.Request().Context(), c.Param("orderId")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) StatusEvents(c echo.Context) error {
	events, err := h.svc.StatusEvents(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, events)
}

// Export streams the full ledger as CSV or JSON for download.
func (h *Handler) Export(c echo.Context) error {
	orders, err := h.svc.List(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	switch c.QueryParam("format") {
	case "json":
		data, err := export.ToJSON(orders)
		if err != nil {
			return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export orders")
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.json"`)
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
	default:
		data, err := export.OrdersToCSV(orders)
		if err != nil {
			return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export orders")
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
		return c.Blob(http.StatusOK, "text/csv", data)
	}
}
