package contacts

import (
	"net/http"

	"rayo-courier/pkg/export"
	"rayo-courier/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the address book.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new contact handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) List(c echo.Context) error {
	contacts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contacts")
	}
	return utils.RespondWithJSON(c, http.StatusOK, contacts)
}

func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.svc.Tags(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tags")
	}
	return utils.RespondWithJSON(c, http.StatusOK, tags)
}

// Export streams the address book as CSV or JSON for download.
func (h *Handler) Export(c echo.Context) error {
	contacts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contacts")
	}

	switch c.QueryParam("format") {
	case "json":
		data, err := export.ToJSON(contacts)
		if err != nil {
			return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export contacts")
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contacts.json"`)
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
	default:
		data, err := export.ContactsToCSV(contacts)
		if err != nil {
			return utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export contacts")
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contacts.csv"`)
		return c.Blob(http.StatusOK, "text/csv", data)
	}
}
