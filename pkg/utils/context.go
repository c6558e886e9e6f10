package utils

import (
	"net/http"
	"strconv"

	"rayo-courier/internal/models"

	"github.com/labstack/echo/v4"
)

// ExtractUserInfo reads the authenticated identity the JWT middleware placed
// on the context. Returns the username, role and, for couriers, their courier
// id (nil for admins).
func ExtractUserInfo(c echo.Context) (username, role string, kurirID *string, err error) {
	username, ok := c.Get("username").(string)
	if !ok || username == "" {
		return "", "", nil, RespondWithError(c, http.StatusUnauthorized, "missing authentication")
	}
	role, _ = c.Get("role").(string)
	kurirID, _ = c.Get("kurirID").(*string)
	return username, role, kurirID, nil
}

// GetPageLimit reads pagination query params with sane bounds.
func GetPageLimit(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return page, limit
}

// IsAdmin reports whether the context carries the admin role.
func IsAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == models.RoleAdmin
}
