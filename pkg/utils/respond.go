package utils

import (
	"errors"
	"net/http"

	"rayo-courier/internal/models"

	"github.com/labstack/echo/v4"
)

// RespondWithJSON writes a JSON payload with the given status code.
func RespondWithJSON(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, payload)
}

// RespondWithError writes a JSON error envelope with the given status code.
func RespondWithError(c echo.Context, status int, message string) error {
	return c.JSON(status, models.ErrorResponse{Message: message})
}

// HandleServiceError maps domain errors to HTTP responses. Unknown errors
// become a 500 without leaking internals to the client.
func HandleServiceError(c echo.Context, err error) error {
	var (
		validationErr *models.ValidationError
		duplicateErr  *models.DuplicateError
		transitionErr *models.IllegalTransitionError
		amountErr     *models.InvalidAmountError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Message: "validation failed",
			Fields:  validationErr.Fields,
		})
	case errors.As(err, &duplicateErr):
		return c.JSON(http.StatusConflict, models.ErrorResponse{Message: duplicateErr.Error()})
	case errors.As(err, &transitionErr):
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Message: transitionErr.Error()})
	case errors.As(err, &amountErr):
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Message: amountErr.Error()})
	case errors.Is(err, models.ErrNotFound):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "resource not found"})
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: models.ErrInvalidCredentials.Error()})
	case errors.Is(err, models.ErrCourierInactive):
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Message: models.ErrCourierInactive.Error()})
	default:
		c.Logger().Errorf("unhandled service error: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "internal server error"})
	}
}
