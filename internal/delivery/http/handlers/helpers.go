package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/dto/response"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
)

const actorHeader = "X-User-ID"

// actorID extracts the acting user from the request headers. Auth itself is
// handled upstream by the gateway; the service only needs the identity.
func actorID(c echo.Context) (string, error) {
	id := c.Request().Header.Get(actorHeader)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing "+actorHeader+" header")
	}
	return id, nil
}

func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(httpStatusFor(err), response.Error(err.Error()))
}
