package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/golden_sneaker/internal/service"
	"github.com/Skotchmaster/golden_sneaker/internal/transport"
)

var errInvalidID = echo.NewHTTPError(http.StatusBadRequest, "id is not integer")

func parseID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, err
	}
	return id, nil
}

// validationError renders a missing-fields failure as a 400 with the field list.
func validationError(err error) *echo.HTTPError {
	var mf *service.MissingFieldsError
	if errors.As(err, &mf) {
		return echo.NewHTTPError(http.StatusBadRequest, transport.MissingFieldsResponse{
			Message: "missing required fields",
			Missing: mf.Fields,
		})
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}
