package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/laurvh/food-for-you/internal/model"
	"github.com/laurvh/food-for-you/internal/repository"
)

// writeErr maps repository sentinel errors onto HTTP status codes and
// renders a uniform JSON error body.  Unknown errors become a 500 with a
// generic message so internals never leak to clients.
func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrItemNotFound), errors.Is(err, repository.ErrFoodBankNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateItem),
		errors.Is(err, repository.ErrDuplicateFoodBank),
		errors.Is(err, repository.ErrItemMismatch):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// pathID parses the numeric :id path parameter.  The filter engine treats
// identifiers as caller-validated, so every handler goes through here
// before touching a repository.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryFlag interprets a query parameter as a boolean toggle.  Absent or
// unparsable values are false.
func queryFlag(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))
	return v
}

// dayHoursOf pairs raw open and close strings back into a DayHours value.
func dayHoursOf(open, close string) model.DayHours {
	return model.DayHours{Open: open, Close: close}
}
