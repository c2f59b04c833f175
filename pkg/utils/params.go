package utils

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "gardgear/pkg/errors"
)

// ParseIDParam reads the :id path parameter as a positive integer.
func ParseIDParam(c echo.Context) (uint64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "invalid id parameter", err,
			map[string]interface{}{"param": raw})
	}
	return id, nil
}
