package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gardgear/pkg/errors"
	"gardgear/pkg/status"
)

// PaginatedEnvelope is the wrapper list endpoints use when pagination was
// requested. Clients must accept both this and a bare array.
type PaginatedEnvelope struct {
	Count    uint64      `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// ListResponse writes a list either as a bare JSON array or, when the
// request carried page/limit params, inside the paginated envelope.
func ListResponse(c echo.Context, items interface{}, params ListParams, total uint64) error {
	if !params.Paginated {
		return c.JSON(http.StatusOK, items)
	}

	envelope := PaginatedEnvelope{
		Count:   total,
		Results: items,
	}
	if uint64(params.Page*params.Limit) < total {
		envelope.Next = pageURL(c, params, params.Page+1)
	}
	if params.Page > 1 {
		envelope.Previous = pageURL(c, params, params.Page-1)
	}
	return c.JSON(http.StatusOK, envelope)
}

func pageURL(c echo.Context, params ListParams, page int) *string {
	u := *c.Request().URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(params.Limit))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

// Detail is the error body shape: {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

// ErrorResponse maps an error to its HTTP status and writes the detail
// body. Unexpected errors are logged and reported as a generic 500.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("detail", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, Detail{Detail: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field %q failed rule %q", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, Detail{Detail: "validation failed: " + strings.Join(msgs, "; ")})
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, Detail{Detail: "not found"})
	case errors.Is(err, status.ErrUnknown), errors.Is(err, apperrors.ErrBadRequest):
		return c.JSON(http.StatusBadRequest, Detail{Detail: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicateSerial):
		return c.JSON(http.StatusBadRequest, Detail{Detail: err.Error()})
	}

	logger.Error("unexpected error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, Detail{Detail: "internal server error"})
}
