package utils

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ListParams carries the common list-endpoint query parameters. The wire
// format follows the backend the dashboard was written against: plain
// field=value filters, an optional search term and page/limit pagination.
// A list response is wrapped in the paginated envelope only when the
// caller asked for a page or a limit.
type ListParams struct {
	Filters   map[string]string
	Search    string
	Ordering  string
	Page      int
	Limit     int
	Paginated bool
}

// reserved query keys that are not entity field filters.
var reservedKeys = map[string]bool{
	"page":     true,
	"limit":    true,
	"search":   true,
	"ordering": true,
	"format":   true,
}

func ParseListParams(values url.Values) ListParams {
	params := ListParams{
		Filters: make(map[string]string),
		Page:    1,
		Limit:   DefaultLimit,
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			params.Page = p
			params.Paginated = true
		}
	}
	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				l = MaxLimit
			}
			params.Limit = l
			params.Paginated = true
		}
	}

	params.Search = values.Get("search")
	params.Ordering = values.Get("ordering")

	for key, vals := range values {
		if reservedKeys[key] || len(vals) == 0 || vals[0] == "" {
			continue
		}
		params.Filters[key] = vals[0]
	}

	return params
}

// Offset returns the row offset for the requested page.
func (p ListParams) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

// OrderingColumn splits the DRF-style ordering param ("-due_date") into a
// column name and direction, restricted to the allowed set.
func (p ListParams) OrderingColumn(allowed ...string) (column, direction string, ok bool) {
	if p.Ordering == "" {
		return "", "", false
	}
	column = p.Ordering
	direction = "ASC"
	if strings.HasPrefix(column, "-") {
		column = column[1:]
		direction = "DESC"
	}
	for _, a := range allowed {
		if a == column {
			return column, direction, true
		}
	}
	return "", "", false
}
