package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListParamsDefaults(t *testing.T) {
	params := ParseListParams(url.Values{})

	assert.False(t, params.Paginated)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
	assert.Empty(t, params.Filters)
}

func TestParseListParamsPagination(t *testing.T) {
	params := ParseListParams(url.Values{"page": {"3"}, "limit": {"20"}})

	assert.True(t, params.Paginated)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, uint64(40), params.Offset())
}

func TestParseListParamsLimitCapped(t *testing.T) {
	params := ParseListParams(url.Values{"limit": {"9999"}})

	assert.Equal(t, MaxLimit, params.Limit)
}

func TestParseListParamsFiltersSkipReservedKeys(t *testing.T) {
	params := ParseListParams(url.Values{
		"status":   {"New"},
		"team":     {"2"},
		"search":   {"pump"},
		"ordering": {"-due_date"},
		"page":     {"1"},
		"format":   {"xlsx"},
	})

	assert.Equal(t, map[string]string{"status": "New", "team": "2"}, params.Filters)
	assert.Equal(t, "pump", params.Search)
	assert.Equal(t, "-due_date", params.Ordering)
}

func TestOrderingColumn(t *testing.T) {
	tests := []struct {
		name      string
		ordering  string
		column    string
		direction string
		ok        bool
	}{
		{"ascending", "due_date", "due_date", "ASC", true},
		{"descending", "-due_date", "due_date", "DESC", true},
		{"not in allowed set", "password", "", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ListParams{Ordering: tt.ordering}
			col, dir, ok := params.OrderingColumn("due_date", "created_at")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.column, col)
			assert.Equal(t, tt.direction, dir)
		})
	}
}

func TestPresentFieldsDistinguishesNullFromAbsent(t *testing.T) {
	present, err := PresentFields([]byte(`{"status": "New", "due_date": null}`))
	require.NoError(t, err)

	assert.True(t, present["status"])
	assert.True(t, present["due_date"])
	assert.False(t, present["subject"])
}

func TestPresentFieldsMalformed(t *testing.T) {
	_, err := PresentFields([]byte(`{"status":`))
	assert.Error(t, err)
}
