package repositories

import (
	"fmt"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gardgear/pkg/errors"
)

func TestTranslateNoRows(t *testing.T) {
	assert.ErrorIs(t, translateNoRows(pgx.ErrNoRows), apperrors.ErrNotFound)

	other := fmt.Errorf("connection reset")
	assert.Equal(t, other, translateNoRows(other))
	assert.NoError(t, translateNoRows(nil))
}

func TestTranslateConstraint(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	assert.ErrorIs(t, translateConstraint(dup), apperrors.ErrDuplicateSerial)

	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(fk), translateConstraint(fk))
}

func TestTechnicianName(t *testing.T) {
	tests := []struct {
		name                  string
		first, last, username null.String
		want                  null.String
	}{
		{"full name", null.StringFrom("John"), null.StringFrom("Spark"), null.StringFrom("tech_elec"), null.StringFrom("John Spark")},
		{"first only", null.StringFrom("John"), null.String{}, null.StringFrom("tech_elec"), null.StringFrom("John")},
		{"last only", null.String{}, null.StringFrom("Spark"), null.StringFrom("tech_elec"), null.StringFrom("Spark")},
		{"username fallback", null.String{}, null.String{}, null.StringFrom("tech_elec"), null.StringFrom("tech_elec")},
		{"no user joined", null.String{}, null.String{}, null.String{}, null.String{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, technicianName(tt.first, tt.last, tt.username))
		})
	}
}

func TestNullDate(t *testing.T) {
	got, err := nullDate(nil)
	require.NoError(t, err)
	assert.False(t, got.Valid)

	empty := ""
	got, err = nullDate(&empty)
	require.NoError(t, err)
	assert.False(t, got.Valid)

	day := "2026-08-15"
	got, err = nullDate(&day)
	require.NoError(t, err)
	require.True(t, got.Valid)
	assert.Equal(t, 2026, got.Time.Year())
	assert.Equal(t, 15, got.Time.Day())

	bad := "15/08/2026"
	_, err = nullDate(&bad)
	assert.Error(t, err)
}

func TestRequestSelectGeneratesDollarPlaceholders(t *testing.T) {
	query, args, err := requestSelect().Where(sq.Eq{"r.id": 7}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM maintenance_requests r")
	assert.Contains(t, query, "LEFT JOIN equipment e ON e.id = r.equipment_id")
	assert.Contains(t, query, "LEFT JOIN users u ON u.id = r.technician_id")
	assert.Contains(t, query, "r.id = $1")
	require.Len(t, args, 1)
	assert.Equal(t, 7, args[0])
}

func TestEquipmentSelectJoinsTeam(t *testing.T) {
	query, _, err := equipmentSelect().ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM equipment e")
	assert.Contains(t, query, "LEFT JOIN maintenance_teams t ON t.id = e.maintenance_team_id")
}
