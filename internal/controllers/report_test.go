package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardgear/internal/entities"
	"gardgear/pkg/status"
)

type stubReportService struct {
	report   *entities.RequestsReport
	register []entities.RegisterRow
}

func (s *stubReportService) RequestsReport(_ context.Context) (*entities.RequestsReport, error) {
	return s.report, nil
}

func (s *stubReportService) RequestRegister(_ context.Context) ([]entities.RegisterRow, error) {
	return s.register, nil
}

func TestGetRequestsReportJSON(t *testing.T) {
	svc := &stubReportService{report: &entities.RequestsReport{
		Total:    3,
		ByStatus: map[string]uint64{status.New: 2, status.InProgress: 1, status.Repaired: 0, status.Scrap: 0},
		Overdue:  1,
	}}
	ctrl := NewReportController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/reports/requests", "", ctrl.GetRequestsReport)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out entities.RequestsReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, uint64(3), out.Total)
	assert.Equal(t, uint64(2), out.ByStatus[status.New])
	assert.Equal(t, uint64(1), out.Overdue)
}

func TestGetRequestsReportXLSX(t *testing.T) {
	svc := &stubReportService{register: []entities.RegisterRow{{
		ID:            1,
		Subject:       "pump leaking",
		RequestType:   "Corrective",
		EquipmentName: null.StringFrom("Generator A1"),
		Status:        status.New,
		CreatedAt:     time.Now(),
	}}}
	ctrl := NewReportController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/reports/requests?format=xlsx", "", ctrl.GetRequestsReport)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "maintenance_register_")
	assert.NotZero(t, rec.Body.Len())
}
