package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardgear/internal/dto"
	apperrors "gardgear/pkg/errors"
	"gardgear/pkg/utils"
)

type stubEquipmentService struct {
	items     []dto.EquipmentDTO
	createErr error
	created   *dto.CreateEquipmentDTO
}

func (s *stubEquipmentService) GetEquipment(_ context.Context, _ utils.ListParams) ([]dto.EquipmentDTO, uint64, error) {
	return s.items, uint64(len(s.items)), nil
}

func (s *stubEquipmentService) FindEquipment(_ context.Context, id uint64) (*dto.EquipmentDTO, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubEquipmentService) CreateEquipment(_ context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &payload
	return &dto.EquipmentDTO{ID: 10, Name: payload.Name, SerialNumber: payload.SerialNumber}, nil
}

func (s *stubEquipmentService) UpdateEquipment(_ context.Context, id uint64, _ dto.UpdateEquipmentDTO, _ map[string]bool) (*dto.EquipmentDTO, error) {
	return &dto.EquipmentDTO{ID: id}, nil
}

func (s *stubEquipmentService) DeleteEquipment(_ context.Context, _ uint64) error {
	return nil
}

func TestCreateEquipment(t *testing.T) {
	svc := &stubEquipmentService{}
	ctrl := NewEquipmentController(svc, zap.NewNop())

	body := `{"name": "Generator A1", "serial_number": "SN-10001", "maintenance_team": 1}`
	rec := doRequest(t, newEcho(), http.MethodPost, "/api/equipment", body, ctrl.CreateEquipment)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "SN-10001", svc.created.SerialNumber)
}

func TestCreateEquipmentDuplicateSerial(t *testing.T) {
	svc := &stubEquipmentService{createErr: apperrors.ErrDuplicateSerial}
	ctrl := NewEquipmentController(svc, zap.NewNop())

	body := `{"name": "Generator A1", "serial_number": "SN-10001", "maintenance_team": 1}`
	rec := doRequest(t, newEcho(), http.MethodPost, "/api/equipment", body, ctrl.CreateEquipment)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "serial number already exists")
}

func TestCreateEquipmentMissingSerialRejected(t *testing.T) {
	svc := &stubEquipmentService{}
	ctrl := NewEquipmentController(svc, zap.NewNop())

	body := `{"name": "Generator A1", "maintenance_team": 1}`
	rec := doRequest(t, newEcho(), http.MethodPost, "/api/equipment", body, ctrl.CreateEquipment)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.created)
}

func TestGetEquipmentByTeamRequiresTeamID(t *testing.T) {
	svc := &stubEquipmentService{}
	ctrl := NewEquipmentController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/equipment/by_team", "", ctrl.GetEquipmentByTeam)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "team_id")
}
