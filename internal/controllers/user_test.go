package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardgear/internal/dto"
	apperrors "gardgear/pkg/errors"
	"gardgear/pkg/utils"
)

type stubUserService struct {
	users      []dto.UserDTO
	lastTeamID uint64
	lastParams utils.ListParams
}

func (s *stubUserService) GetUsers(_ context.Context, params utils.ListParams) ([]dto.UserDTO, uint64, error) {
	s.lastParams = params
	return s.users, uint64(len(s.users)), nil
}

func (s *stubUserService) GetTechnicians(_ context.Context, teamID uint64) ([]dto.UserDTO, error) {
	s.lastTeamID = teamID
	return s.users, nil
}

func (s *stubUserService) FindUser(_ context.Context, id uint64) (*dto.UserDTO, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func TestGetTechniciansWithoutTeamFilter(t *testing.T) {
	svc := &stubUserService{users: []dto.UserDTO{{ID: 1, Username: "tech_elec"}}}
	ctrl := NewUserController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/users/technicians", "", ctrl.GetTechnicians)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(0), svc.lastTeamID)
	var users []dto.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestGetTechniciansWithTeamFilter(t *testing.T) {
	svc := &stubUserService{}
	ctrl := NewUserController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/users/technicians?team_id=3", "", ctrl.GetTechnicians)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(3), svc.lastTeamID)
}

func TestGetTechniciansInvalidTeamID(t *testing.T) {
	svc := &stubUserService{}
	ctrl := NewUserController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/users/technicians?team_id=abc", "", ctrl.GetTechnicians)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUsersByTeamRequiresTeamID(t *testing.T) {
	svc := &stubUserService{}
	ctrl := NewUserController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/users/by_team", "", ctrl.GetUsersByTeam)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "team_id parameter is required", decodeDetail(t, rec))
}

func TestGetUsersByTeamFiltersByTeam(t *testing.T) {
	svc := &stubUserService{}
	ctrl := NewUserController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodGet, "/api/users/by_team?team_id=2", "", ctrl.GetUsersByTeam)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", svc.lastParams.Filters["team"])
	assert.False(t, svc.lastParams.Paginated)
}
