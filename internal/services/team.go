package services

import (
	"context"

	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/repositories"
	"gardgear/pkg/utils"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context, params utils.ListParams) ([]dto.TeamDTO, uint64, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
}

type TeamService struct {
	teamRepository repositories.TeamRepositoryInterface
	logger         *zap.Logger
}

func NewTeamService(teamRepository repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{teamRepository: teamRepository, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context, params utils.ListParams) ([]dto.TeamDTO, uint64, error) {
	teams, total, err := s.teamRepository.GetTeams(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return dto.TeamsFromEntities(teams), total, nil
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	team, err := s.teamRepository.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.TeamFromEntity(*team)
	return &out, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	team, err := s.teamRepository.CreateTeam(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create maintenance team", zap.Error(err))
		return nil, err
	}
	s.logger.Info("maintenance team created", zap.Uint64("id", team.ID), zap.String("team_name", team.TeamName))
	out := dto.TeamFromEntity(*team)
	return &out, nil
}
