package services

import (
	"context"

	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/repositories"
	"gardgear/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, params utils.ListParams) ([]dto.UserDTO, uint64, error)
	GetTechnicians(ctx context.Context, teamID uint64) ([]dto.UserDTO, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepository: userRepository, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, params utils.ListParams) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepository.GetUsers(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return dto.UsersFromEntities(users), total, nil
}

func (s *UserService) GetTechnicians(ctx context.Context, teamID uint64) ([]dto.UserDTO, error) {
	users, err := s.userRepository.GetTechnicians(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return dto.UsersFromEntities(users), nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.UserFromEntity(*user)
	return &out, nil
}
