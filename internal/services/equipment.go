package services

import (
	"context"

	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/repositories"
	"gardgear/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, params utils.ListParams) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, present map[string]bool) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepository: equipmentRepository, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, params utils.ListParams) ([]dto.EquipmentDTO, uint64, error) {
	items, total, err := s.equipmentRepository.GetEquipment(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return dto.EquipmentFromEntities(items), total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.EquipmentFromEntity(*item)
	return &out, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepository.CreateEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err), zap.String("serial_number", payload.SerialNumber))
		return nil, err
	}
	s.logger.Info("equipment created", zap.Uint64("id", item.ID), zap.String("serial_number", item.SerialNumber))
	out := dto.EquipmentFromEntity(*item)
	return &out, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, present map[string]bool) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepository.UpdateEquipment(ctx, id, payload, present)
	if err != nil {
		return nil, err
	}
	out := dto.EquipmentFromEntity(*item)
	return &out, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}
