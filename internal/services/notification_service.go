package services

import (
	"context"

	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/repositories"
	"gardgear/pkg/utils"
)

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context, params utils.ListParams) ([]dto.NotificationDTO, uint64, error)
	MarkRead(ctx context.Context, id uint64) (*dto.NotificationDTO, error)
}

type NotificationService struct {
	notificationRepository repositories.NotificationRepositoryInterface
	logger                 *zap.Logger
}

func NewNotificationService(notificationRepository repositories.NotificationRepositoryInterface, logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{notificationRepository: notificationRepository, logger: logger}
}

func (s *NotificationService) GetNotifications(ctx context.Context, params utils.ListParams) ([]dto.NotificationDTO, uint64, error) {
	items, total, err := s.notificationRepository.GetNotifications(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return dto.NotificationsFromEntities(items), total, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint64) (*dto.NotificationDTO, error) {
	item, err := s.notificationRepository.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NotificationFromEntity(*item)
	return &out, nil
}
