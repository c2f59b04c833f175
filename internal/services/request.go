package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/events"
	"gardgear/internal/repositories"
	"gardgear/pkg/eventbus"
	"gardgear/pkg/utils"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, params utils.ListParams) ([]dto.MaintenanceRequestDTO, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.MaintenanceRequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO, present map[string]bool) (*dto.MaintenanceRequestDTO, error)
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestService struct {
	requestRepository repositories.RequestRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	bus               *eventbus.Bus
	logger            *zap.Logger
}

func NewRequestService(
	requestRepository repositories.RequestRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepository: requestRepository,
		cache:             cache,
		bus:               bus,
		logger:            logger,
	}
}

// ReportCacheKey is the cached aggregate invalidated on every mutation.
const ReportCacheKey = "report:requests"

func (s *RequestService) invalidateReport(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, ReportCacheKey); err != nil {
		s.logger.Warn("failed to invalidate report cache", zap.Error(err))
	}
}

func (s *RequestService) GetRequests(ctx context.Context, params utils.ListParams) ([]dto.MaintenanceRequestDTO, uint64, error) {
	items, total, err := s.requestRepository.GetRequests(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return dto.RequestsFromEntities(items), total, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error) {
	item, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.RequestFromEntity(*item)
	return &out, nil
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	item, err := s.requestRepository.CreateRequest(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create maintenance request", zap.Error(err), zap.String("subject", payload.Subject))
		return nil, err
	}
	s.logger.Info("maintenance request created",
		zap.Uint64("id", item.ID),
		zap.String("status", item.Status),
	)

	s.bus.Publish(ctx, events.RequestCreatedEvent{EventID: uuid.New(), Request: *item})
	if item.TechnicianID.Valid {
		s.bus.Publish(ctx, events.RequestAssignedEvent{
			EventID:      uuid.New(),
			Request:      *item,
			TechnicianID: item.TechnicianID.Uint64,
		})
	}
	s.invalidateReport(ctx)

	out := dto.RequestFromEntity(*item)
	return &out, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO, present map[string]bool) (*dto.MaintenanceRequestDTO, error) {
	before, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := s.requestRepository.UpdateRequest(ctx, id, payload, present)
	if err != nil {
		return nil, err
	}

	if item.Status != before.Status {
		s.bus.Publish(ctx, events.RequestStatusChangedEvent{
			EventID:   uuid.New(),
			Request:   *item,
			OldStatus: before.Status,
		})
	}
	if item.TechnicianID.Valid && item.TechnicianID != before.TechnicianID {
		s.bus.Publish(ctx, events.RequestAssignedEvent{
			EventID:      uuid.New(),
			Request:      *item,
			TechnicianID: item.TechnicianID.Uint64,
		})
	}
	s.invalidateReport(ctx)

	out := dto.RequestFromEntity(*item)
	return &out, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	if err := s.requestRepository.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.invalidateReport(ctx)
	return nil
}
