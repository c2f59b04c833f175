package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"gardgear/internal/entities"
	"gardgear/internal/repositories"
)

type ReportServiceInterface interface {
	RequestsReport(ctx context.Context) (*entities.RequestsReport, error)
	RequestRegister(ctx context.Context) ([]entities.RegisterRow, error)
}

type ReportService struct {
	reportRepository repositories.ReportRepositoryInterface
	cache            repositories.CacheRepositoryInterface
	cacheTTL         time.Duration
	logger           *zap.Logger
}

func NewReportService(
	reportRepository repositories.ReportRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		reportRepository: reportRepository,
		cache:            cache,
		cacheTTL:         cacheTTL,
		logger:           logger,
	}
}

// RequestsReport serves the aggregate from Redis when fresh, falling back
// to the database on a miss. Cache failures degrade to a direct query.
func (s *ReportService) RequestsReport(ctx context.Context) (*entities.RequestsReport, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, ReportCacheKey)
		if err == nil {
			var report entities.RequestsReport
			if uerr := json.Unmarshal([]byte(raw), &report); uerr == nil {
				return &report, nil
			}
			s.logger.Warn("discarding malformed cached report", zap.String("key", ReportCacheKey))
		} else if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("report cache read failed", zap.Error(err))
		}
	}

	report, err := s.reportRepository.RequestsReport(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(ctx, ReportCacheKey, raw, s.cacheTTL); err != nil {
				s.logger.Warn("report cache write failed", zap.Error(err))
			}
		}
	}
	return report, nil
}

func (s *ReportService) RequestRegister(ctx context.Context) ([]entities.RegisterRow, error) {
	return s.reportRepository.RequestRegister(ctx)
}
