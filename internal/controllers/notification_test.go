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

type stubNotificationService struct {
	items []dto.NotificationDTO
}

func (s *stubNotificationService) GetNotifications(_ context.Context, _ utils.ListParams) ([]dto.NotificationDTO, uint64, error) {
	return s.items, uint64(len(s.items)), nil
}

func (s *stubNotificationService) MarkRead(_ context.Context, id uint64) (*dto.NotificationDTO, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsRead = true
			return &s.items[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func TestMarkReadFlipsFlag(t *testing.T) {
	svc := &stubNotificationService{items: []dto.NotificationDTO{{ID: 4, Message: "assigned"}}}
	ctrl := NewNotificationController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodPost, "/api/notifications/4/mark_read", "", ctrl.MarkRead, "id", "4")

	assert.Equal(t, http.StatusOK, rec.Code)
	var out dto.NotificationDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.IsRead)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	svc := &stubNotificationService{}
	ctrl := NewNotificationController(svc, zap.NewNop())

	rec := doRequest(t, newEcho(), http.MethodPost, "/api/notifications/9/mark_read", "", ctrl.MarkRead, "id", "9")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeDetail(t, rec))
}
