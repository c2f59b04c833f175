package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"gardgear/internal/entities"
)

type NotificationDTO struct {
	ID             uint64      `json:"id"`
	Message        string      `json:"message"`
	IsRead         bool        `json:"is_read"`
	RelatedRequest null.Uint64 `json:"related_request"`
	CreatedAt      string      `json:"created_at"`
}

func NotificationFromEntity(n entities.Notification) NotificationDTO {
	return NotificationDTO{
		ID:             n.ID,
		Message:        n.Message,
		IsRead:         n.IsRead,
		RelatedRequest: n.RelatedRequestID,
		CreatedAt:      n.CreatedAt.Format(time.RFC3339),
	}
}

func NotificationsFromEntities(items []entities.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationFromEntity(n))
	}
	return out
}
