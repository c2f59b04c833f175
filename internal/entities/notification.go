package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Notification struct {
	ID               uint64      `json:"id"`
	RecipientID      uint64      `json:"recipient_id"`
	Message          string      `json:"message"`
	IsRead           bool        `json:"is_read"`
	RelatedRequestID null.Uint64 `json:"related_request_id"`
	CreatedAt        time.Time   `json:"created_at"`
}
