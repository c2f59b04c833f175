package events

import (
	"github.com/google/uuid"

	"gardgear/internal/entities"
)

// RequestCreatedEvent fires after a maintenance request row is inserted.
type RequestCreatedEvent struct {
	EventID uuid.UUID
	Request entities.MaintenanceRequest
}

func (e RequestCreatedEvent) Name() string {
	return "request.created"
}

// RequestStatusChangedEvent fires after a status transition is persisted.
type RequestStatusChangedEvent struct {
	EventID   uuid.UUID
	Request   entities.MaintenanceRequest
	OldStatus string
}

func (e RequestStatusChangedEvent) Name() string {
	return "request.status.changed"
}

// RequestAssignedEvent fires when a technician is set on a request.
type RequestAssignedEvent struct {
	EventID      uuid.UUID
	Request      entities.MaintenanceRequest
	TechnicianID uint64
}

func (e RequestAssignedEvent) Name() string {
	return "request.assigned"
}
