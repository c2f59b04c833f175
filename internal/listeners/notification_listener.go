package listeners

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gardgear/internal/events"
	"gardgear/internal/repositories"
	"gardgear/pkg/eventbus"
	"gardgear/pkg/status"
)

// NotificationListener turns request lifecycle events into notification
// rows. Events on an assigned request notify that technician; a new
// unassigned request notifies every technician on its team.
type NotificationListener struct {
	notificationRepo repositories.NotificationRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	logger           *zap.Logger
}

func NewNotificationListener(
	notificationRepo repositories.NotificationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe("request.created", l.handleCreated)
	bus.Subscribe("request.status.changed", l.handleStatusChanged)
	bus.Subscribe("request.assigned", l.handleAssigned)
}

func (l *NotificationListener) handleCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %q", event.Name())
	}
	message := fmt.Sprintf("New maintenance request #%d: %s", e.Request.ID, e.Request.Subject)
	if e.Request.TechnicianID.Valid {
		return l.notify(ctx, e.Request.TechnicianID.Uint64, message, e.Request.ID)
	}

	technicians, err := l.userRepo.GetTechnicians(ctx, e.Request.TeamID)
	if err != nil {
		l.logger.Error("failed to list team technicians",
			zap.Uint64("team", e.Request.TeamID),
			zap.Error(err),
		)
		return err
	}
	for _, tech := range technicians {
		if err := l.notify(ctx, tech.ID, message, e.Request.ID); err != nil {
			return err
		}
	}
	return nil
}

func (l *NotificationListener) handleStatusChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %q", event.Name())
	}
	if !e.Request.TechnicianID.Valid {
		return nil
	}
	message := fmt.Sprintf("Request #%d moved from %s to %s",
		e.Request.ID, status.Label(e.OldStatus), status.Label(e.Request.Status))
	return l.notify(ctx, e.Request.TechnicianID.Uint64, message, e.Request.ID)
}

func (l *NotificationListener) handleAssigned(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestAssignedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %q", event.Name())
	}
	message := fmt.Sprintf("You were assigned to request #%d: %s", e.Request.ID, e.Request.Subject)
	return l.notify(ctx, e.TechnicianID, message, e.Request.ID)
}

func (l *NotificationListener) notify(ctx context.Context, recipientID uint64, message string, requestID uint64) error {
	err := l.notificationRepo.CreateNotification(ctx, recipientID, message, null.Uint64From(requestID))
	if err != nil {
		l.logger.Error("failed to write notification",
			zap.Uint64("recipient", recipientID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
