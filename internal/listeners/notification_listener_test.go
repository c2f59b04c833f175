package listeners

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardgear/internal/entities"
	"gardgear/internal/events"
	"gardgear/pkg/status"
	"gardgear/pkg/utils"
)

type recordedNotification struct {
	recipientID uint64
	message     string
	requestID   null.Uint64
}

type fakeNotificationRepo struct {
	written []recordedNotification
}

func (f *fakeNotificationRepo) GetNotifications(_ context.Context, _ utils.ListParams) ([]entities.Notification, uint64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) CreateNotification(_ context.Context, recipientID uint64, message string, relatedRequestID null.Uint64) error {
	f.written = append(f.written, recordedNotification{recipientID, message, relatedRequestID})
	return nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _ uint64) (*entities.Notification, error) {
	return nil, nil
}

type fakeUserRepo struct {
	technicians []entities.User
	lastTeamID  uint64
}

func (f *fakeUserRepo) GetUsers(_ context.Context, _ utils.ListParams) ([]entities.User, uint64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) GetTechnicians(_ context.Context, teamID uint64) ([]entities.User, error) {
	f.lastTeamID = teamID
	return f.technicians, nil
}

func (f *fakeUserRepo) FindUser(_ context.Context, _ uint64) (*entities.User, error) {
	return nil, nil
}

func newListener() (*NotificationListener, *fakeNotificationRepo, *fakeUserRepo) {
	notifications := &fakeNotificationRepo{}
	users := &fakeUserRepo{}
	return NewNotificationListener(notifications, users, zap.NewNop()), notifications, users
}

func TestCreatedWithAssigneeNotifiesOnlyAssignee(t *testing.T) {
	l, notifications, users := newListener()
	users.technicians = []entities.User{{ID: 11}, {ID: 12}}

	err := l.handleCreated(context.Background(), events.RequestCreatedEvent{
		EventID: uuid.New(),
		Request: entities.MaintenanceRequest{
			ID: 5, Subject: "pump leaking", TeamID: 2,
			TechnicianID: null.Uint64From(11), Status: status.New,
		},
	})
	require.NoError(t, err)

	require.Len(t, notifications.written, 1)
	assert.Equal(t, uint64(11), notifications.written[0].recipientID)
	assert.Contains(t, notifications.written[0].message, "#5")
	assert.Equal(t, null.Uint64From(5), notifications.written[0].requestID)
	assert.Zero(t, users.lastTeamID)
}

func TestCreatedUnassignedNotifiesTeamTechnicians(t *testing.T) {
	l, notifications, users := newListener()
	users.technicians = []entities.User{{ID: 11}, {ID: 12}}

	err := l.handleCreated(context.Background(), events.RequestCreatedEvent{
		EventID: uuid.New(),
		Request: entities.MaintenanceRequest{ID: 5, Subject: "pump leaking", TeamID: 2, Status: status.New},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(2), users.lastTeamID)
	require.Len(t, notifications.written, 2)
	assert.Equal(t, uint64(11), notifications.written[0].recipientID)
	assert.Equal(t, uint64(12), notifications.written[1].recipientID)
}

func TestStatusChangedMessageNamesBothStatuses(t *testing.T) {
	l, notifications, _ := newListener()

	err := l.handleStatusChanged(context.Background(), events.RequestStatusChangedEvent{
		EventID:   uuid.New(),
		OldStatus: status.New,
		Request: entities.MaintenanceRequest{
			ID: 5, TechnicianID: null.Uint64From(11), Status: status.InProgress,
		},
	})
	require.NoError(t, err)

	require.Len(t, notifications.written, 1)
	assert.Contains(t, notifications.written[0].message, status.New)
	assert.Contains(t, notifications.written[0].message, status.InProgress)
}

func TestStatusChangedWithoutAssigneeIsSilent(t *testing.T) {
	l, notifications, _ := newListener()

	err := l.handleStatusChanged(context.Background(), events.RequestStatusChangedEvent{
		EventID:   uuid.New(),
		OldStatus: status.New,
		Request:   entities.MaintenanceRequest{ID: 5, Status: status.InProgress},
	})
	require.NoError(t, err)
	assert.Empty(t, notifications.written)
}

func TestAssignedNotifiesTechnician(t *testing.T) {
	l, notifications, _ := newListener()

	err := l.handleAssigned(context.Background(), events.RequestAssignedEvent{
		EventID:      uuid.New(),
		TechnicianID: 7,
		Request:      entities.MaintenanceRequest{ID: 5, Subject: "pump leaking"},
	})
	require.NoError(t, err)

	require.Len(t, notifications.written, 1)
	assert.Equal(t, uint64(7), notifications.written[0].recipientID)
	assert.Contains(t, notifications.written[0].message, "assigned")
}

func TestWrongPayloadTypeRejected(t *testing.T) {
	l, notifications, _ := newListener()

	err := l.handleCreated(context.Background(), events.RequestAssignedEvent{EventID: uuid.New()})
	assert.Error(t, err)
	assert.Empty(t, notifications.written)
}
