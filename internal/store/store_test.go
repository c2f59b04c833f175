package store

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/entities"
	"gardgear/pkg/status"
)

// fakeAPI records calls and serves canned collections.
type fakeAPI struct {
	requests      []dto.MaintenanceRequestDTO
	equipment     []dto.EquipmentDTO
	teams         []dto.TeamDTO
	technicians   []dto.UserDTO
	notifications []dto.NotificationDTO

	failRequests bool
	updateErr    error
	createErr    error

	updateCalls []uint64
	lastFields  map[string]interface{}
	created     []dto.CreateRequestDTO
}

func (f *fakeAPI) FetchRequests(ctx context.Context, query url.Values) ([]dto.MaintenanceRequestDTO, error) {
	if f.failRequests {
		return nil, errors.New("boom")
	}
	return f.requests, nil
}

func (f *fakeAPI) FetchEquipment(ctx context.Context, query url.Values) ([]dto.EquipmentDTO, error) {
	return f.equipment, nil
}

func (f *fakeAPI) FetchTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return f.teams, nil
}

func (f *fakeAPI) FetchTechnicians(ctx context.Context, teamID uint64) ([]dto.UserDTO, error) {
	return f.technicians, nil
}

func (f *fakeAPI) FetchNotifications(ctx context.Context) ([]dto.NotificationDTO, error) {
	return f.notifications, nil
}

func (f *fakeAPI) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, payload)
	return &dto.MaintenanceRequestDTO{ID: 99, Subject: payload.Subject, Status: status.New}, nil
}

func (f *fakeAPI) UpdateRequest(ctx context.Context, id uint64, fields map[string]interface{}) (*dto.MaintenanceRequestDTO, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updateCalls = append(f.updateCalls, id)
	f.lastFields = fields

	out := dto.MaintenanceRequestDTO{ID: id}
	if s, ok := fields["status"].(string); ok {
		out.Status = s
	}
	if t, ok := fields["technician"].(uint64); ok {
		out.Technician = null.Uint64From(t)
		out.TechnicianName = null.StringFrom("Jane Doe")
	}
	return &out, nil
}

func (f *fakeAPI) DeleteRequest(ctx context.Context, id uint64) error {
	return nil
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id uint64) (*dto.NotificationDTO, error) {
	return &dto.NotificationDTO{ID: id, IsRead: true}, nil
}

func request(id uint64, st string) dto.MaintenanceRequestDTO {
	return dto.MaintenanceRequestDTO{ID: id, Subject: "r", Status: st}
}

func newLoadedStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	s := New(api, zap.NewNop())
	s.Load(context.Background())
	return s
}

func TestLoadPopulatesAllCollections(t *testing.T) {
	api := &fakeAPI{
		requests:      []dto.MaintenanceRequestDTO{request(1, status.New)},
		equipment:     []dto.EquipmentDTO{{ID: 1, Name: "Generator A1"}},
		teams:         []dto.TeamDTO{{ID: 1, TeamName: "Electrical"}},
		technicians:   []dto.UserDTO{{ID: 1, FullName: "John Spark"}},
		notifications: []dto.NotificationDTO{{ID: 1}},
	}
	s := newLoadedStore(t, api)

	assert.True(t, s.Loaded())
	assert.Len(t, s.Requests(), 1)
	assert.Len(t, s.Equipment(), 1)
	assert.Len(t, s.Teams(), 1)
	assert.Len(t, s.Technicians(), 1)
	assert.Len(t, s.Notifications(), 1)
}

func TestLoadPartialFailureLeavesCollectionEmpty(t *testing.T) {
	api := &fakeAPI{
		failRequests: true,
		teams:        []dto.TeamDTO{{ID: 1, TeamName: "Electrical"}},
	}
	s := newLoadedStore(t, api)

	assert.False(t, s.Loaded())
	assert.Empty(t, s.Requests())
	assert.Len(t, s.Teams(), 1)
}

func TestUpdateRequestStatusPatchesExactlyOne(t *testing.T) {
	api := &fakeAPI{requests: []dto.MaintenanceRequestDTO{
		request(1, status.New),
		request(2, status.New),
	}}
	s := newLoadedStore(t, api)

	err := s.UpdateRequestStatus(context.Background(), 1, status.DisplayInProgress)
	require.NoError(t, err)

	require.Equal(t, []uint64{1}, api.updateCalls)
	assert.Equal(t, map[string]interface{}{"status": status.InProgress}, api.lastFields)

	reqs := s.Requests()
	assert.Equal(t, status.InProgress, reqs[0].Status)
	assert.Equal(t, status.New, reqs[1].Status)
}

func TestUpdateRequestStatusUnknownStatusNoNetworkCall(t *testing.T) {
	api := &fakeAPI{requests: []dto.MaintenanceRequestDTO{request(1, status.New)}}
	s := newLoadedStore(t, api)

	err := s.UpdateRequestStatus(context.Background(), 1, "Repaired")
	require.ErrorIs(t, err, status.ErrUnknown)
	assert.Empty(t, api.updateCalls)
	assert.Equal(t, status.New, s.Requests()[0].Status)
}

func TestUpdateRequestStatusFailureLeavesStateStale(t *testing.T) {
	api := &fakeAPI{
		requests:  []dto.MaintenanceRequestDTO{request(1, status.New)},
		updateErr: errors.New("network down"),
	}
	s := newLoadedStore(t, api)

	err := s.UpdateRequestStatus(context.Background(), 1, status.DisplayInProgress)
	require.Error(t, err)
	assert.Equal(t, status.New, s.Requests()[0].Status)
}

func TestCreateRequestAppendsOnce(t *testing.T) {
	api := &fakeAPI{}
	s := newLoadedStore(t, api)

	created, err := s.CreateRequest(context.Background(), dto.CreateRequestDTO{Subject: "broken pump"})
	require.NoError(t, err)
	require.NotNil(t, created)

	reqs := s.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, created.ID, reqs[0].ID)
}

func TestCreateRequestFailurePropagatesAndLeavesCollectionUnchanged(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("duplicate")}
	s := newLoadedStore(t, api)

	_, err := s.CreateRequest(context.Background(), dto.CreateRequestDTO{Subject: "x"})
	require.Error(t, err)
	assert.Empty(t, s.Requests())
}

func TestAssignTechnician(t *testing.T) {
	api := &fakeAPI{requests: []dto.MaintenanceRequestDTO{request(1, status.New)}}
	s := newLoadedStore(t, api)

	require.NoError(t, s.AssignTechnician(context.Background(), 1, 7))
	assert.Equal(t, map[string]interface{}{"technician": uint64(7)}, api.lastFields)

	r := s.Requests()[0]
	assert.Equal(t, uint64(7), r.Technician.Uint64)
	assert.Equal(t, "Jane Doe", r.TechnicianName.String)
}

func TestDeleteRequestRemovesEntity(t *testing.T) {
	api := &fakeAPI{requests: []dto.MaintenanceRequestDTO{
		request(1, status.New),
		request(2, status.New),
	}}
	s := newLoadedStore(t, api)

	require.NoError(t, s.DeleteRequest(context.Background(), 1))
	reqs := s.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, uint64(2), reqs[0].ID)
}

func TestMarkNotificationAsRead(t *testing.T) {
	api := &fakeAPI{notifications: []dto.NotificationDTO{
		{ID: 1}, {ID: 2},
	}}
	s := newLoadedStore(t, api)

	require.NoError(t, s.MarkNotificationAsRead(context.Background(), 1))
	assert.True(t, s.Notifications()[0].IsRead)
	assert.False(t, s.Notifications()[1].IsRead)
	assert.Len(t, s.UnreadNotifications(), 1)
}

func TestRequestsByStatus(t *testing.T) {
	api := &fakeAPI{requests: []dto.MaintenanceRequestDTO{
		request(1, status.New),
		request(2, status.InProgress),
		request(3, status.New),
	}}
	s := newLoadedStore(t, api)

	newOnes, err := s.RequestsByStatus(status.DisplayNew)
	require.NoError(t, err)
	assert.Len(t, newOnes, 2)

	_, err = s.RequestsByStatus("done")
	assert.ErrorIs(t, err, status.ErrUnknown)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	yesterday := null.StringFrom("2026-03-14")
	today := null.StringFrom("2026-03-15")
	tomorrow := null.StringFrom("2026-03-16")

	cases := []struct {
		name    string
		status  string
		due     null.String
		overdue bool
	}{
		{"no due date", status.New, null.String{}, false},
		{"due yesterday", status.New, yesterday, true},
		{"due today", status.New, today, false},
		{"due tomorrow", status.New, tomorrow, false},
		{"repaired past due", status.Repaired, yesterday, false},
		{"scrap past due", status.Scrap, yesterday, false},
		{"in progress past due", status.InProgress, yesterday, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := dto.MaintenanceRequestDTO{Status: tc.status, DueDate: tc.due}
			assert.Equal(t, tc.overdue, IsOverdue(r, now))
		})
	}
}

func TestStatusCounts(t *testing.T) {
	past := null.StringFrom(time.Now().AddDate(0, 0, -2).Format(entities.WireDate))
	api := &fakeAPI{requests: []dto.MaintenanceRequestDTO{
		request(1, status.New),
		request(2, status.New),
		{ID: 3, Status: status.InProgress, DueDate: past},
		request(4, status.Repaired),
		request(5, status.Scrap),
	}}
	s := newLoadedStore(t, api)

	c := s.StatusCounts()
	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 2, c.New)
	assert.Equal(t, 1, c.InProgress)
	assert.Equal(t, 1, c.Repaired)
	assert.Equal(t, 1, c.Scrap)
	assert.Equal(t, 1, c.Overdue)
}

func TestRequestsByDateAndOpenForEquipment(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)
	api := &fakeAPI{requests: []dto.MaintenanceRequestDTO{
		{ID: 1, Status: status.New, Equipment: 10, ScheduledDate: null.StringFrom("2026-04-01")},
		{ID: 2, Status: status.Repaired, Equipment: 10, ScheduledDate: null.StringFrom("2026-04-02")},
		{ID: 3, Status: status.InProgress, Equipment: 10},
	}}
	s := newLoadedStore(t, api)

	byDate := s.RequestsByDate(day)
	require.Len(t, byDate, 1)
	assert.Equal(t, uint64(1), byDate[0].ID)

	open := s.OpenRequestsForEquipment(10)
	require.Len(t, open, 2)
	for _, r := range open {
		assert.NotEqual(t, status.Repaired, r.Status)
	}
}
