package kanban

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/internal/store"
	"gardgear/pkg/status"
)

// recordingAPI serves a fixed request collection and records PATCHes.
type recordingAPI struct {
	requests []dto.MaintenanceRequestDTO

	updateCalls []uint64
	lastFields  map[string]interface{}
}

func (f *recordingAPI) FetchRequests(ctx context.Context, query url.Values) ([]dto.MaintenanceRequestDTO, error) {
	return f.requests, nil
}

func (f *recordingAPI) FetchEquipment(ctx context.Context, query url.Values) ([]dto.EquipmentDTO, error) {
	return nil, nil
}

func (f *recordingAPI) FetchTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	return nil, nil
}

func (f *recordingAPI) FetchTechnicians(ctx context.Context, teamID uint64) ([]dto.UserDTO, error) {
	return nil, nil
}

func (f *recordingAPI) FetchNotifications(ctx context.Context) ([]dto.NotificationDTO, error) {
	return nil, nil
}

func (f *recordingAPI) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	return nil, nil
}

func (f *recordingAPI) UpdateRequest(ctx context.Context, id uint64, fields map[string]interface{}) (*dto.MaintenanceRequestDTO, error) {
	f.updateCalls = append(f.updateCalls, id)
	f.lastFields = fields

	out := dto.MaintenanceRequestDTO{ID: id}
	if s, ok := fields["status"].(string); ok {
		out.Status = s
	}
	return &out, nil
}

func (f *recordingAPI) DeleteRequest(ctx context.Context, id uint64) error { return nil }

func (f *recordingAPI) MarkNotificationRead(ctx context.Context, id uint64) (*dto.NotificationDTO, error) {
	return nil, nil
}

func newBoard(t *testing.T, requests ...dto.MaintenanceRequestDTO) (*Controller, *recordingAPI) {
	t.Helper()
	api := &recordingAPI{requests: requests}
	st := store.New(api, zap.NewNop())
	st.Load(context.Background())
	return NewController(st, zap.NewNop()), api
}

func card(id uint64, st string) dto.MaintenanceRequestDTO {
	return dto.MaintenanceRequestDTO{ID: id, Subject: "card", Status: st}
}

func TestColumnsFixedOrder(t *testing.T) {
	ctrl, _ := newBoard(t,
		card(1, status.New),
		card(2, status.Scrap),
	)

	columns := ctrl.Columns()
	require.Len(t, columns, 4)
	assert.Equal(t, status.DisplayNew, columns[0].ID)
	assert.Equal(t, status.DisplayInProgress, columns[1].ID)
	assert.Equal(t, status.DisplayRepaired, columns[2].ID)
	assert.Equal(t, status.DisplayScrap, columns[3].ID)

	assert.Len(t, columns[0].Cards, 1)
	assert.Empty(t, columns[1].Cards)
	assert.Len(t, columns[3].Cards, 1)
}

func TestDropOnColumnID(t *testing.T) {
	ctrl, api := newBoard(t, card(1, status.New))

	ctrl.DragStart(1)
	require.NoError(t, ctrl.Drop(context.Background(), status.DisplayInProgress))

	require.Equal(t, []uint64{1}, api.updateCalls)
	assert.Equal(t, status.InProgress, api.lastFields["status"])
}

func TestDropOnCardInOtherColumnDoesExactlyOneUpdate(t *testing.T) {
	ctrl, api := newBoard(t,
		card(1, status.New),
		card(2, status.InProgress),
	)

	ctrl.DragStart(1)
	require.NoError(t, ctrl.Drop(context.Background(), "2"))

	require.Equal(t, []uint64{1}, api.updateCalls)
	assert.Equal(t, status.InProgress, api.lastFields["status"])
}

func TestDropOnCardInSameColumnIsNoOp(t *testing.T) {
	ctrl, api := newBoard(t,
		card(1, status.New),
		card(2, status.New),
	)

	ctrl.DragStart(1)
	require.NoError(t, ctrl.Drop(context.Background(), "2"))
	assert.Empty(t, api.updateCalls)
}

func TestDropOnSelfIsNoOp(t *testing.T) {
	ctrl, api := newBoard(t, card(1, status.New))

	ctrl.DragStart(1)
	require.NoError(t, ctrl.Drop(context.Background(), "1"))
	assert.Empty(t, api.updateCalls)
}

func TestDropUnresolvedTargetIsNoOp(t *testing.T) {
	ctrl, api := newBoard(t, card(1, status.New))

	ctrl.DragStart(1)
	require.NoError(t, ctrl.Drop(context.Background(), "nonsense"))
	require.NoError(t, ctrl.Drop(context.Background(), "404"))
	assert.Empty(t, api.updateCalls)
}

func TestDropWithoutDragIsNoOp(t *testing.T) {
	ctrl, api := newBoard(t, card(1, status.New))

	require.NoError(t, ctrl.Drop(context.Background(), status.DisplayScrap))
	assert.Empty(t, api.updateCalls)
}

func TestDropClearsDragState(t *testing.T) {
	ctrl, _ := newBoard(t, card(1, status.New))

	ctrl.DragStart(1)
	_, dragging := ctrl.ActiveID()
	assert.True(t, dragging)

	require.NoError(t, ctrl.Drop(context.Background(), status.DisplayInProgress))
	_, dragging = ctrl.ActiveID()
	assert.False(t, dragging)
}

func TestBackwardTransitionAllowed(t *testing.T) {
	ctrl, api := newBoard(t, card(1, status.Repaired))

	ctrl.DragStart(1)
	require.NoError(t, ctrl.Drop(context.Background(), status.DisplayNew))

	require.Equal(t, []uint64{1}, api.updateCalls)
	assert.Equal(t, status.New, api.lastFields["status"])
}

func TestStartWorkOnlyFromNew(t *testing.T) {
	ctrl, api := newBoard(t,
		card(1, status.New),
		card(2, status.Repaired),
	)

	require.NoError(t, ctrl.StartWork(context.Background(), 1))
	require.Equal(t, []uint64{1}, api.updateCalls)
	assert.Equal(t, status.InProgress, api.lastFields["status"])

	require.NoError(t, ctrl.StartWork(context.Background(), 2))
	assert.Equal(t, []uint64{1}, api.updateCalls)
}

func TestCompleteOnlyFromInProgress(t *testing.T) {
	ctrl, api := newBoard(t,
		card(1, status.InProgress),
		card(2, status.New),
	)

	require.NoError(t, ctrl.Complete(context.Background(), 1, status.DisplayRepaired))
	require.Equal(t, []uint64{1}, api.updateCalls)
	assert.Equal(t, status.Repaired, api.lastFields["status"])

	require.NoError(t, ctrl.Complete(context.Background(), 2, status.DisplayScrap))
	assert.Equal(t, []uint64{1}, api.updateCalls)
}

func TestCompleteRejectsOtherOutcomes(t *testing.T) {
	ctrl, api := newBoard(t, card(1, status.InProgress))

	err := ctrl.Complete(context.Background(), 1, status.DisplayNew)
	assert.ErrorIs(t, err, status.ErrUnknown)
	assert.Empty(t, api.updateCalls)
}
