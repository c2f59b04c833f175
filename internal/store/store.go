package store

import (
	"context"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"gardgear/internal/dto"
	"gardgear/pkg/status"
)

// API is the slice of the HTTP client the store depends on.
type API interface {
	FetchRequests(ctx context.Context, query url.Values) ([]dto.MaintenanceRequestDTO, error)
	FetchEquipment(ctx context.Context, query url.Values) ([]dto.EquipmentDTO, error)
	FetchTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FetchTechnicians(ctx context.Context, teamID uint64) ([]dto.UserDTO, error)
	FetchNotifications(ctx context.Context) ([]dto.NotificationDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.MaintenanceRequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, fields map[string]interface{}) (*dto.MaintenanceRequestDTO, error)
	DeleteRequest(ctx context.Context, id uint64) error
	MarkNotificationRead(ctx context.Context, id uint64) (*dto.NotificationDTO, error)
}

// Store is the single source of truth for all entity collections during
// a session. Every mutation is brokered through the remote API first and
// applied locally only after the call succeeds, so local state never has
// to roll back. A failed mutation leaves the local copy stale.
type Store struct {
	api    API
	logger *zap.Logger

	mu            sync.RWMutex
	requests      []dto.MaintenanceRequestDTO
	equipment     []dto.EquipmentDTO
	technicians   []dto.UserDTO
	teams         []dto.TeamDTO
	notifications []dto.NotificationDTO
	loaded        bool
}

func New(api API, logger *zap.Logger) *Store {
	return &Store{api: api, logger: logger}
}

// Load issues the five collection fetches concurrently and joins them
// before populating anything. A failed fetch is logged and leaves that
// collection empty; the store then stays in the loading state.
func (s *Store) Load(ctx context.Context) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	fail := func(name string, err error) {
		s.logger.Error("initial fetch failed", zap.String("collection", name), zap.Error(err))
		mu.Lock()
		failures++
		mu.Unlock()
	}

	var (
		requests      []dto.MaintenanceRequestDTO
		equipment     []dto.EquipmentDTO
		technicians   []dto.UserDTO
		teams         []dto.TeamDTO
		notifications []dto.NotificationDTO
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		items, err := s.api.FetchRequests(ctx, nil)
		if err != nil {
			fail("requests", err)
			return
		}
		requests = items
	}()
	go func() {
		defer wg.Done()
		items, err := s.api.FetchEquipment(ctx, url.Values{"is_active": {"true"}})
		if err != nil {
			fail("equipment", err)
			return
		}
		equipment = items
	}()
	go func() {
		defer wg.Done()
		items, err := s.api.FetchTechnicians(ctx, 0)
		if err != nil {
			fail("technicians", err)
			return
		}
		technicians = items
	}()
	go func() {
		defer wg.Done()
		items, err := s.api.FetchTeams(ctx)
		if err != nil {
			fail("teams", err)
			return
		}
		teams = items
	}()
	go func() {
		defer wg.Done()
		items, err := s.api.FetchNotifications(ctx)
		if err != nil {
			fail("notifications", err)
			return
		}
		notifications = items
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = requests
	s.equipment = equipment
	s.technicians = technicians
	s.teams = teams
	s.notifications = notifications
	s.loaded = failures == 0
}

// Loaded reports whether every startup fetch succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// UpdateRequestStatus maps the display-form status to storage form and
// patches the request remotely, then updates the local copy in place. An
// unknown status is rejected before any network traffic.
func (s *Store) UpdateRequestStatus(ctx context.Context, id uint64, displayStatus string) error {
	storage, err := status.ToStorage(displayStatus)
	if err != nil {
		s.logger.Error("refusing status update", zap.Uint64("request", id), zap.Error(err))
		return err
	}

	updated, err := s.api.UpdateRequest(ctx, id, map[string]interface{}{"status": storage})
	if err != nil {
		s.logger.Error("status update failed", zap.Uint64("request", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = updated.Status
			break
		}
	}
	return nil
}

// AssignTechnician patches the request's technician remotely, then
// updates the local assignment fields.
func (s *Store) AssignTechnician(ctx context.Context, id, technicianID uint64) error {
	updated, err := s.api.UpdateRequest(ctx, id, map[string]interface{}{"technician": technicianID})
	if err != nil {
		s.logger.Error("technician assignment failed", zap.Uint64("request", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Technician = updated.Technician
			s.requests[i].TechnicianName = updated.TechnicianName
			break
		}
	}
	return nil
}

// CreateRequest posts the payload and appends the server's entity to the
// collection. Unlike the other mutations the error matters to the
// caller: the submitting form surfaces it to the user.
func (s *Store) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	created, err := s.api.CreateRequest(ctx, payload)
	if err != nil {
		s.logger.Error("request creation failed", zap.String("subject", payload.Subject), zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, *created)
	return created, nil
}

// UpdateRequest patches arbitrary fields and replaces the local entity
// with the server's merged copy.
func (s *Store) UpdateRequest(ctx context.Context, id uint64, fields map[string]interface{}) error {
	updated, err := s.api.UpdateRequest(ctx, id, fields)
	if err != nil {
		s.logger.Error("request update failed", zap.Uint64("request", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i] = *updated
			break
		}
	}
	return nil
}

func (s *Store) DeleteRequest(ctx context.Context, id uint64) error {
	if err := s.api.DeleteRequest(ctx, id); err != nil {
		s.logger.Error("request deletion failed", zap.Uint64("request", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) MarkNotificationAsRead(ctx context.Context, id uint64) error {
	if _, err := s.api.MarkNotificationRead(ctx, id); err != nil {
		s.logger.Error("mark notification read failed", zap.Uint64("notification", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			break
		}
	}
	return nil
}

func (s *Store) Requests() []dto.MaintenanceRequestDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.MaintenanceRequestDTO(nil), s.requests...)
}

func (s *Store) Equipment() []dto.EquipmentDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.EquipmentDTO(nil), s.equipment...)
}

func (s *Store) Technicians() []dto.UserDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.UserDTO(nil), s.technicians...)
}

func (s *Store) Teams() []dto.TeamDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.TeamDTO(nil), s.teams...)
}

func (s *Store) Notifications() []dto.NotificationDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.NotificationDTO(nil), s.notifications...)
}
