package store

import (
	"time"

	"gardgear/internal/dto"
	"gardgear/internal/entities"
	"gardgear/pkg/status"
)

// RequestsByStatus returns the requests in the given display-form column.
// Unknown statuses are rejected rather than matched loosely.
func (s *Store) RequestsByStatus(displayStatus string) ([]dto.MaintenanceRequestDTO, error) {
	storage, err := status.ToStorage(displayStatus)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []dto.MaintenanceRequestDTO
	for _, r := range s.requests {
		if r.Status == storage {
			out = append(out, r)
		}
	}
	return out, nil
}

// RequestsByDate returns the requests scheduled on the given calendar day.
func (s *Store) RequestsByDate(day time.Time) []dto.MaintenanceRequestDTO {
	wire := day.Format(entities.WireDate)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []dto.MaintenanceRequestDTO
	for _, r := range s.requests {
		if r.ScheduledDate.Valid && r.ScheduledDate.String == wire {
			out = append(out, r)
		}
	}
	return out
}

// OpenRequestsForEquipment returns non-terminal requests for one piece
// of equipment.
func (s *Store) OpenRequestsForEquipment(equipmentID uint64) []dto.MaintenanceRequestDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []dto.MaintenanceRequestDTO
	for _, r := range s.requests {
		if r.Equipment == equipmentID && !status.IsTerminal(r.Status) {
			out = append(out, r)
		}
	}
	return out
}

// IsOverdue reports whether a request's due date has passed. Terminal
// requests and requests without a due date are never overdue; otherwise
// the due date at local midnight must be strictly before today at local
// midnight.
func IsOverdue(r dto.MaintenanceRequestDTO, now time.Time) bool {
	if status.IsTerminal(r.Status) || !r.DueDate.Valid {
		return false
	}
	due, err := entities.ParseWireDate(r.DueDate.String)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// Counts is the status breakdown rendered by the stats views.
type Counts struct {
	Total      int
	New        int
	InProgress int
	Repaired   int
	Scrap      int
	Overdue    int
}

// StatusCounts recomputes the breakdown on every call. Collections are
// small enough that memoization would buy nothing.
func (s *Store) StatusCounts() Counts {
	now := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	var c Counts
	for _, r := range s.requests {
		c.Total++
		switch r.Status {
		case status.New:
			c.New++
		case status.InProgress:
			c.InProgress++
		case status.Repaired:
			c.Repaired++
		case status.Scrap:
			c.Scrap++
		}
		if IsOverdue(r, now) {
			c.Overdue++
		}
	}
	return c
}

// UnreadNotifications returns the notifications not yet marked read.
func (s *Store) UnreadNotifications() []dto.NotificationDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []dto.NotificationDTO
	for _, n := range s.notifications {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out
}
