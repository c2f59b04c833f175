package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Request types.
const (
	TypeCorrective = "Corrective"
	TypePreventive = "Preventive"
)

type MaintenanceRequest struct {
	ID            uint64       `json:"id"`
	Subject       string       `json:"subject"`
	RequestType   string       `json:"request_type"`
	EquipmentID   uint64       `json:"equipment_id"`
	TeamID        uint64       `json:"team_id"`
	TechnicianID  null.Uint64  `json:"technician_id"`
	Status        string       `json:"status"`
	ScheduledDate null.Time    `json:"scheduled_date"`
	DurationHours null.Float64 `json:"duration_hours"`
	DueDate       null.Time    `json:"due_date"`
	CreatedAt     time.Time    `json:"created_at"`

	// Joined columns for list/detail serialization.
	EquipmentName   null.String `json:"equipment_name" db:"-"`
	EquipmentSerial null.String `json:"equipment_serial" db:"-"`
	TeamName        null.String `json:"team_name" db:"-"`
	TechnicianName  null.String `json:"technician_name" db:"-"`
}
