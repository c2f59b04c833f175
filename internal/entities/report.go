package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// RequestsReport is the aggregate view behind the reports endpoint.
type RequestsReport struct {
	Total        uint64            `json:"total"`
	ByStatus     map[string]uint64 `json:"by_status"`
	Overdue      uint64            `json:"overdue"`
	ByType       map[string]uint64 `json:"by_type"`
	ByTeam       []GroupCount      `json:"by_team"`
	ByDepartment []GroupCount      `json:"by_department"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

type GroupCount struct {
	Name  string `json:"name" db:"group_name"`
	Count uint64 `json:"count" db:"count"`
}

// RegisterRow is one line of the XLSX request register export.
type RegisterRow struct {
	ID             uint64
	Subject        string
	RequestType    string
	EquipmentName  null.String
	SerialNumber   null.String
	TeamName       null.String
	TechnicianName null.String
	Status         string
	ScheduledDate  null.Time
	DueDate        null.Time
	DurationHours  null.Float64
	CreatedAt      time.Time
	Overdue        bool
}
