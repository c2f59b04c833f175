package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"gardgear/internal/entities"
)

type CreateRequestDTO struct {
	Subject       string   `json:"subject" validate:"required,max=255"`
	RequestType   string   `json:"request_type" validate:"required,oneof=Corrective Preventive"`
	Equipment     uint64   `json:"equipment" validate:"required,gt=0"`
	Team          uint64   `json:"team" validate:"required,gt=0"`
	Technician    *uint64  `json:"technician" validate:"omitempty,gt=0"`
	Status        *string  `json:"status" validate:"omitempty,storage_status"`
	ScheduledDate *string  `json:"scheduled_date" validate:"omitempty,date_yyyymmdd"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,gt=0"`
	DueDate       *string  `json:"due_date" validate:"omitempty,date_yyyymmdd"`
}

// UpdateRequestDTO is a PATCH body. Which fields were actually sent is
// tracked separately (utils.PresentFields), so an explicit null can clear
// a column while an absent field leaves it alone.
type UpdateRequestDTO struct {
	Subject       *string  `json:"subject" validate:"omitempty,max=255"`
	RequestType   *string  `json:"request_type" validate:"omitempty,oneof=Corrective Preventive"`
	Equipment     *uint64  `json:"equipment" validate:"omitempty,gt=0"`
	Team          *uint64  `json:"team" validate:"omitempty,gt=0"`
	Technician    *uint64  `json:"technician" validate:"omitempty,gt=0"`
	Status        *string  `json:"status" validate:"omitempty,storage_status"`
	ScheduledDate *string  `json:"scheduled_date" validate:"omitempty,date_yyyymmdd"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,gt=0"`
	DueDate       *string  `json:"due_date" validate:"omitempty,date_yyyymmdd"`
}

type MaintenanceRequestDTO struct {
	ID              uint64       `json:"id"`
	Subject         string       `json:"subject"`
	RequestType     string       `json:"request_type"`
	Equipment       uint64       `json:"equipment"`
	EquipmentName   null.String  `json:"equipment_name"`
	EquipmentSerial null.String  `json:"equipment_serial"`
	Team            uint64       `json:"team"`
	TeamName        null.String  `json:"team_name"`
	Technician      null.Uint64  `json:"technician"`
	TechnicianName  null.String  `json:"technician_name"`
	Status          string       `json:"status"`
	ScheduledDate   null.String  `json:"scheduled_date"`
	DurationHours   null.Float64 `json:"duration_hours"`
	DueDate         null.String  `json:"due_date"`
	CreatedAt       string       `json:"created_at"`
}

func RequestFromEntity(r entities.MaintenanceRequest) MaintenanceRequestDTO {
	return MaintenanceRequestDTO{
		ID:              r.ID,
		Subject:         r.Subject,
		RequestType:     r.RequestType,
		Equipment:       r.EquipmentID,
		EquipmentName:   r.EquipmentName,
		EquipmentSerial: r.EquipmentSerial,
		Team:            r.TeamID,
		TeamName:        r.TeamName,
		Technician:      r.TechnicianID,
		TechnicianName:  r.TechnicianName,
		Status:          r.Status,
		ScheduledDate:   entities.FormatDate(r.ScheduledDate),
		DurationHours:   r.DurationHours,
		DueDate:         entities.FormatDate(r.DueDate),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func RequestsFromEntities(items []entities.MaintenanceRequest) []MaintenanceRequestDTO {
	out := make([]MaintenanceRequestDTO, 0, len(items))
	for _, r := range items {
		out = append(out, RequestFromEntity(r))
	}
	return out
}

// RequestStatusGroup is one bucket of the by_status endpoint.
type RequestStatusGroup struct {
	Label string                  `json:"label"`
	Count int                     `json:"count"`
	Items []MaintenanceRequestDTO `json:"items"`
}
