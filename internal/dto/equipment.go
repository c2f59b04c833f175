package dto

import (
	"github.com/aarondl/null/v8"

	"gardgear/internal/entities"
)

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required,max=100"`
	SerialNumber string  `json:"serial_number" validate:"required,max=100"`
	Department   *string `json:"department" validate:"omitempty,max=50"`
	OwnerName    *string `json:"owner_name" validate:"omitempty,max=100"`
	Location     *string `json:"location" validate:"omitempty,max=100"`
	PurchaseDate *string `json:"purchase_date" validate:"omitempty,date_yyyymmdd"`
	WarrantyEnd  *string `json:"warranty_end" validate:"omitempty,date_yyyymmdd"`
	Team         uint64  `json:"maintenance_team" validate:"required,gt=0"`
	IsActive     *bool   `json:"is_active"`
}

type UpdateEquipmentDTO struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=100"`
	Department   *string `json:"department" validate:"omitempty,max=50"`
	OwnerName    *string `json:"owner_name" validate:"omitempty,max=100"`
	Location     *string `json:"location" validate:"omitempty,max=100"`
	PurchaseDate *string `json:"purchase_date" validate:"omitempty,date_yyyymmdd"`
	WarrantyEnd  *string `json:"warranty_end" validate:"omitempty,date_yyyymmdd"`
	Team         *uint64 `json:"maintenance_team" validate:"omitempty,gt=0"`
	IsActive     *bool   `json:"is_active"`
}

type EquipmentDTO struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	Department   null.String `json:"department"`
	OwnerName    null.String `json:"owner_name"`
	Location     null.String `json:"location"`
	PurchaseDate null.String `json:"purchase_date"`
	WarrantyEnd  null.String `json:"warranty_end"`
	Team         uint64      `json:"maintenance_team"`
	TeamName     null.String `json:"maintenance_team_name"`
	IsActive     bool        `json:"is_active"`
}

func EquipmentFromEntity(e entities.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:           e.ID,
		Name:         e.Name,
		SerialNumber: e.SerialNumber,
		Department:   e.Department,
		OwnerName:    e.OwnerName,
		Location:     e.Location,
		PurchaseDate: entities.FormatDate(e.PurchaseDate),
		WarrantyEnd:  entities.FormatDate(e.WarrantyEnd),
		Team:         e.TeamID,
		TeamName:     e.TeamName,
		IsActive:     e.IsActive,
	}
}

func EquipmentFromEntities(items []entities.Equipment) []EquipmentDTO {
	out := make([]EquipmentDTO, 0, len(items))
	for _, e := range items {
		out = append(out, EquipmentFromEntity(e))
	}
	return out
}
