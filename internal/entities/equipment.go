package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	Department   null.String `json:"department"`
	OwnerName    null.String `json:"owner_name"`
	Location     null.String `json:"location"`
	PurchaseDate null.Time   `json:"purchase_date"`
	WarrantyEnd  null.Time   `json:"warranty_end"`
	TeamID       uint64      `json:"maintenance_team_id"`
	IsActive     bool        `json:"is_active"`

	// Joined column.
	TeamName null.String `json:"team_name" db:"-"`
}

// WireDate is the calendar-date format used on the API wire.
const WireDate = "2006-01-02"

// FormatDate renders a nullable date in wire format, empty when unset.
func FormatDate(t null.Time) null.String {
	if !t.Valid {
		return null.String{}
	}
	return null.StringFrom(t.Time.Format(WireDate))
}

// ParseWireDate parses a wire-format date at local midnight.
func ParseWireDate(s string) (time.Time, error) {
	return time.ParseInLocation(WireDate, s, time.Local)
}
