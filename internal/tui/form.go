package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"gardgear/internal/dto"
	"gardgear/internal/entities"
	"gardgear/internal/store"
)

// requestFormData collects the raw string inputs of the create-request
// form before they are turned into a CreateRequestDTO.
type requestFormData struct {
	Subject       string
	RequestType   string
	TeamID        string
	EquipmentID   string
	TechnicianID  string
	ScheduledDate string
	DueDate       string
	DurationHours string
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := entities.ParseWireDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

// newRequestForm builds the create-request form over the current teams,
// equipment and technicians.
func newRequestForm(data *requestFormData, teams []dto.TeamDTO, equipment []dto.EquipmentDTO, technicians []dto.UserDTO) *huh.Form {
	teamOptions := make([]huh.Option[string], 0, len(teams))
	for _, t := range teams {
		teamOptions = append(teamOptions, huh.NewOption(t.TeamName, strconv.FormatUint(t.ID, 10)))
	}

	equipmentOptions := make([]huh.Option[string], 0, len(equipment))
	for _, e := range equipment {
		label := fmt.Sprintf("%s (%s)", e.Name, e.SerialNumber)
		equipmentOptions = append(equipmentOptions, huh.NewOption(label, strconv.FormatUint(e.ID, 10)))
	}

	technicianOptions := []huh.Option[string]{huh.NewOption("unassigned", "")}
	for _, u := range technicians {
		technicianOptions = append(technicianOptions, huh.NewOption(u.FullName, strconv.FormatUint(u.ID, 10)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&data.Subject).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("subject is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Corrective", entities.TypeCorrective),
					huh.NewOption("Preventive", entities.TypePreventive),
				).
				Value(&data.RequestType),
			huh.NewSelect[string]().
				Title("Team").
				Options(teamOptions...).
				Value(&data.TeamID),
			huh.NewSelect[string]().
				Title("Equipment").
				Options(equipmentOptions...).
				Value(&data.EquipmentID),
			huh.NewSelect[string]().
				Title("Technician").
				Options(technicianOptions...).
				Value(&data.TechnicianID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Scheduled date (YYYY-MM-DD, blank for none)").
				Value(&data.ScheduledDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank for none)").
				Value(&data.DueDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Duration hours (blank for none)").
				Value(&data.DurationHours).
				Validate(validateOptionalFloat),
		),
	).WithShowHelp(false)
}

// RunCreateForm runs the create-request form stand-alone (outside the
// board) and submits the result through the store, so the create-path
// error surfaces to the caller.
func RunCreateForm(ctx context.Context, st *store.Store) (*dto.MaintenanceRequestDTO, error) {
	data := &requestFormData{}
	form := newRequestForm(data, st.Teams(), st.Equipment(), st.Technicians())
	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	payload, err := data.toPayload()
	if err != nil {
		return nil, err
	}
	return st.CreateRequest(ctx, payload)
}

// toPayload converts validated form inputs into the create DTO.
func (d *requestFormData) toPayload() (dto.CreateRequestDTO, error) {
	payload := dto.CreateRequestDTO{
		Subject:     strings.TrimSpace(d.Subject),
		RequestType: d.RequestType,
	}

	teamID, err := strconv.ParseUint(d.TeamID, 10, 64)
	if err != nil {
		return payload, fmt.Errorf("team is required")
	}
	payload.Team = teamID

	equipmentID, err := strconv.ParseUint(d.EquipmentID, 10, 64)
	if err != nil {
		return payload, fmt.Errorf("equipment is required")
	}
	payload.Equipment = equipmentID

	if d.TechnicianID != "" {
		technicianID, err := strconv.ParseUint(d.TechnicianID, 10, 64)
		if err != nil {
			return payload, fmt.Errorf("invalid technician")
		}
		payload.Technician = &technicianID
	}
	if s := strings.TrimSpace(d.ScheduledDate); s != "" {
		payload.ScheduledDate = &s
	}
	if s := strings.TrimSpace(d.DueDate); s != "" {
		payload.DueDate = &s
	}
	if s := strings.TrimSpace(d.DurationHours); s != "" {
		hours, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return payload, fmt.Errorf("invalid duration")
		}
		payload.DurationHours = &hours
	}
	return payload, nil
}
