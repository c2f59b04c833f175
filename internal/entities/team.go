package entities

type MaintenanceTeam struct {
	ID       uint64 `json:"id"`
	TeamName string `json:"team_name"`
}
