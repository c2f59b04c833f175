package dto

import "gardgear/internal/entities"

type CreateTeamDTO struct {
	TeamName string `json:"team_name" validate:"required,max=100"`
}

type TeamDTO struct {
	ID       uint64 `json:"id"`
	TeamName string `json:"team_name"`
}

func TeamFromEntity(team entities.MaintenanceTeam) TeamDTO {
	return TeamDTO{ID: team.ID, TeamName: team.TeamName}
}

func TeamsFromEntities(teams []entities.MaintenanceTeam) []TeamDTO {
	out := make([]TeamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamFromEntity(t))
	}
	return out
}
