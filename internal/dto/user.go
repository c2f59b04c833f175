package dto

import (
	"github.com/aarondl/null/v8"

	"gardgear/internal/entities"
)

type UserDTO struct {
	ID        uint64      `json:"id"`
	Username  string      `json:"username"`
	FullName  string      `json:"full_name"`
	Role      string      `json:"role"`
	Team      null.Uint64 `json:"team"`
	TeamName  null.String `json:"team_name"`
	AvatarURL null.String `json:"avatar_url"`
}

func UserFromEntity(u entities.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName(),
		Role:      u.Role,
		Team:      u.TeamID,
		TeamName:  u.TeamName,
		AvatarURL: u.AvatarURL,
	}
}

func UsersFromEntities(users []entities.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromEntity(u))
	}
	return out
}
