package entities

import "github.com/aarondl/null/v8"

// Roles a user account can hold.
const (
	RoleUser       = "user"
	RoleTechnician = "technician"
	RoleManager    = "manager"
)

type User struct {
	ID        uint64      `json:"id"`
	Username  string      `json:"username"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	TeamID    null.Uint64 `json:"team_id"`
	AvatarURL null.String `json:"avatar_url"`

	// Joined column, not part of the users table.
	TeamName null.String `json:"team_name" db:"-"`
}

// FullName mirrors the original profile serializer: first and last name
// when set, username otherwise.
func (u User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}
