package models

import (
	"time"
)

type Role string

const (
	RoleIndividual Role = "Individual"
	RoleManager    Role = "Manager"
	RoleAdmin      Role = "Admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleIndividual, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          int64      `db:"id"`
	GoogleID    string     `db:"google_id"`
	Email       string     `db:"email"`
	DisplayName string     `db:"display_name"`
	Role        Role       `db:"role"`
	ManagerID   *int64     `db:"manager_id"`
	CreatedAt   *time.Time `db:"created_at"`
}
