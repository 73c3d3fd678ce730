package models

import (
	"time"

	"github.com/lib/pq"
)

// Role values stored on users.role
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	ID           string         `json:"id" db:"id"`
	Name         string         `json:"name" db:"name" validate:"required"`
	Email        string         `json:"email" db:"email" validate:"required,email"`
	Password     string         `json:"-" db:"password"`
	Role         string         `json:"role" db:"role"`
	DepartmentID *string        `json:"department_id,omitempty" db:"department_id"`
	Subjects     pq.StringArray `json:"subjects,omitempty" db:"subjects"`
	HourlyRate   *float64       `json:"hourly_rate,omitempty" db:"hourly_rate"`
	IsActive     bool           `json:"is_active" db:"is_active"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`

	// Populated on reads that join departments
	DepartmentName *string `json:"department_name,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
