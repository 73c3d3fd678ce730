package models

import (
	"time"

	"github.com/lib/pq"
)

// Department groups the subjects a lecturer can be placed against.
type Department struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name" validate:"required"`
	Subjects  pq.StringArray `json:"subjects" db:"subjects"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`

	LecturerCount int `json:"lecturer_count,omitempty"`
}
