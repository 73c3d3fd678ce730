package models

import "time"

// WorkLog is one day's worked hours reported by a lecturer.
type WorkLog struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Date        string    `json:"date" db:"date" validate:"required"`
	Subject     string    `json:"subject" db:"subject" validate:"required"`
	Hours       float64   `json:"hours" db:"hours" validate:"required,gt=0"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// WorkLogSummary aggregates one lecturer's logged hours for the admin view.
type WorkLogSummary struct {
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	TotalHours float64  `json:"total_hours"`
	Entries    int      `json:"entries"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
}
