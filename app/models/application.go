package models

import "time"

// Placement is a requested assignment location paired with a department and a
// subset of that department's subjects.
type Placement struct {
	Place        string   `json:"place"`
	DepartmentID string   `json:"department_id"`
	Subjects     []string `json:"subjects"`
}

// Qualification is one degree/university/date row on the qualifications grid.
type Qualification struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Date       string `json:"date"`
}

// WorkPosition is one row of past work experience.
type WorkPosition struct {
	Position string `json:"position"`
	From     string `json:"from"`
	To       string `json:"to"`
	Years    string `json:"years"`
}

type WorkExperience struct {
	CurrentPosition string         `json:"current_position"`
	PastPositions   []WorkPosition `json:"past_positions,omitempty"`
}

type TeachingExperience struct {
	Institute string `json:"institute"`
	Program   string `json:"program"`
	Subject   string `json:"subject"`
	Years     string `json:"years"`
}

type Referee struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// InterviewDetails is written when an application moves to the interview status.
type InterviewDetails struct {
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Place       string    `json:"place"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ApprovedDetails carries the reporting instructions sent on approval.
type ApprovedDetails struct {
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Place      string    `json:"place"`
	ApprovedAt time.Time `json:"approved_at"`
}

// MarksDetails stores the interview mark as a fixed two-decimal string.
type MarksDetails struct {
	Mark       string    `json:"mark"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Application is one candidate's submission. Core fields are editable only
// while the status is still pending; detail blocks accumulate across status
// changes and are never cleared by later transitions.
type Application struct {
	ID            string `json:"id" db:"id"`
	FullName      string `json:"full_name" db:"full_name" validate:"required"`
	ContactEmail  string `json:"contact_email" db:"contact_email" validate:"required,email"`
	Phone         string `json:"phone" db:"phone"`
	PostalAddress string `json:"postal_address" db:"postal_address"`
	DateOfBirth   string `json:"date_of_birth" db:"date_of_birth"`

	Placements                 []Placement          `json:"placements"`
	AcademicQualifications     []Qualification      `json:"academic_qualifications"`
	ProfessionalQualifications []Qualification      `json:"professional_qualifications,omitempty"`
	OtherQualifications        string               `json:"other_qualifications,omitempty" db:"other_qualifications"`
	WorkExperience             WorkExperience       `json:"work_experience"`
	TeachingExperience         []TeachingExperience `json:"teaching_experience,omitempty"`
	References                 []Referee            `json:"references"`

	Status   string `json:"status" db:"status"`
	Feedback string `json:"feedback,omitempty" db:"feedback"`

	InterviewDetails *InterviewDetails `json:"interview_details,omitempty"`
	ApprovedDetails  *ApprovedDetails  `json:"approved_details,omitempty"`
	MarksDetails     *MarksDetails     `json:"marks_details,omitempty"`

	AuthenticatedSubmission bool      `json:"authenticated_submission" db:"authenticated_submission"`
	ApplicantUserID         *string   `json:"applicant_user_id,omitempty" db:"applicant_user_id"`
	SubmittedAt             time.Time `json:"submitted_at" db:"submitted_at"`
	UpdatedAt               time.Time `json:"updated_at" db:"updated_at"`
}
