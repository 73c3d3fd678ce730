package applications

import (
	"fmt"
	"strings"

	"lecturer-portal/app/models"
)

// Wizard step numbers. The applicant-facing form walks these in order and
// may only move forward when the current step's predicate passes; the server
// re-checks all of them on final submission.
const (
	StepPersonalInfo   = 1
	StepQualifications = 2
	StepExperience     = 3
	StepReferences     = 4
	StepReview         = 5
)

// ValidatePersonalInfo requires the identity fields and at least one
// placement with a place, a department and one or more subjects.
func ValidatePersonalInfo(app *models.Application) bool {
	if app.FullName == "" || app.ContactEmail == "" || app.Phone == "" ||
		app.PostalAddress == "" || app.DateOfBirth == "" {
		return false
	}
	if !isValidEmail(app.ContactEmail) {
		return false
	}
	if len(app.Placements) == 0 {
		return false
	}
	for _, placement := range app.Placements {
		if placement.Place == "" || placement.DepartmentID == "" || len(placement.Subjects) == 0 {
			return false
		}
	}
	return true
}

// ValidateQualifications requires at least one complete academic
// qualification; professional rows are optional but must be complete when
// present.
func ValidateQualifications(app *models.Application) bool {
	if len(app.AcademicQualifications) == 0 {
		return false
	}
	for _, q := range app.AcademicQualifications {
		if q.Degree == "" || q.University == "" || q.Date == "" {
			return false
		}
	}
	for _, q := range app.ProfessionalQualifications {
		if q.Degree == "" || q.University == "" || q.Date == "" {
			return false
		}
	}
	return true
}

// ValidateExperience requires a current position; past and teaching rows are
// optional but must be complete when present.
func ValidateExperience(app *models.Application) bool {
	if app.WorkExperience.CurrentPosition == "" {
		return false
	}
	for _, p := range app.WorkExperience.PastPositions {
		if p.Position == "" || p.From == "" || p.To == "" {
			return false
		}
	}
	for _, t := range app.TeachingExperience {
		if t.Institute == "" || t.Program == "" || t.Subject == "" {
			return false
		}
	}
	return true
}

// ValidateReferences requires two or more fully filled referees.
func ValidateReferences(app *models.Application) bool {
	if len(app.References) < 2 {
		return false
	}
	for _, r := range app.References {
		if r.Name == "" || r.Position == "" || r.Phone == "" || r.Address == "" {
			return false
		}
		if !isValidEmail(r.Email) {
			return false
		}
	}
	return true
}

// ValidateStep reports whether one wizard step is complete. The review step
// is always valid; it only triggers submission.
func ValidateStep(step int, app *models.Application) (bool, error) {
	switch step {
	case StepPersonalInfo:
		return ValidatePersonalInfo(app), nil
	case StepQualifications:
		return ValidateQualifications(app), nil
	case StepExperience:
		return ValidateExperience(app), nil
	case StepReferences:
		return ValidateReferences(app), nil
	case StepReview:
		return true, nil
	default:
		return false, fmt.Errorf("unknown step: %d", step)
	}
}

// FirstInvalidStep returns the earliest failing step, or 0 when the whole
// form is complete.
func FirstInvalidStep(app *models.Application) int {
	for step := StepPersonalInfo; step <= StepReview; step++ {
		if valid, _ := ValidateStep(step, app); !valid {
			return step
		}
	}
	return 0
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
