package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"lecturer-portal/app/models"
	"lecturer-portal/app/workflow"

	"github.com/google/uuid"
)

// ApplicationStore adapts the applications table to the workflow package.
type ApplicationStore struct {
	DB *sql.DB
}

func NewApplicationStore(db *sql.DB) *ApplicationStore {
	return &ApplicationStore{DB: db}
}

const applicationColumns = `id, full_name, contact_email, phone, postal_address, date_of_birth,
	placements, academic_qualifications, professional_qualifications, other_qualifications,
	work_experience, teaching_experience, referees, status, feedback,
	interview_details, approved_details, marks_details,
	authenticated_submission, applicant_user_id, submitted_at, updated_at`

func scanApplication(row interface{ Scan(...interface{}) error }) (*models.Application, error) {
	app := &models.Application{}
	var placements, academic, professional, workExp, teaching, referees []byte
	var interview, approved, marks []byte

	err := row.Scan(
		&app.ID, &app.FullName, &app.ContactEmail, &app.Phone, &app.PostalAddress, &app.DateOfBirth,
		&placements, &academic, &professional, &app.OtherQualifications,
		&workExp, &teaching, &referees, &app.Status, &app.Feedback,
		&interview, &approved, &marks,
		&app.AuthenticatedSubmission, &app.ApplicantUserID, &app.SubmittedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	_ = json.Unmarshal(placements, &app.Placements)
	_ = json.Unmarshal(academic, &app.AcademicQualifications)
	_ = json.Unmarshal(professional, &app.ProfessionalQualifications)
	_ = json.Unmarshal(workExp, &app.WorkExperience)
	_ = json.Unmarshal(teaching, &app.TeachingExperience)
	_ = json.Unmarshal(referees, &app.References)
	if interview != nil {
		app.InterviewDetails = &models.InterviewDetails{}
		_ = json.Unmarshal(interview, app.InterviewDetails)
	}
	if approved != nil {
		app.ApprovedDetails = &models.ApprovedDetails{}
		_ = json.Unmarshal(approved, app.ApprovedDetails)
	}
	if marks != nil {
		app.MarksDetails = &models.MarksDetails{}
		_ = json.Unmarshal(marks, app.MarksDetails)
	}
	return app, nil
}

// prepareForSubmission stamps the server-controlled fields. Whatever id,
// status or timestamps the caller set are discarded: every application gets a
// fresh id and starts pending.
func prepareForSubmission(app *models.Application) {
	app.ID = uuid.New().String()
	app.Status = string(workflow.StatusPending)
	now := time.Now()
	app.SubmittedAt = now
	app.UpdatedAt = now
}

// CreateApplication inserts a new submission.
func CreateApplication(db *sql.DB, app *models.Application) error {
	prepareForSubmission(app)

	placements, _ := json.Marshal(app.Placements)
	academic, _ := json.Marshal(app.AcademicQualifications)
	professional, _ := json.Marshal(app.ProfessionalQualifications)
	workExp, _ := json.Marshal(app.WorkExperience)
	teaching, _ := json.Marshal(app.TeachingExperience)
	referees, _ := json.Marshal(app.References)

	query := `INSERT INTO applications (id, full_name, contact_email, phone, postal_address, date_of_birth,
			  placements, academic_qualifications, professional_qualifications, other_qualifications,
			  work_experience, teaching_experience, referees, status, feedback,
			  authenticated_submission, applicant_user_id, submitted_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, '', $15, $16, $17, $18)`

	_, err := db.Exec(query, app.ID, app.FullName, app.ContactEmail, app.Phone,
		app.PostalAddress, app.DateOfBirth, placements, academic, professional,
		app.OtherQualifications, workExp, teaching, referees, app.Status,
		app.AuthenticatedSubmission, app.ApplicantUserID, app.SubmittedAt, app.UpdatedAt)
	return err
}

func GetApplicationByID(db *sql.DB, id string) (*models.Application, error) {
	row := db.QueryRow(`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, workflow.ErrNotFound
	}
	return app, err
}

func GetApplicationsByEmail(db *sql.DB, email string) ([]*models.Application, error) {
	rows, err := db.Query(`SELECT `+applicationColumns+` FROM applications WHERE contact_email = $1 ORDER BY submitted_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func GetAllApplications(db *sql.DB, status string) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY submitted_at DESC`
	args := []interface{}{}
	if status != "" {
		query = `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 ORDER BY submitted_at DESC`
		args = append(args, status)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows *sql.Rows) ([]*models.Application, error) {
	applications := make([]*models.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			continue
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateApplication replaces the applicant-editable core fields. Callers must
// have checked ownership and that the status is still pending.
func UpdateApplication(db *sql.DB, app *models.Application) error {
	placements, _ := json.Marshal(app.Placements)
	academic, _ := json.Marshal(app.AcademicQualifications)
	professional, _ := json.Marshal(app.ProfessionalQualifications)
	workExp, _ := json.Marshal(app.WorkExperience)
	teaching, _ := json.Marshal(app.TeachingExperience)
	referees, _ := json.Marshal(app.References)

	query := `UPDATE applications SET full_name = $1, phone = $2, postal_address = $3, date_of_birth = $4,
			  placements = $5, academic_qualifications = $6, professional_qualifications = $7,
			  other_qualifications = $8, work_experience = $9, teaching_experience = $10,
			  referees = $11, updated_at = NOW()
			  WHERE id = $12`
	_, err := db.Exec(query, app.FullName, app.Phone, app.PostalAddress, app.DateOfBirth,
		placements, academic, professional, app.OtherQualifications, workExp, teaching,
		referees, app.ID)
	return err
}

// StalePendingApplications lists applications still pending after the cutoff.
func StalePendingApplications(db *sql.DB, before time.Time) ([]*models.Application, error) {
	rows, err := db.Query(`SELECT `+applicationColumns+` FROM applications WHERE status = $1 AND submitted_at < $2 ORDER BY submitted_at`,
		string(workflow.StatusPending), before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func CountApplicationsByStatus(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(`SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err == nil {
			counts[status] = count
		}
	}
	return counts, nil
}

func (s *ApplicationStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, workflow.ErrNotFound
	}
	return app, err
}

// ApplyStatusUpdate writes the status and whichever detail block the
// transition carries. Blocks left nil and empty feedback keep their stored
// values, so earlier detail blocks are never cleared.
func (s *ApplicationStore) ApplyStatusUpdate(ctx context.Context, id string, upd workflow.StatusUpdate) (*models.Application, error) {
	var interview, approved, marks []byte
	if upd.Interview != nil {
		interview, _ = json.Marshal(upd.Interview)
	}
	if upd.Approved != nil {
		approved, _ = json.Marshal(upd.Approved)
	}
	if upd.Marks != nil {
		marks, _ = json.Marshal(upd.Marks)
	}

	query := `UPDATE applications SET status = $1,
			  feedback = CASE WHEN $2 = '' THEN feedback ELSE $2 END,
			  interview_details = COALESCE($3, interview_details),
			  approved_details = COALESCE($4, approved_details),
			  marks_details = COALESCE($5, marks_details),
			  updated_at = NOW()
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query, string(upd.Status), upd.Feedback, interview, approved, marks, id)
	if err != nil {
		return nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, workflow.ErrNotFound
	}
	return s.GetApplication(ctx, id)
}
