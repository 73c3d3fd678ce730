package database

import (
	"database/sql"

	"lecturer-portal/app/models"

	"github.com/google/uuid"
)

func CreateWorkLog(db *sql.DB, workLog *models.WorkLog) error {
	workLog.ID = uuid.New().String()
	query := `INSERT INTO work_logs (id, user_id, date, subject, hours, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING created_at, updated_at`
	return db.QueryRow(query, workLog.ID, workLog.UserID, workLog.Date,
		workLog.Subject, workLog.Hours, workLog.Description).Scan(
		&workLog.CreatedAt, &workLog.UpdatedAt,
	)
}

func GetWorkLogByID(db *sql.DB, id string) (*models.WorkLog, error) {
	workLog := &models.WorkLog{}
	query := `SELECT id, user_id, date, subject, hours, description, created_at, updated_at
			  FROM work_logs WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&workLog.ID, &workLog.UserID, &workLog.Date, &workLog.Subject,
		&workLog.Hours, &workLog.Description, &workLog.CreatedAt, &workLog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return workLog, nil
}

func GetWorkLogsByUser(db *sql.DB, userID string) ([]*models.WorkLog, error) {
	query := `SELECT id, user_id, date, subject, hours, description, created_at, updated_at
			  FROM work_logs WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workLogs := make([]*models.WorkLog, 0)
	for rows.Next() {
		workLog := &models.WorkLog{}
		if err := rows.Scan(
			&workLog.ID, &workLog.UserID, &workLog.Date, &workLog.Subject,
			&workLog.Hours, &workLog.Description, &workLog.CreatedAt, &workLog.UpdatedAt,
		); err != nil {
			continue
		}
		workLogs = append(workLogs, workLog)
	}
	return workLogs, nil
}

func UpdateWorkLog(db *sql.DB, workLog *models.WorkLog) error {
	query := `UPDATE work_logs SET date = $1, subject = $2, hours = $3, description = $4, updated_at = NOW()
			  WHERE id = $5`
	_, err := db.Exec(query, workLog.Date, workLog.Subject, workLog.Hours, workLog.Description, workLog.ID)
	return err
}

func DeleteWorkLog(db *sql.DB, id string) error {
	query := `DELETE FROM work_logs WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// GetWorkLogSummary aggregates logged hours per lecturer, with the payable
// amount where an hourly rate is set.
func GetWorkLogSummary(db *sql.DB) ([]*models.WorkLogSummary, error) {
	query := `SELECT u.id, u.name, u.email, u.hourly_rate,
			  COALESCE(SUM(w.hours), 0) as total_hours, COUNT(w.id) as entries
			  FROM users u
			  LEFT JOIN work_logs w ON w.user_id = u.id
			  WHERE u.role = $1 AND u.is_active = true
			  GROUP BY u.id, u.name, u.email, u.hourly_rate
			  ORDER BY u.name`

	rows, err := db.Query(query, models.RoleUser)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]*models.WorkLogSummary, 0)
	for rows.Next() {
		summary := &models.WorkLogSummary{}
		if err := rows.Scan(&summary.UserID, &summary.Name, &summary.Email,
			&summary.HourlyRate, &summary.TotalHours, &summary.Entries); err != nil {
			continue
		}
		if summary.HourlyRate != nil {
			amount := summary.TotalHours * *summary.HourlyRate
			summary.Amount = &amount
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
