package database

import (
	"database/sql"
	"encoding/json"

	"lecturer-portal/app/models"
)

// GetTimetable loads one lecturer's timetable. A lecturer without a saved
// timetable gets an empty five-day record rather than an error.
func GetTimetable(db *sql.DB, userID string) (*models.Timetable, error) {
	timetable := &models.Timetable{UserID: userID}
	var days []byte

	query := `SELECT days, updated_at FROM timetables WHERE user_id = $1`
	err := db.QueryRow(query, userID).Scan(&days, &timetable.UpdatedAt)
	if err == sql.ErrNoRows {
		timetable.NormalizeDays()
		return timetable, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(days, &timetable.Days); err != nil {
		return nil, err
	}
	timetable.NormalizeDays()
	return timetable, nil
}

// SaveTimetable overwrites the whole record on each admin save.
func SaveTimetable(db *sql.DB, timetable *models.Timetable) error {
	timetable.NormalizeDays()
	days, err := json.Marshal(timetable.Days)
	if err != nil {
		return err
	}

	query := `INSERT INTO timetables (user_id, days, updated_at) VALUES ($1, $2, NOW())
			  ON CONFLICT (user_id) DO UPDATE SET days = $2, updated_at = NOW()`
	_, err = db.Exec(query, timetable.UserID, days)
	return err
}
