package models

import "time"

// Period is a single lesson slot in a weekday bucket.
type Period struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
}

// Weekdays fixes the bucket order timetables are stored and rendered in.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Timetable is one lecturer's weekly schedule. The whole record is replaced
// on each admin save; lecturers only read their own.
type Timetable struct {
	UserID    string              `json:"user_id" db:"user_id"`
	Days      map[string][]Period `json:"days"`
	UpdatedAt time.Time           `json:"updated_at" db:"updated_at"`
}

// NormalizeDays drops unknown day keys and guarantees all five weekday
// buckets exist so rendering never has to nil-check.
func (t *Timetable) NormalizeDays() {
	normalized := make(map[string][]Period, len(Weekdays))
	for _, day := range Weekdays {
		if periods, ok := t.Days[day]; ok && periods != nil {
			normalized[day] = periods
		} else {
			normalized[day] = []Period{}
		}
	}
	t.Days = normalized
}
