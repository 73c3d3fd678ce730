package models

import "testing"

func TestNormalizeDays(t *testing.T) {
	timetable := &Timetable{
		UserID: "user-1",
		Days: map[string][]Period{
			"Monday":   {{Time: "08:00-10:00", Subject: "Databases", Room: "B12"}},
			"Saturday": {{Time: "09:00-11:00", Subject: "Networks", Room: "A1"}},
		},
	}

	timetable.NormalizeDays()

	if len(timetable.Days) != len(Weekdays) {
		t.Fatalf("expected %d day buckets, got %d", len(Weekdays), len(timetable.Days))
	}
	if _, ok := timetable.Days["Saturday"]; ok {
		t.Fatal("unknown day keys must be dropped")
	}
	if len(timetable.Days["Monday"]) != 1 {
		t.Fatalf("expected Monday periods to survive, got %v", timetable.Days["Monday"])
	}
	for _, day := range Weekdays {
		if timetable.Days[day] == nil {
			t.Fatalf("expected %s bucket to exist", day)
		}
	}
}
