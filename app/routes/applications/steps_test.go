package applications

import (
	"testing"

	"lecturer-portal/app/models"
)

func completeApplication() *models.Application {
	return &models.Application{
		FullName:      "Amara Perera",
		ContactEmail:  "amara@example.com",
		Phone:         "0771234567",
		PostalAddress: "12 Temple Road, Kandy",
		DateOfBirth:   "1990-04-12",
		Placements: []models.Placement{
			{Place: "Main Campus", DepartmentID: "dep-1", Subjects: []string{"Databases"}},
		},
		AcademicQualifications: []models.Qualification{
			{Degree: "BSc Computer Science", University: "University of Peradeniya", Date: "2012"},
		},
		WorkExperience: models.WorkExperience{
			CurrentPosition: "Senior Software Engineer",
		},
		References: []models.Referee{
			{Name: "Dr. Silva", Position: "Head of Department", Email: "silva@example.com", Phone: "0112223334", Address: "Colombo"},
			{Name: "Prof. Fernando", Position: "Dean", Email: "fernando@example.com", Phone: "0112223335", Address: "Kandy"},
		},
	}
}

func TestCompleteFormPassesEveryStep(t *testing.T) {
	app := completeApplication()
	for step := StepPersonalInfo; step <= StepReview; step++ {
		valid, err := ValidateStep(step, app)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", step, err)
		}
		if !valid {
			t.Fatalf("step %d: expected valid", step)
		}
	}
	if got := FirstInvalidStep(app); got != 0 {
		t.Fatalf("expected no invalid step, got %d", got)
	}
}

func TestPersonalInfoRequiresPlacementSubjects(t *testing.T) {
	app := completeApplication()
	app.Placements[0].Subjects = []string{}

	if ValidatePersonalInfo(app) {
		t.Fatal("placement without subjects must fail step 1")
	}

	app.Placements[0].Subjects = []string{"Databases"}
	if !ValidatePersonalInfo(app) {
		t.Fatal("adding a subject must make step 1 valid again")
	}
}

func TestPersonalInfoFieldPresence(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Application)
	}{
		{"missing name", func(a *models.Application) { a.FullName = "" }},
		{"missing email", func(a *models.Application) { a.ContactEmail = "" }},
		{"bad email", func(a *models.Application) { a.ContactEmail = "not-an-email" }},
		{"missing phone", func(a *models.Application) { a.Phone = "" }},
		{"missing address", func(a *models.Application) { a.PostalAddress = "" }},
		{"missing date of birth", func(a *models.Application) { a.DateOfBirth = "" }},
		{"no placements", func(a *models.Application) { a.Placements = nil }},
		{"placement without place", func(a *models.Application) { a.Placements[0].Place = "" }},
		{"placement without department", func(a *models.Application) { a.Placements[0].DepartmentID = "" }},
	}

	for _, tc := range cases {
		app := completeApplication()
		tc.mutate(app)
		if ValidatePersonalInfo(app) {
			t.Fatalf("%s: expected step 1 to be invalid", tc.name)
		}
	}
}

func TestQualificationsStep(t *testing.T) {
	app := completeApplication()
	app.AcademicQualifications = nil
	if ValidateQualifications(app) {
		t.Fatal("no academic qualifications must fail step 2")
	}

	app = completeApplication()
	app.ProfessionalQualifications = []models.Qualification{{Degree: "CIMA"}}
	if ValidateQualifications(app) {
		t.Fatal("incomplete professional qualification must fail step 2")
	}

	app = completeApplication()
	app.ProfessionalQualifications = []models.Qualification{
		{Degree: "CIMA", University: "CIMA Institute", Date: "2015"},
	}
	if !ValidateQualifications(app) {
		t.Fatal("complete professional qualification must pass step 2")
	}
}

func TestExperienceStep(t *testing.T) {
	app := completeApplication()
	app.WorkExperience.CurrentPosition = ""
	if ValidateExperience(app) {
		t.Fatal("missing current position must fail step 3")
	}

	app = completeApplication()
	app.WorkExperience.PastPositions = []models.WorkPosition{{Position: "Lecturer"}}
	if ValidateExperience(app) {
		t.Fatal("incomplete past position must fail step 3")
	}

	app = completeApplication()
	app.TeachingExperience = []models.TeachingExperience{
		{Institute: "NIBM", Program: "HND", Subject: "Databases", Years: "3"},
	}
	if !ValidateExperience(app) {
		t.Fatal("complete teaching experience must pass step 3")
	}
}

func TestReferencesStepRequiresTwo(t *testing.T) {
	app := completeApplication()
	app.References = app.References[:1]
	if ValidateReferences(app) {
		t.Fatal("one referee must fail step 4")
	}

	app = completeApplication()
	app.References[1].Email = "no-at-sign"
	if ValidateReferences(app) {
		t.Fatal("referee with invalid email must fail step 4")
	}
}

func TestValidateStepUnknownStep(t *testing.T) {
	if _, err := ValidateStep(0, completeApplication()); err == nil {
		t.Fatal("expected error for step 0")
	}
	if _, err := ValidateStep(6, completeApplication()); err == nil {
		t.Fatal("expected error for step 6")
	}
}

func TestPredicatesAreDeterministic(t *testing.T) {
	app := completeApplication()
	app.Placements[0].Subjects = nil

	for i := 0; i < 3; i++ {
		if ValidatePersonalInfo(app) {
			t.Fatal("predicate result changed between calls")
		}
		if !ValidateQualifications(app) {
			t.Fatal("predicate result changed between calls")
		}
	}
	if got := FirstInvalidStep(app); got != StepPersonalInfo {
		t.Fatalf("expected first invalid step %d, got %d", StepPersonalInfo, got)
	}
}
