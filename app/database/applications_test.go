package database

import (
	"errors"
	"testing"
	"time"

	"lecturer-portal/app/models"
	"lecturer-portal/app/workflow"

	"github.com/lib/pq"
)

func TestPrepareForSubmissionForcesPending(t *testing.T) {
	submittedStatuses := []string{"", "approved", "interview", "assign marks", "rejected", "garbage"}

	for _, status := range submittedStatuses {
		app := &models.Application{
			ID:           "client-chosen-id",
			FullName:     "Amara Perera",
			ContactEmail: "amara@example.com",
			Status:       status,
			SubmittedAt:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		}

		prepareForSubmission(app)

		if app.Status != string(workflow.StatusPending) {
			t.Fatalf("submitted status %q: expected pending, got %q", status, app.Status)
		}
		if app.ID == "" || app.ID == "client-chosen-id" {
			t.Fatalf("submitted status %q: expected a fresh server-side id, got %q", status, app.ID)
		}
		if app.SubmittedAt.Year() == 2020 {
			t.Fatalf("submitted status %q: client-supplied submitted_at survived", status)
		}
		if !app.UpdatedAt.Equal(app.SubmittedAt) {
			t.Fatalf("submitted status %q: expected updated_at == submitted_at on creation", status)
		}
	}
}

func TestPrepareForSubmissionGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		app := &models.Application{}
		prepareForSubmission(app)
		if seen[app.ID] {
			t.Fatalf("duplicate id generated: %s", app.ID)
		}
		seen[app.ID] = true
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("expected code 23505 to be a unique violation")
	}
	if IsUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatal("plain errors are not unique violations")
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil error is not a unique violation")
	}
}
