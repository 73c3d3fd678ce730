package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"lecturer-portal/app/models"
)

type fakeStore struct {
	mu    sync.Mutex
	apps  map[string]*models.Application
	clock time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		apps:  make(map[string]*models.Application),
		clock: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) add(app *models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[app.ID] = app
}

func (s *fakeStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneApplication(app), nil
}

func (s *fakeStore) ApplyStatusUpdate(ctx context.Context, id string, upd StatusUpdate) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, ErrNotFound
	}

	app.Status = string(upd.Status)
	if upd.Feedback != "" {
		app.Feedback = upd.Feedback
	}
	if upd.Interview != nil {
		app.InterviewDetails = upd.Interview
	}
	if upd.Approved != nil {
		app.ApprovedDetails = upd.Approved
	}
	if upd.Marks != nil {
		app.MarksDetails = upd.Marks
	}
	s.clock = s.clock.Add(time.Second)
	app.UpdatedAt = s.clock
	return cloneApplication(app), nil
}

func cloneApplication(app *models.Application) *models.Application {
	clone := *app
	if app.InterviewDetails != nil {
		details := *app.InterviewDetails
		clone.InterviewDetails = &details
	}
	if app.ApprovedDetails != nil {
		details := *app.ApprovedDetails
		clone.ApprovedDetails = &details
	}
	if app.MarksDetails != nil {
		details := *app.MarksDetails
		clone.MarksDetails = &details
	}
	return &clone
}

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []string
	calls chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan struct{}, 16)}
}

func (n *fakeNotifier) Send(to string, body string) error {
	n.mu.Lock()
	n.sent = append(n.sent, to+"\n"+body)
	n.mu.Unlock()
	n.calls <- struct{}{}
	return nil
}

func (n *fakeNotifier) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-n.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification dispatch, got none")
	}
}

func (n *fakeNotifier) sendCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func pendingApplication(id string) *models.Application {
	return &models.Application{
		ID:           id,
		FullName:     "Amara Perera",
		ContactEmail: "amara@example.com",
		Status:       string(StatusPending),
		SubmittedAt:  time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func newTestService() (*Service, *fakeStore, *fakeNotifier) {
	store := newFakeStore()
	notifier := newFakeNotifier()
	return NewService(store, notifier), store, notifier
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	service, store, _ := newTestService()
	store.add(pendingApplication("app1"))

	_, _, err := service.UpdateStatus(context.Background(), "app1", Transition{Status: Status("archived")})
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	service, _, _ := newTestService()

	_, _, err := service.UpdateStatus(context.Background(), "missing", Transition{Status: StatusRejected})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInterviewTransition(t *testing.T) {
	service, store, notifier := newTestService()
	store.add(pendingApplication("app1"))

	schedule := &SchedulePayload{Date: "2025-01-10", Time: "09:00", Place: "Room A"}
	app, warning, err := service.UpdateStatus(context.Background(), "app1", Transition{
		Status:   StatusInterview,
		Schedule: schedule,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %q", warning)
	}
	if app.Status != string(StatusInterview) {
		t.Fatalf("expected status interview, got %q", app.Status)
	}
	if app.InterviewDetails == nil {
		t.Fatal("expected interview details to be set")
	}
	if app.InterviewDetails.Date != "2025-01-10" || app.InterviewDetails.Time != "09:00" || app.InterviewDetails.Place != "Room A" {
		t.Fatalf("unexpected interview details: %+v", app.InterviewDetails)
	}
	if app.InterviewDetails.ScheduledAt.IsZero() {
		t.Fatal("expected scheduled_at timestamp")
	}

	notifier.waitForSend(t)
	if notifier.sendCount() != 1 {
		t.Fatalf("expected exactly one notification, got %d", notifier.sendCount())
	}
}

func TestApprovedTransitionNotifies(t *testing.T) {
	service, store, notifier := newTestService()
	store.add(pendingApplication("app1"))

	_, _, err := service.UpdateStatus(context.Background(), "app1", Transition{
		Status:   StatusApproved,
		Feedback: "Welcome aboard",
		Schedule: &SchedulePayload{Date: "2025-02-01", Time: "08:30", Place: "Main Office"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notifier.waitForSend(t)
	notifier.mu.Lock()
	sent := notifier.sent[0]
	notifier.mu.Unlock()
	for _, want := range []string{"amara@example.com", "2025-02-01", "08:30", "Main Office", "Welcome aboard"} {
		if !strings.Contains(sent, want) {
			t.Fatalf("notification missing %q:\n%s", want, sent)
		}
	}
}

func TestRejectedTransitionDoesNotNotify(t *testing.T) {
	service, store, notifier := newTestService()
	store.add(pendingApplication("app1"))

	app, warning, err := service.UpdateStatus(context.Background(), "app1", Transition{Status: StatusRejected})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %q", warning)
	}
	if app.Status != string(StatusRejected) {
		t.Fatalf("expected status rejected, got %q", app.Status)
	}

	select {
	case <-notifier.calls:
		t.Fatal("rejected transition must not notify")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMissingAddressWarnsInsteadOfNotifying(t *testing.T) {
	service, store, notifier := newTestService()
	app := pendingApplication("app1")
	app.ContactEmail = ""
	store.add(app)

	_, warning, err := service.UpdateStatus(context.Background(), "app1", Transition{
		Status:   StatusInterview,
		Schedule: &SchedulePayload{Date: "2025-01-10", Time: "09:00", Place: "Room A"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning == "" {
		t.Fatal("expected a warning about the missing address")
	}
	if notifier.sendCount() != 0 {
		t.Fatalf("expected no notifications, got %d", notifier.sendCount())
	}
}

func TestRejectedKeepsEarlierDetailBlocks(t *testing.T) {
	service, store, _ := newTestService()
	store.add(pendingApplication("app1"))

	_, _, err := service.UpdateStatus(context.Background(), "app1", Transition{
		Status:   StatusInterview,
		Schedule: &SchedulePayload{Date: "2025-01-10", Time: "09:00", Place: "Room A"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app, _, err := service.UpdateStatus(context.Background(), "app1", Transition{Status: StatusRejected})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != string(StatusRejected) {
		t.Fatalf("expected status rejected, got %q", app.Status)
	}
	if app.InterviewDetails == nil || app.InterviewDetails.Place != "Room A" {
		t.Fatalf("expected interview details to survive rejection, got %+v", app.InterviewDetails)
	}
}

func TestAssignMarksStoresTwoDecimalString(t *testing.T) {
	cases := []struct {
		mark float64
		want string
	}{
		{0, "0.00"},
		{7.5, "7.50"},
		{66.666, "66.67"},
		{100, "100.00"},
	}

	for _, tc := range cases {
		service, store, _ := newTestService()
		store.add(pendingApplication("app1"))

		mark := tc.mark
		app, _, err := service.UpdateStatus(context.Background(), "app1", Transition{
			Status: StatusAssignMarks,
			Mark:   &mark,
		})
		if err != nil {
			t.Fatalf("mark %v: unexpected error: %v", tc.mark, err)
		}
		if app.MarksDetails == nil {
			t.Fatalf("mark %v: expected marks details", tc.mark)
		}
		if app.MarksDetails.Mark != tc.want {
			t.Fatalf("mark %v: expected %q, got %q", tc.mark, tc.want, app.MarksDetails.Mark)
		}
		if app.MarksDetails.AssignedAt.IsZero() {
			t.Fatalf("mark %v: expected assigned_at timestamp", tc.mark)
		}
	}
}

func TestAssignMarksRejectsInvalidMark(t *testing.T) {
	outOfRange := []float64{-0.5, 100.01, 250}
	for _, mark := range outOfRange {
		service, store, _ := newTestService()
		store.add(pendingApplication("app1"))

		m := mark
		_, _, err := service.UpdateStatus(context.Background(), "app1", Transition{Status: StatusAssignMarks, Mark: &m})
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("mark %v: expected ErrInvalidPayload, got %v", mark, err)
		}
	}

	service, store, _ := newTestService()
	store.add(pendingApplication("app1"))
	_, _, err := service.UpdateStatus(context.Background(), "app1", Transition{Status: StatusAssignMarks})
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("missing mark: expected ErrInvalidPayload, got %v", err)
	}
}

func TestUpdatedAtIncreases(t *testing.T) {
	service, store, _ := newTestService()
	store.add(pendingApplication("app1"))

	first, _, err := service.UpdateStatus(context.Background(), "app1", Transition{Status: StatusRejected})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := service.UpdateStatus(context.Background(), "app1", Transition{Status: StatusPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("expected updated_at to increase: %v then %v", first.UpdatedAt, second.UpdatedAt)
	}
}

func TestRepeatedTransitionIsIdempotent(t *testing.T) {
	service, store, _ := newTestService()
	store.add(pendingApplication("app1"))

	transition := Transition{
		Status:   StatusInterview,
		Feedback: "Strong profile",
		Schedule: &SchedulePayload{Date: "2025-01-10", Time: "09:00", Place: "Room A"},
	}

	first, _, err := service.UpdateStatus(context.Background(), "app1", transition)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := service.UpdateStatus(context.Background(), "app1", transition)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Status != second.Status || first.Feedback != second.Feedback {
		t.Fatalf("expected identical state, got %+v vs %+v", first, second)
	}
	if second.InterviewDetails == nil ||
		first.InterviewDetails.Date != second.InterviewDetails.Date ||
		first.InterviewDetails.Time != second.InterviewDetails.Time ||
		first.InterviewDetails.Place != second.InterviewDetails.Place {
		t.Fatalf("expected identical interview details, got %+v vs %+v", first.InterviewDetails, second.InterviewDetails)
	}
}
