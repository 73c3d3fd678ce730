package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"lecturer-portal/app/models"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrUnknownStatus  = errors.New("unknown status")
	ErrInvalidPayload = errors.New("invalid transition payload")
)

// Store is the persistence surface the workflow needs: load one application
// and apply a status update to it.
type Store interface {
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	ApplyStatusUpdate(ctx context.Context, id string, upd StatusUpdate) (*models.Application, error)
}

// Notifier dispatches a plain-text message to one recipient.
type Notifier interface {
	Send(to string, body string) error
}

// SchedulePayload carries the date/time/place block required when entering
// the interview or approved status.
type SchedulePayload struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
}

func (p SchedulePayload) complete() bool {
	return p.Date != "" && p.Time != "" && p.Place != ""
}

// Transition is one admin-requested status change. Exactly the payload the
// target status needs is set; the rest stay nil.
type Transition struct {
	Status   Status
	Feedback string
	Schedule *SchedulePayload // interview, approved
	Mark     *float64         // assign marks
}

// StatusUpdate is the concrete field-set a transition persists. Detail blocks
// left nil are not touched, so earlier blocks survive later transitions.
type StatusUpdate struct {
	Status    Status
	Feedback  string
	Interview *models.InterviewDetails
	Approved  *models.ApprovedDetails
	Marks     *models.MarksDetails
}

type Service struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier, now: time.Now}
}

// UpdateStatus moves an application to t.Status. Any status may move to any
// other; the only guards are payload completeness for the statuses that carry
// one. For interview and approved transitions a notification is dispatched to
// the applicant fire-and-forget: delivery failure is logged and reported as
// the returned warning text at most, never rolled back.
func (s *Service) UpdateStatus(ctx context.Context, id string, t Transition) (*models.Application, string, error) {
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return nil, "", ErrUnknownStatus
	}

	_, err := s.store.GetApplication(ctx, id)
	if err != nil {
		return nil, "", err
	}

	upd := StatusUpdate{Status: t.Status, Feedback: t.Feedback}
	switch t.Status {
	case StatusInterview:
		if t.Schedule != nil {
			upd.Interview = &models.InterviewDetails{
				Date:        t.Schedule.Date,
				Time:        t.Schedule.Time,
				Place:       t.Schedule.Place,
				ScheduledAt: s.now(),
			}
		}
	case StatusApproved:
		if t.Schedule != nil {
			upd.Approved = &models.ApprovedDetails{
				Date:       t.Schedule.Date,
				Time:       t.Schedule.Time,
				Place:      t.Schedule.Place,
				ApprovedAt: s.now(),
			}
		}
	case StatusAssignMarks:
		if t.Mark == nil || *t.Mark < 0 || *t.Mark > 100 {
			return nil, "", ErrInvalidPayload
		}
		upd.Marks = &models.MarksDetails{
			Mark:       FormatMark(*t.Mark),
			AssignedAt: s.now(),
		}
	}

	updated, err := s.store.ApplyStatusUpdate(ctx, id, upd)
	if err != nil {
		return nil, "", err
	}

	warning := ""
	if t.Status == StatusInterview || t.Status == StatusApproved {
		if updated.ContactEmail == "" {
			warning = "applicant has no notification address; no message sent"
		} else {
			body := composeMessage(t.Status, updated.FullName, t.Schedule, t.Feedback)
			go func(to string) {
				if err := s.notifier.Send(to, body); err != nil {
					log.Printf("Failed to notify applicant %s: %v", to, err)
				}
			}(updated.ContactEmail)
		}
	}

	return updated, warning, nil
}

// FormatMark renders a mark with exactly two decimal places.
func FormatMark(mark float64) string {
	return strconv.FormatFloat(mark, 'f', 2, 64)
}

func composeMessage(status Status, fullName string, schedule *SchedulePayload, feedback string) string {
	sched := SchedulePayload{}
	if schedule != nil {
		sched = *schedule
	}

	var msg string
	if status == StatusInterview {
		msg = fmt.Sprintf("Dear %s,\n\nYou have been invited to an interview for your lecturer application.\n\nDate: %s\nTime: %s\nLocation: %s\n",
			fullName, sched.Date, sched.Time, sched.Place)
	} else {
		msg = fmt.Sprintf("Dear %s,\n\nCongratulations! Your lecturer application has been approved. Please report as follows.\n\nDate: %s\nTime: %s\nLocation: %s\n",
			fullName, sched.Date, sched.Time, sched.Place)
	}
	if feedback != "" {
		msg += fmt.Sprintf("\nFeedback: %s\n", feedback)
	}
	return msg
}
