package workflow

import "fmt"

// Status is the single authoritative field driving an application's
// workflow stage.
type Status string

const (
	StatusPending     Status = "pending"
	StatusInterview   Status = "interview"
	StatusAssignMarks Status = "assign marks"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInterview, StatusAssignMarks, StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// Presentation is the fixed label and visual emphasis class a status is
// rendered with.
type Presentation struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

var presentations = map[Status]Presentation{
	StatusPending:     {Label: "Pending", Class: "warning"},
	StatusInterview:   {Label: "Interview", Class: "info"},
	StatusAssignMarks: {Label: "Marks Assigned", Class: "info"},
	StatusApproved:    {Label: "Approved", Class: "success"},
	StatusRejected:    {Label: "Rejected", Class: "danger"},
}

// PresentationFor is total: unknown or missing statuses fall back to a
// neutral presentation.
func PresentationFor(status string) Presentation {
	if p, ok := presentations[Status(status)]; ok {
		return p
	}
	return Presentation{Label: "Unknown", Class: "secondary"}
}
