package workflow

import "testing"

func TestParseStatus(t *testing.T) {
	valid := []string{"pending", "interview", "assign marks", "approved", "rejected"}
	for _, s := range valid {
		status, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q): unexpected error: %v", s, err)
		}
		if string(status) != s {
			t.Fatalf("ParseStatus(%q) = %q", s, status)
		}
	}

	invalid := []string{"", "Pending", "assign_marks", "done", "interview "}
	for _, s := range invalid {
		if _, err := ParseStatus(s); err == nil {
			t.Fatalf("ParseStatus(%q): expected error", s)
		}
	}
}

func TestPresentationFor(t *testing.T) {
	cases := []struct {
		status    string
		wantLabel string
		wantClass string
	}{
		{"pending", "Pending", "warning"},
		{"interview", "Interview", "info"},
		{"assign marks", "Marks Assigned", "info"},
		{"approved", "Approved", "success"},
		{"rejected", "Rejected", "danger"},
		{"", "Unknown", "secondary"},
		{"garbage", "Unknown", "secondary"},
	}

	for _, tc := range cases {
		got := PresentationFor(tc.status)
		if got.Label != tc.wantLabel || got.Class != tc.wantClass {
			t.Fatalf("PresentationFor(%q) = %+v, want {%s %s}", tc.status, got, tc.wantLabel, tc.wantClass)
		}
	}
}
