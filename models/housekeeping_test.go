package models

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		status  HousekeepingStatus
		dueBy   time.Time
		overdue bool
	}{
		{"pending past due", HousekeepingStatusPending, now.Add(-time.Minute), true},
		{"pending not yet due", HousekeepingStatusPending, now.Add(time.Minute), false},
		{"pending due exactly now", HousekeepingStatusPending, now, false},
		{"in progress past due", HousekeepingStatusInProgress, now.Add(-time.Hour), false},
		{"completed past due", HousekeepingStatusCompleted, now.Add(-time.Hour), false},
		{"already overdue", HousekeepingStatusOverdue, now.Add(-time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := HousekeepingRequest{Status: tc.status, DueBy: tc.dueBy}
			if got := h.IsOverdue(now); got != tc.overdue {
				t.Fatalf("IsOverdue = %v, want %v", got, tc.overdue)
			}
		})
	}
}
