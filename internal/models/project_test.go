package models

import (
	"testing"
	"time"
)

func TestProjectNextMeeting(t *testing.T) {
	start := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	daily := "FREQ=DAILY"
	garbage := "not an rrule"

	tests := []struct {
		name    string
		project Project
		check   func(t *testing.T, next time.Time)
	}{
		{
			name:    "no schedule returns start date",
			project: Project{StartDate: start},
			check: func(t *testing.T, next time.Time) {
				if !next.Equal(start) {
					t.Errorf("NextMeeting() = %v; want %v", next, start)
				}
			},
		},
		{
			name:    "empty schedule returns start date",
			project: Project{StartDate: start, MeetingSchedule: new(string)},
			check: func(t *testing.T, next time.Time) {
				if !next.Equal(start) {
					t.Errorf("NextMeeting() = %v; want %v", next, start)
				}
			},
		},
		{
			name:    "recurring schedule returns an upcoming occurrence",
			project: Project{StartDate: start, MeetingSchedule: &daily},
			check: func(t *testing.T, next time.Time) {
				if next.Before(time.Now().Add(-24 * time.Hour)) {
					t.Errorf("NextMeeting() = %v; want an occurrence on or after yesterday", next)
				}
			},
		},
		{
			name:    "malformed schedule falls back to start date",
			project: Project{StartDate: start, MeetingSchedule: &garbage},
			check: func(t *testing.T, next time.Time) {
				if !next.Equal(start) {
					t.Errorf("NextMeeting() = %v; want fallback %v", next, start)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.project.NextMeeting())
		})
	}
}
