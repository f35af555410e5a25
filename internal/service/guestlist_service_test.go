package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Kenford20/wedding-approuter/internal/guestlist"
	"github.com/Kenford20/wedding-approuter/internal/models"
)

func TestPrefillEventForm(t *testing.T) {
	tests := []struct {
		name  string
		event models.Event
		want  EventForm
	}{
		{
			name: "all fields set",
			event: models.Event{
				ID:          "e1",
				Name:        "Reception",
				Date:        time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
				StartTime:   "18:00",
				EndTime:     "23:00",
				Venue:       "The Grand Hall",
				Attire:      "Black tie",
				Description: "Dinner and dancing",
			},
			want: EventForm{
				EventName:   "Reception",
				Date:        "2026-10-10",
				StartTime:   "18:00",
				EndTime:     "23:00",
				Venue:       "The Grand Hall",
				Attire:      "Black tie",
				Description: "Dinner and dancing",
				EventID:     "e1",
			},
		},
		{
			name: "optional fields stay empty",
			event: models.Event{
				ID:   "e2",
				Name: "Ceremony",
				Date: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
			},
			want: EventForm{
				EventName: "Ceremony",
				Date:      "2026-10-10",
				EventID:   "e2",
			},
		},
		{
			name:  "zero date leaves the field blank",
			event: models.Event{ID: "e3", Name: "TBD"},
			want:  EventForm{EventName: "TBD", EventID: "e3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefillEventForm(tt.event); got != tt.want {
				t.Errorf("PrefillEventForm() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	view := &GuestListView{
		Events: []models.Event{
			{ID: "e1", Name: "Ceremony"},
			{ID: "e2", Name: "Reception"},
		},
		Households: []models.Household{
			{
				Name: "Doe",
				Guests: []models.Guest{
					{
						FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
						Invitations: []models.Invitation{
							{EventID: "e1", RSVP: models.RSVPAttending},
							{EventID: "e2", RSVP: models.RSVPNoResponse},
						},
					},
					{FirstName: "John", LastName: "Doe"},
				},
			},
		},
		Scope: guestlist.ScopeAll,
	}

	var buf strings.Builder
	svc := &GuestListService{}
	if err := svc.ExportCSV(&buf, view); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Household,Guest,Email,Ceremony,Reception" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Doe,Jane Doe,jane@example.com,Attending,No Response" {
		t.Errorf("jane row = %q", lines[1])
	}
	if lines[2] != "Doe,John Doe,,Not Invited,Not Invited" {
		t.Errorf("john row = %q", lines[2])
	}
}
