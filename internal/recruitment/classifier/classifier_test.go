package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitdesk/internal/recruitment/models"
)

func strPtr(s string) *string { return &s }

func TestMatchSlots(t *testing.T) {
	tests := []struct {
		name    string
		domain1 string
		domain2 *string
		target  string
		want    SlotSet
	}{
		{
			name:    "exact slot 1 match",
			domain1: "business",
			target:  "business",
			want:    SlotSet{Slot1: true},
		},
		{
			name:    "case-insensitive substring in slot 1",
			domain1: "Technical (Web)",
			target:  "technical",
			want:    SlotSet{Slot1: true},
		},
		{
			name:    "slot 2 only",
			domain1: "technical",
			domain2: strPtr("Creatives"),
			target:  "creatives",
			want:    SlotSet{Slot2: true},
		},
		{
			name:    "both slots mention target",
			domain1: "business & events",
			domain2: strPtr("Events"),
			target:  "events",
			want:    SlotSet{Slot1: true, Slot2: true},
		},
		{
			name:    "unset second slot never matches",
			domain1: "creatives",
			domain2: nil,
			target:  "events",
			want:    SlotSet{},
		},
		{
			name:    "empty target matches nothing",
			domain1: "technical",
			domain2: strPtr("technical"),
			target:  "",
			want:    SlotSet{},
		},
		{
			name:    "mixed-case target normalized",
			domain1: "EVENTS",
			target:  "  Events ",
			want:    SlotSet{Slot1: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Participant{Domain1: tt.domain1, Domain2: tt.domain2}
			assert.Equal(t, tt.want, MatchSlots(p, tt.target))
		})
	}
}

func TestClassify(t *testing.T) {
	records := []models.Participant{
		{RegistrationNumber: "RA001", Domain1: "business"},
		{RegistrationNumber: "RA002", Domain1: "technical", Domain2: strPtr("business development")},
		{RegistrationNumber: "RA003", Domain1: "creatives"},
	}

	got := Classify(records, "business")

	assert.Len(t, got, 2)
	assert.Equal(t, SlotSet{Slot1: true}, got["RA001"])
	assert.Equal(t, SlotSet{Slot2: true}, got["RA002"])
	_, ok := got["RA003"]
	assert.False(t, ok, "non-matching record must be omitted")
}
