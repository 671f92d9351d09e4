// Package classifier decides which domain slot of a participant record a
// target domain addresses. Matching is case-insensitive substring matching
// because the registration form stores free-text labels such as
// "Technical (Web)" or "business & events".
package classifier

import (
	"strings"

	"recruitdesk/internal/recruitment/models"
)

// Slot identifies one of the two domain-assignment positions on a record.
type Slot int

const (
	Slot1 Slot = iota + 1
	Slot2
)

// SlotSet is the set of slots whose label matched a target domain. A record
// whose two labels both mention the target matches both slots.
type SlotSet struct {
	Slot1 bool
	Slot2 bool
}

func (s SlotSet) Empty() bool {
	return !s.Slot1 && !s.Slot2
}

func (s SlotSet) Contains(slot Slot) bool {
	switch slot {
	case Slot1:
		return s.Slot1
	case Slot2:
		return s.Slot2
	}
	return false
}

// MatchSlots reports which slots of a single record match target. An unset
// second slot never matches; an empty target matches nothing.
func MatchSlots(p models.Participant, target string) SlotSet {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return SlotSet{}
	}
	var set SlotSet
	set.Slot1 = strings.Contains(strings.ToLower(p.Domain1), target)
	if p.Domain2 != nil {
		set.Slot2 = strings.Contains(strings.ToLower(*p.Domain2), target)
	}
	return set
}

// Matches reports whether any slot of the record carries the target domain.
func Matches(p models.Participant, target string) bool {
	return !MatchSlots(p, target).Empty()
}

// Classify maps each record's registration number to its slot matches,
// omitting records that match neither slot.
func Classify(records []models.Participant, target string) map[string]SlotSet {
	out := make(map[string]SlotSet, len(records))
	for _, p := range records {
		set := MatchSlots(p, target)
		if set.Empty() {
			continue
		}
		out[p.RegistrationNumber] = set
	}
	return out
}
