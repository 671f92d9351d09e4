// Package memory holds an in-memory participant store used by unit tests
// and by local development when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"recruitdesk/internal/recruitment/classifier"
	"recruitdesk/internal/recruitment/models"
	"recruitdesk/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	byReg  map[string]*models.Participant
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		nextID: 1,
		byReg:  make(map[string]*models.Participant),
	}
}

// Create inserts a participant, assigning its ID. Registration numbers are
// unique.
func (s *InMemoryStore) Create(_ context.Context, p models.Participant) (models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byReg[p.RegistrationNumber]; exists {
		return models.Participant{}, sentinel.ErrConflict
	}
	p.ID = s.nextID
	s.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	cp := p
	s.byReg[p.RegistrationNumber] = &cp
	return p, nil
}

func (s *InMemoryStore) ListByRegistrationNumbers(_ context.Context, regNums []string) ([]models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Participant, 0, len(regNums))
	for _, rn := range regNums {
		if p, ok := s.byReg[rn]; ok {
			out = append(out, *p)
		}
	}
	sortByID(out)
	return out, nil
}

func (s *InMemoryStore) ListByRegistrationNumbersInDomain(_ context.Context, regNums []string, domain string) ([]models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Participant, 0, len(regNums))
	for _, rn := range regNums {
		p, ok := s.byReg[rn]
		if !ok || !classifier.Matches(*p, domain) {
			continue
		}
		out = append(out, *p)
	}
	sortByID(out)
	return out, nil
}

func (s *InMemoryStore) ListByDomain(_ context.Context, domain string) ([]models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Participant
	for _, p := range s.byReg {
		if classifier.Matches(*p, domain) {
			out = append(out, *p)
		}
	}
	sortByID(out)
	return out, nil
}

// SetSlotRound advances one slot for every listed record that exists. A
// second-slot update skips records with no second domain, mirroring the
// database check constraint.
func (s *InMemoryStore) SetSlotRound(_ context.Context, regNums []string, slot classifier.Slot, round int, modifiedAt time.Time, modifiedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rn := range regNums {
		p, ok := s.byReg[rn]
		if !ok {
			continue
		}
		switch slot {
		case classifier.Slot1:
			p.Domain1Round = round
			p.ModifiedBy1 = modifiedBy
		case classifier.Slot2:
			if p.Domain2 == nil {
				continue
			}
			r := round
			p.Domain2Round = &r
			p.ModifiedBy2 = modifiedBy
		default:
			continue
		}
		ts := modifiedAt
		p.ModifiedAt = &ts
	}
	return nil
}

// SetLegacyRound writes the single-round counter, optionally scoped to
// records carrying the given domain.
func (s *InMemoryStore) SetLegacyRound(_ context.Context, regNums []string, domain string, round int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rn := range regNums {
		p, ok := s.byReg[rn]
		if !ok {
			continue
		}
		if domain != "" && !classifier.Matches(*p, domain) {
			continue
		}
		p.Round = round
	}
	return nil
}

func (s *InMemoryStore) CountByDomain(_ context.Context, domain string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.byReg {
		if classifier.Matches(*p, domain) {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) CountAll(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byReg), nil
}

func (s *InMemoryStore) Health(_ context.Context) error {
	return nil
}

func sortByID(records []models.Participant) {
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
}
