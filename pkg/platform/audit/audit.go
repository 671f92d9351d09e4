// Package audit captures who changed what on the roster. Events are emitted
// from domain logic and fanned out to a sink; keep the model transport-agnostic.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action names the operation an event records.
type Action string

const (
	ActionRoundAdvance       Action = "round_advance"
	ActionLegacyRoundAdvance Action = "legacy_round_advance"
	ActionRosterImport       Action = "roster_import"
)

// Event is emitted once per completed (or partially completed) mutation.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	// Actor is the validated identity performing the change; ActorEmail is
	// what lands in the modified_by columns.
	Actor      string `json:"actor"`
	ActorEmail string `json:"actor_email"`
	Domain     string `json:"domain,omitempty"`
	Round      int    `json:"round,omitempty"`
	Updated    int    `json:"updated"`
	NotFound   int    `json:"not_found"`
	// Partial marks advances where one slot committed and the other failed.
	Partial   bool   `json:"partial,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	Client    string `json:"client,omitempty"`
}

// Publisher delivers audit events to a sink. Publish failures must not fail
// the operation being audited; callers log and move on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close()                               {}

// MemoryPublisher collects events in memory for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *MemoryPublisher) Close() {}

// Events returns a copy of everything published so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
