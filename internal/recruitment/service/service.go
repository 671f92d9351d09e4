// Package service orchestrates bulk round advancement and dashboard reads.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"recruitdesk/internal/recruitment/cache"
	"recruitdesk/internal/recruitment/classifier"
	"recruitdesk/internal/recruitment/metrics"
	"recruitdesk/internal/recruitment/models"
	dErrors "recruitdesk/pkg/domain-errors"
	"recruitdesk/pkg/platform/audit"
	strutil "recruitdesk/pkg/platform/strings"
	"recruitdesk/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

// Store is the persistence boundary for participant records.
type Store interface {
	ListByRegistrationNumbers(ctx context.Context, regNums []string) ([]models.Participant, error)
	ListByRegistrationNumbersInDomain(ctx context.Context, regNums []string, domain string) ([]models.Participant, error)
	ListByDomain(ctx context.Context, domain string) ([]models.Participant, error)
	SetSlotRound(ctx context.Context, regNums []string, slot classifier.Slot, round int, modifiedAt time.Time, modifiedBy string) error
	SetLegacyRound(ctx context.Context, regNums []string, domain string, round int) error
	CountByDomain(ctx context.Context, domain string) (int, error)
	CountAll(ctx context.Context) (int, error)
	Health(ctx context.Context) error
}

// PartialAdvanceError reports an advancement where the first slot committed
// but the second failed. The committed rows keep their new round; the caller
// can retry the same request, slot updates are idempotent.
type PartialAdvanceError struct {
	Domain    string
	Round     int
	Committed []string
	Failed    []string
	Err       error
}

func (e *PartialAdvanceError) Error() string {
	return fmt.Sprintf("advanced %d first-slot records to round %d but second-slot update failed: %v",
		len(e.Committed), e.Round, e.Err)
}

func (e *PartialAdvanceError) Unwrap() error { return e.Err }

// Service coordinates advancement, audit, metrics and the stats cache. It
// keeps orchestration out of handlers and domain logic thin.
type Service struct {
	store   Store
	cache   *cache.StatsCache
	audit   audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewService constructs the recruitment service. cache and m may be nil;
// publisher may be nil, in which case events are discarded.
func NewService(store Store, statsCache *cache.StatsCache, publisher audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = audit.NoopPublisher{}
	}
	return &Service{
		store:   store,
		cache:   statsCache,
		audit:   publisher,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer("recruitdesk/recruitment"),
	}
}

// Advance moves every matched participant to the requested round. With a
// target domain set, each record advances in whichever slot carries the
// domain; without one, the legacy single-round counter is written.
// Validation failures return before any store call.
func (s *Service) Advance(ctx context.Context, actor models.Actor, cmd models.AdvanceCommand) (*models.AdvanceResult, error) {
	ctx, span := s.tracer.Start(ctx, "recruitment.Advance")
	defer span.End()
	start := time.Now()

	ids := strutil.DedupeAndTrim(cmd.Identifiers)
	if len(ids) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "registration numbers array is required")
	}
	if cmd.Round < models.RoundMin || cmd.Round > models.RoundMax {
		return nil, dErrors.New(dErrors.CodeValidation, "valid round number (1-3) is required")
	}
	if cmd.TargetDomain != "" && !models.IsKnownDomain(cmd.TargetDomain) {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown target domain")
	}
	if cmd.LegacyScope != "" && !models.IsKnownDomain(cmd.LegacyScope) {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown domain scope")
	}

	var (
		result *models.AdvanceResult
		err    error
	)
	if cmd.TargetDomain == "" {
		result, err = s.advanceLegacy(ctx, ids, cmd)
	} else {
		result, err = s.advanceSlots(ctx, actor, ids, cmd)
	}
	if err != nil {
		s.metrics.ObserveAdvance(domainLabel(cmd), "error", 0, 0, time.Since(start))
		return nil, err
	}

	s.publishAudit(ctx, actor, cmd, result.UpdatedCount, len(result.NotFound), false)
	if cacheErr := s.cache.Invalidate(ctx); cacheErr != nil {
		s.logger.WarnContext(ctx, "stats cache invalidation failed", "error", cacheErr.Error())
	}
	s.metrics.ObserveAdvance(domainLabel(cmd), "ok", result.UpdatedCount, len(result.NotFound), time.Since(start))

	s.logger.InfoContext(ctx, "bulk round advancement",
		"actor", actor.Email,
		"domain", domainLabel(cmd),
		"round", cmd.Round,
		"requested", len(ids),
		"updated", result.UpdatedCount,
		"not_found", len(result.NotFound),
		"request_id", requestcontext.RequestID(ctx),
	)
	return result, nil
}

// advanceSlots is the dual-slot path: fetch the batch, classify each record
// against the target domain, then issue one update per slot. The result is
// reconciled from a domain-scoped re-read so records that exist outside the
// target domain still count as not found.
func (s *Service) advanceSlots(ctx context.Context, actor models.Actor, ids []string, cmd models.AdvanceCommand) (*models.AdvanceResult, error) {
	records, err := s.store.ListByRegistrationNumbers(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "fetch participants")
	}

	matches := classifier.Classify(records, cmd.TargetDomain)
	var slot1, slot2 []string
	for _, p := range records {
		set, ok := matches[p.RegistrationNumber]
		if !ok {
			continue
		}
		if set.Slot1 {
			slot1 = append(slot1, p.RegistrationNumber)
		}
		if set.Slot2 {
			slot2 = append(slot2, p.RegistrationNumber)
		}
	}

	now := requestcontext.Now(ctx)
	if len(slot1) > 0 {
		if err := s.store.SetSlotRound(ctx, slot1, classifier.Slot1, cmd.Round, now, actor.Email); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "advance first slot")
		}
	}
	if len(slot2) > 0 {
		if err := s.store.SetSlotRound(ctx, slot2, classifier.Slot2, cmd.Round, now, actor.Email); err != nil {
			if len(slot1) > 0 {
				partial := &PartialAdvanceError{
					Domain:    cmd.TargetDomain,
					Round:     cmd.Round,
					Committed: slot1,
					Failed:    slot2,
					Err:       err,
				}
				s.publishAudit(ctx, actor, cmd, len(slot1), 0, true)
				return nil, dErrors.Wrap(partial, dErrors.CodePartialAdvance, "second slot update failed after first slot committed")
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "advance second slot")
		}
	}

	confirmed, err := s.store.ListByRegistrationNumbersInDomain(ctx, ids, cmd.TargetDomain)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "confirm advanced participants")
	}
	return models.NewAdvanceResult(len(confirmed), cmd.Round, notFoundIn(ids, confirmed)), nil
}

// advanceLegacy writes the single-round counter, optionally scoped to one
// domain for callers still on the old per-domain routes.
func (s *Service) advanceLegacy(ctx context.Context, ids []string, cmd models.AdvanceCommand) (*models.AdvanceResult, error) {
	if err := s.store.SetLegacyRound(ctx, ids, cmd.LegacyScope, cmd.Round); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "advance round")
	}

	var (
		confirmed []models.Participant
		err       error
	)
	if cmd.LegacyScope != "" {
		confirmed, err = s.store.ListByRegistrationNumbersInDomain(ctx, ids, cmd.LegacyScope)
	} else {
		confirmed, err = s.store.ListByRegistrationNumbers(ctx, ids)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "confirm advanced participants")
	}
	return models.NewAdvanceResult(len(confirmed), cmd.Round, notFoundIn(ids, confirmed)), nil
}

// notFoundIn returns the requested identifiers absent from confirmed,
// preserving the caller's input order.
func notFoundIn(ids []string, confirmed []models.Participant) []string {
	found := make(map[string]struct{}, len(confirmed))
	for _, p := range confirmed {
		found[p.RegistrationNumber] = struct{}{}
	}
	notFound := make([]string, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			notFound = append(notFound, id)
		}
	}
	return notFound
}

func (s *Service) publishAudit(ctx context.Context, actor models.Actor, cmd models.AdvanceCommand, updated, notFound int, partial bool) {
	action := audit.ActionRoundAdvance
	if cmd.TargetDomain == "" {
		action = audit.ActionLegacyRoundAdvance
	}
	if cmd.FromRoster {
		action = audit.ActionRosterImport
	}
	event := audit.Event{
		ID:         uuid.New(),
		Timestamp:  requestcontext.Now(ctx),
		Action:     action,
		Actor:      actor.ID,
		ActorEmail: actor.Email,
		Domain:     domainLabel(cmd),
		Round:      cmd.Round,
		Updated:    updated,
		NotFound:   notFound,
		Partial:    partial,
		RequestID:  requestcontext.RequestID(ctx),
		ClientIP:   requestcontext.ClientIP(ctx),
		Client:     requestcontext.UserAgent(ctx),
	}
	if err := s.audit.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit publish failed",
			"action", string(action),
			"error", err.Error(),
		)
	}
}

func domainLabel(cmd models.AdvanceCommand) string {
	if cmd.TargetDomain != "" {
		return cmd.TargetDomain
	}
	return cmd.LegacyScope
}

// Health reports whether the backing store is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.store.Health(ctx)
}
