package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"recruitdesk/internal/recruitment/models"
	dErrors "recruitdesk/pkg/domain-errors"
)

// Registrations lists every participant carrying the domain, shaped for the
// dashboard table.
func (s *Service) Registrations(ctx context.Context, domain string) ([]models.RegistrationView, error) {
	ctx, span := s.tracer.Start(ctx, "recruitment.Registrations")
	defer span.End()

	if !models.IsKnownDomain(domain) {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown domain")
	}

	records, err := s.store.ListByDomain(ctx, domain)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list registrations")
	}

	views := make([]models.RegistrationView, 0, len(records))
	for _, p := range records {
		views = append(views, models.NewRegistrationView(p, domain))
	}
	return views, nil
}

// DomainCounts returns the participant count per domain, fanning the four
// store counts out concurrently and caching the aggregate.
func (s *Service) DomainCounts(ctx context.Context) (map[string]int, error) {
	ctx, span := s.tracer.Start(ctx, "recruitment.DomainCounts")
	defer span.End()

	if counts, ok := s.cache.GetDomainCounts(ctx); ok {
		s.metrics.RecordStatsCacheHit()
		return counts, nil
	}
	s.metrics.RecordStatsCacheMiss()

	var mu sync.Mutex
	counts := make(map[string]int, len(models.Domains))

	g, gctx := errgroup.WithContext(ctx)
	for _, domain := range models.Domains {
		g.Go(func() error {
			n, err := s.store.CountByDomain(gctx, domain)
			if err != nil {
				return err
			}
			mu.Lock()
			counts[domain] = n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "count domains")
	}

	if err := s.cache.SetDomainCounts(ctx, counts); err != nil {
		s.logger.WarnContext(ctx, "stats cache write failed", "error", err.Error())
	}
	return counts, nil
}

// TotalRegistrations returns the overall headcount across all domains.
func (s *Service) TotalRegistrations(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "recruitment.TotalRegistrations")
	defer span.End()

	if total, ok := s.cache.GetTotal(ctx); ok {
		s.metrics.RecordStatsCacheHit()
		return total, nil
	}
	s.metrics.RecordStatsCacheMiss()

	total, err := s.store.CountAll(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "count registrations")
	}

	if err := s.cache.SetTotal(ctx, total); err != nil {
		s.logger.WarnContext(ctx, "stats cache write failed", "error", err.Error())
	}
	return total, nil
}
