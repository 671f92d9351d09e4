package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/recruitment/cache"
	"recruitdesk/internal/recruitment/models"
	dErrors "recruitdesk/pkg/domain-errors"
)

func newCachedService(t *testing.T, store Store) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	statsCache := cache.NewStatsCache(client, time.Minute)
	return NewService(store, statsCache, nil, nil, discardLogger())
}

func TestDomainCounts(t *testing.T) {
	store := seedStore(t)
	svc := newCachedService(t, store)
	ctx := context.Background()

	counts, err := svc.DomainCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"technical": 1,
		"creatives": 1,
		"business":  2,
		"events":    0,
	}, counts)

	// A new registration does not show until the cache expires.
	_, err = store.Create(ctx, models.Participant{RegistrationNumber: "RA100", Domain1: "events"})
	require.NoError(t, err)

	cached, err := svc.DomainCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, cached)
}

func TestDomainCountsRecomputedAfterAdvance(t *testing.T) {
	store := seedStore(t)
	svc := newCachedService(t, store)
	ctx := context.Background()

	_, err := svc.DomainCounts(ctx)
	require.NoError(t, err)

	_, err = store.Create(ctx, models.Participant{RegistrationNumber: "RA100", Domain1: "events"})
	require.NoError(t, err)

	// A bulk advancement invalidates the cached stats.
	_, err = svc.Advance(ctx, testActor, models.AdvanceCommand{
		Identifiers:  []string{"RA001"},
		Round:        2,
		TargetDomain: "business",
	})
	require.NoError(t, err)

	counts, err := svc.DomainCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["events"])
}

func TestTotalRegistrations(t *testing.T) {
	store := seedStore(t)
	svc := newCachedService(t, store)
	ctx := context.Background()

	total, err := svc.TotalRegistrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	_, err = store.Create(ctx, models.Participant{RegistrationNumber: "RA100", Domain1: "events"})
	require.NoError(t, err)

	cached, err := svc.TotalRegistrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, cached, "served from cache until TTL or invalidation")
}

func TestRegistrations(t *testing.T) {
	store := seedStore(t)
	svc, _ := newTestService(store)
	ctx := context.Background()

	t.Run("unknown domain rejected", func(t *testing.T) {
		_, err := svc.Registrations(ctx, "esports")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})

	t.Run("rows shaped with the slot-matched round", func(t *testing.T) {
		_, err := svc.Advance(ctx, testActor, models.AdvanceCommand{
			Identifiers:  []string{"RA002"},
			Round:        3,
			TargetDomain: "business",
		})
		require.NoError(t, err)

		views, err := svc.Registrations(ctx, "business")
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, "RA001", views[0].RegisterNumber)
		assert.Equal(t, 1, views[0].Round)

		assert.Equal(t, "RA002", views[1].RegisterNumber)
		assert.Equal(t, 3, views[1].Round, "round comes from the slot carrying the domain")
	})
}
