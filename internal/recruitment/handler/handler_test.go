package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/recruitment/models"
	"recruitdesk/internal/recruitment/service"
	"recruitdesk/internal/recruitment/store/memory"
	"recruitdesk/pkg/testutil"
)

func strPtr(s string) *string { return &s }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asStaff stamps the identity the auth middleware would have injected.
func asStaff(req *http.Request) *http.Request {
	return testutil.WithStaff(req, "user-1", "staff@club.org")
}

// newTestRouter wires the handler over a seeded in-memory store. Mutation
// requests carry their identity via asStaff.
func newTestRouter(t *testing.T) (http.Handler, *memory.InMemoryStore) {
	t.Helper()

	store := memory.NewInMemoryStore()
	records := []models.Participant{
		{Name: "Asha", RegistrationNumber: "RA001", Email: "asha@srmist.edu.in", Phone: "999", Domain1: "business", Domain1Round: 1, Round: 1},
		{Name: "Bo", RegistrationNumber: "RA002", Email: "bo@srmist.edu.in", Phone: "888", Domain1: "technical", Domain2: strPtr("business development"), Domain1Round: 1, Round: 1},
		{Name: "Cem", RegistrationNumber: "RA003", Email: "cem@srmist.edu.in", Phone: "777", Domain1: "creatives", Domain1Round: 1, Round: 1},
	}
	for _, rec := range records {
		_, err := store.Create(context.Background(), rec)
		require.NoError(t, err)
	}

	svc := service.NewService(store, nil, nil, nil, discardLogger())
	h := New(svc, discardLogger(), nil)

	r := chi.NewRouter()
	h.Register(r)
	return r, store
}

func TestBulkUpdate(t *testing.T) {
	t.Run("per-domain route advances matched slots", func(t *testing.T) {
		router, store := newTestRouter(t)
		now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/business-bulk-update", models.BulkUpdateRequest{
			RegistrationNumbers: []string{"RA001", "RA002"},
			Round:               2,
		})
		req = testutil.WithRequestTime(asStaff(req), now)
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		result := testutil.UnmarshalResponse[models.AdvanceResult](t, rr)
		assert.Equal(t, 2, result.UpdatedCount)
		assert.Empty(t, result.NotFound)
		assert.Equal(t, "2 participants moved to Round 2", result.Message)

		got, err := store.ListByRegistrationNumbers(context.Background(), []string{"RA001", "RA002"})
		require.NoError(t, err)
		assert.Equal(t, 2, got[0].Domain1Round)
		require.NotNil(t, got[1].Domain2Round)
		assert.Equal(t, 2, *got[1].Domain2Round)
		assert.Equal(t, "staff@club.org", got[0].ModifiedBy1)
		require.NotNil(t, got[0].ModifiedAt)
		assert.Equal(t, now, *got[0].ModifiedAt)
	})

	t.Run("not found identifiers reported in message", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/bulk-update", models.BulkUpdateRequest{
			RegistrationNumbers: []string{"RA001", "RA404"},
			Round:               2,
			Domain:              "business",
		})
		rr := testutil.DoRequest(router, asStaff(req))

		testutil.AssertStatus(t, rr, http.StatusOK)
		result := testutil.UnmarshalResponse[models.AdvanceResult](t, rr)
		assert.Equal(t, 1, result.UpdatedCount)
		assert.Equal(t, []string{"RA404"}, result.NotFound)
		assert.Equal(t, "1 participants moved to Round 2. Not found: RA404", result.Message)
	})

	t.Run("generic route without domain runs the legacy path", func(t *testing.T) {
		router, store := newTestRouter(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/bulk-update", models.BulkUpdateRequest{
			RegistrationNumbers: []string{"RA001", "RA003"},
			Round:               3,
		})
		rr := testutil.DoRequest(router, asStaff(req))

		testutil.AssertStatus(t, rr, http.StatusOK)

		got, err := store.ListByRegistrationNumbers(context.Background(), []string{"RA001", "RA003"})
		require.NoError(t, err)
		assert.Equal(t, 3, got[0].Round)
		assert.Equal(t, 3, got[1].Round)
		assert.Equal(t, 1, got[0].Domain1Round, "slot rounds untouched")
	})

	t.Run("legacy flag with domain runs the scoped legacy path", func(t *testing.T) {
		router, store := newTestRouter(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/bulk-update", models.BulkUpdateRequest{
			RegistrationNumbers: []string{"RA001", "RA003"},
			Round:               2,
			Domain:              "creatives",
			Legacy:              true,
		})
		rr := testutil.DoRequest(router, asStaff(req))

		testutil.AssertStatus(t, rr, http.StatusOK)
		result := testutil.UnmarshalResponse[models.AdvanceResult](t, rr)
		assert.Equal(t, 1, result.UpdatedCount)
		assert.Equal(t, []string{"RA001"}, result.NotFound)

		got, err := store.ListByRegistrationNumbers(context.Background(), []string{"RA001", "RA003"})
		require.NoError(t, err)
		assert.Equal(t, 1, got[0].Round, "record outside the scope keeps its round")
		assert.Equal(t, 2, got[1].Round)
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		router, _ := newTestRouter(t)
		bodies := []models.BulkUpdateRequest{
			{Round: 2},
			{RegistrationNumbers: []string{"RA001"}, Round: 0},
			{RegistrationNumbers: []string{"RA001"}, Round: 4},
			{RegistrationNumbers: []string{"RA001"}, Round: 2, Domain: "esports"},
		}
		for _, body := range bodies {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/bulk-update", body)
			rr := testutil.DoRequest(router, asStaff(req))
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
		}
	})

	t.Run("malformed body returns 400 bad_request", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/bulk-update", "application/json", "{not json")
		rr := testutil.DoRequest(router, asStaff(req))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("non-JSON content type rejected", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/bulk-update", "text/plain", "RA001")
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusUnsupportedMediaType)
	})
}

func TestBulkUpdateWithoutIdentityFails(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/bulk-update", models.BulkUpdateRequest{
		RegistrationNumbers: []string{"RA001"},
		Round:               2,
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "internal_error")
}

func TestRegistrations(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("lists domain rows", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/business-registrations")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		views := testutil.UnmarshalResponse[[]models.RegistrationView](t, rr)
		require.Len(t, *views, 2)
		assert.Equal(t, "RA001", (*views)[0].RegisterNumber)
		assert.Equal(t, "RA002", (*views)[1].RegisterNumber)
	})

	t.Run("empty domain returns an empty array", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/events-registrations")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestExport(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewRequest(t, http.MethodGet, "/creatives-registrations/export")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="creatives_registrations.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Contains(t, rr.Body.String(), "Name,Registration Number,Email,Phone,Registered At,Round")
	assert.Contains(t, rr.Body.String(), "Cem,RA003")
}

func TestRosterUpload(t *testing.T) {
	t.Run("raw CSV body advances listed records", func(t *testing.T) {
		router, store := newTestRouter(t)

		req := testutil.NewRequestWithBody(t, http.MethodPost,
			"/bulk-update/roster?round=2&domain=business",
			"text/csv", "Register Number\nRA001\nRA404\n")
		rr := testutil.DoRequest(router, asStaff(req))

		testutil.AssertStatus(t, rr, http.StatusOK)
		result := testutil.UnmarshalResponse[models.AdvanceResult](t, rr)
		assert.Equal(t, 1, result.UpdatedCount)
		assert.Equal(t, []string{"RA404"}, result.NotFound)

		got, err := store.ListByRegistrationNumbers(context.Background(), []string{"RA001"})
		require.NoError(t, err)
		assert.Equal(t, 2, got[0].Domain1Round)
	})

	t.Run("missing round rejected", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/bulk-update/roster",
			"text/csv", "Register Number\nRA001\n")
		rr := testutil.DoRequest(router, asStaff(req))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("roster without register number column rejected", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/bulk-update/roster?round=2",
			"text/csv", "Name,Email\nAsha,a@b.c\n")
		rr := testutil.DoRequest(router, asStaff(req))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestDashboardStats(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("domain counts", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/domain-counts")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[models.DomainCountsResponse](t, rr)
		assert.Equal(t, map[string]int{
			"technical": 1,
			"creatives": 1,
			"business":  2,
			"events":    0,
		}, resp.DomainCounts)
	})

	t.Run("total registrations", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/total-registrations")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[models.TotalRegistrationsResponse](t, rr)
		assert.Equal(t, 3, resp.TotalRegistrations)
	})
}
