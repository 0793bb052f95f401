package jobsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPayload = `{
	"results": [
		{
			"id": "12345",
			"title": "Python Developer",
			"company": {"display_name": "Acme"},
			"description": "Django services on AWS",
			"location": {"display_name": "London, UK"},
			"salary_min": 40000,
			"salary_max": 60000,
			"category": {"label": "IT Jobs"},
			"redirect_url": "https://example.com/jobs/12345",
			"created": "2026-08-30T12:34:56Z"
		},
		{
			"id": "67890",
			"title": "Data Engineer",
			"company": {},
			"description": "Pipelines",
			"location": {},
			"category": {}
		}
	]
}`

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{
		BaseURL: ts.URL,
		AppID:   "test-id",
		AppKey:  "test-key",
		Country: "gb",
	}, nil)
	require.NoError(t, err)
	return client, ts
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.Error(t, err)
}

func TestSearchMapsResults(t *testing.T) {
	var gotQuery map[string]string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"app_id":           r.URL.Query().Get("app_id"),
			"what":             r.URL.Query().Get("what"),
			"results_per_page": r.URL.Query().Get("results_per_page"),
			"sort_by":          r.URL.Query().Get("sort_by"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	})

	jobs, err := client.Search(context.Background(), SearchQuery{What: "python", ResultsPerPage: 25})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "test-id", gotQuery["app_id"])
	assert.Equal(t, "python", gotQuery["what"])
	assert.Equal(t, "25", gotQuery["results_per_page"])
	assert.Equal(t, "date", gotQuery["sort_by"])

	first := jobs[0]
	assert.Equal(t, "12345", first.ID)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "London, UK", first.Location)
	assert.Equal(t, "IT Jobs", first.Category)
	assert.Equal(t, "2026-08-30", first.DatePosted)
	assert.InDelta(t, 40000, first.SalaryMin, 1e-9)

	// Missing upstream fields get tolerant defaults.
	second := jobs[1]
	assert.Equal(t, "Unknown", second.Company)
	assert.Empty(t, second.Location)
	assert.Empty(t, second.DatePosted)
}

func TestSearchCapsPageSize(t *testing.T) {
	var perPage string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		perPage = r.URL.Query().Get("results_per_page")
		w.Write([]byte(`{"results": []}`))
	})

	_, err := client.Search(context.Background(), SearchQuery{ResultsPerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, "50", perPage)
}

func TestSearchErrorStatus(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	_, err := client.Search(context.Background(), SearchQuery{What: "python"})
	assert.Error(t, err)
}

func TestSearchContextCancelled(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Search(ctx, SearchQuery{What: "python"})
	assert.Error(t, err)
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore()
	assert.Zero(t, store.Len())
	assert.True(t, store.FetchedAt().IsZero())

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPayload))
	})
	jobs, err := client.Search(context.Background(), SearchQuery{})
	require.NoError(t, err)

	store.Put(jobs)
	assert.Equal(t, 2, store.Len())
	assert.WithinDuration(t, time.Now(), store.FetchedAt(), time.Minute)

	// Mutating the returned slice must not affect the store.
	got := store.Jobs()
	got[0].Title = "changed"
	assert.Equal(t, "Python Developer", store.Jobs()[0].Title)
}
