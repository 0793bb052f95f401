package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobmatcher/internal/config"
	"jobmatcher/internal/errors"
	"jobmatcher/internal/observability"
	"jobmatcher/internal/types"
)

func testConfig() *config.Config {
	return &config.Config{
		Matching:  config.MatchingConfig{TopN: 5},
		Extractor: config.ExtractorConfig{Mode: config.ExtractorModeKeyword},
		Server: config.ServerConfig{
			Host:              "localhost",
			Port:              "8080",
			MaxJobsPerRequest: 50,
			MaxRequestBytes:   1048576,
		},
	}
}

func testServer(t *testing.T, cfg *config.Config, serverCfg ServerConfig) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	logger := errors.NewLogger(slog.LevelError)
	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, cfg)
	if err != nil {
		t.Fatalf("NewObservabilityManager() error = %v", err)
	}

	return NewServer(cfg, serverCfg, logger), om
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func sampleJobs() []types.JobRecord {
	return []types.JobRecord{
		{
			ID:          "1",
			Title:       "Backend Engineer",
			Company:     "Acme",
			Description: "We need python and docker experience for our platform team",
			Location:    "London",
			Category:    "IT Jobs",
			SalaryMin:   50000,
			SalaryMax:   70000,
		},
		{
			ID:          "2",
			Title:       "Data Analyst",
			Company:     "Globex",
			Description: "Looking for sql and excel skills with tableau reporting",
			Location:    "Manchester",
			Category:    "IT Jobs",
		},
	}
}

func TestRecommendHandler(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576, MaxJobsPerRequest: 50})
	handler := s.createRecommendHandler(om)

	rec := postJSON(t, handler, "/recommend", RecommendRequest{
		Profile: types.Profile{Skills: []string{"python", "docker"}},
		Jobs:    sampleJobs(),
		TopN:    2,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var recommendations []types.Recommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &recommendations); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(recommendations) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if recommendations[0].Job.ID != "1" {
		t.Errorf("top recommendation job ID = %q, want %q", recommendations[0].Job.ID, "1")
	}
}

func TestRecommendHandlerExtractsSkillsFromExperience(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576, MaxJobsPerRequest: 50})
	handler := s.createRecommendHandler(om)

	rec := postJSON(t, handler, "/recommend", RecommendRequest{
		Profile: types.Profile{Experience: "Five years building services with Python and Docker"},
		Jobs:    sampleJobs(),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRecommendHandlerValidation(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576, MaxJobsPerRequest: 2})
	handler := s.createRecommendHandler(om)

	t.Run("missing jobs", func(t *testing.T) {
		rec := postJSON(t, handler, "/recommend", RecommendRequest{
			Profile: types.Profile{Skills: []string{"python"}},
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("too many jobs", func(t *testing.T) {
		jobs := make([]types.JobRecord, 3)
		for i := range jobs {
			jobs[i] = types.JobRecord{ID: "x", Description: "python"}
		}
		rec := postJSON(t, handler, "/recommend", RecommendRequest{
			Profile: types.Profile{Skills: []string{"python"}},
			Jobs:    jobs,
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("empty profile", func(t *testing.T) {
		rec := postJSON(t, handler, "/recommend", RecommendRequest{
			Jobs: sampleJobs(),
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewReader([]byte("{}")))
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestScoreHandler(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576, MaxJobsPerRequest: 50})
	handler := s.createScoreHandler(om)

	rec := postJSON(t, handler, "/ats-score", ScoreRequest{
		Profile: types.Profile{
			Skills:     []string{"python", "docker"},
			Experience: "5 years of backend work",
			Education:  "BSc Computer Science",
		},
		Job: sampleJobs()[0],
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var score types.ATSScore
	if err := json.Unmarshal(rec.Body.Bytes(), &score); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if score.OverallScore <= 0 || score.OverallScore > 100 {
		t.Errorf("overall score = %v, want within (0, 100]", score.OverallScore)
	}
	if score.Interpretation == "" {
		t.Error("expected a non-empty interpretation")
	}
}

func TestScoreHandlerMissingJobDescription(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576})
	handler := s.createScoreHandler(om)

	rec := postJSON(t, handler, "/ats-score", ScoreRequest{
		Profile: types.Profile{Skills: []string{"python"}},
		Job:     types.JobRecord{Title: "No description"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestInsightsHandler(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576, MaxJobsPerRequest: 50})
	handler := s.createInsightsHandler(om)

	rec := postJSON(t, handler, "/insights", InsightsRequest{Jobs: sampleJobs()})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var insights types.MarketInsights
	if err := json.Unmarshal(rec.Body.Bytes(), &insights); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if insights.TotalJobs != 2 {
		t.Errorf("TotalJobs = %d, want 2", insights.TotalJobs)
	}
	if len(insights.SkillDemand) == 0 {
		t.Error("expected skill demand entries")
	}
}

func TestInsightsHandlerServesCachedCorpus(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576, MaxJobsPerRequest: 50})
	handler := s.createInsightsHandler(om)

	// First request supplies a corpus and snapshots it.
	rec := postJSON(t, handler, "/insights", InsightsRequest{Jobs: sampleJobs()})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if s.JobStore.Len() != 2 {
		t.Fatalf("JobStore.Len() = %d, want 2", s.JobStore.Len())
	}

	// A jobs-less request is served from the snapshot.
	rec = postJSON(t, handler, "/insights", InsightsRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("cached status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var insights types.MarketInsights
	if err := json.Unmarshal(rec.Body.Bytes(), &insights); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if insights.TotalJobs != 2 {
		t.Errorf("TotalJobs = %d, want 2", insights.TotalJobs)
	}
}

func TestInsightsHandlerEmptyStoreRejectsJoblessRequest(t *testing.T) {
	cfg := testConfig()
	s, om := testServer(t, cfg, ServerConfig{MaxRequestSize: 1048576, MaxJobsPerRequest: 50})
	handler := s.createInsightsHandler(om)

	rec := postJSON(t, handler, "/insights", InsightsRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	s, _ := testServer(t, cfg, ServerConfig{APIKeys: []string{"secret-key-123456"}})

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	handler := s.authMiddleware(ok)

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("invalid key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("valid header key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
		req.Header.Set("X-API-Key", "secret-key-123456")
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
		req.Header.Set("Authorization", "Bearer secret-key-123456")
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("no keys configured", func(t *testing.T) {
		open, _ := testServer(t, cfg, ServerConfig{})
		req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
		rec := httptest.NewRecorder()
		open.authMiddleware(ok)(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := testConfig()
	rateLimit := &config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 60,
		BurstCapacity:  2,
		ByIP:           true,
	}
	s, _ := testServer(t, cfg, ServerConfig{RateLimit: rateLimit})
	defer s.RateLimiter.Close()

	handler := s.rateLimitMiddleware()(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/recommend", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		rec := httptest.NewRecorder()
		handler(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests = %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
	}
}

func TestHealthHandlerKeywordMode(t *testing.T) {
	cfg := testConfig()
	s, _ := testServer(t, cfg, ServerConfig{Version: "1.0.0"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.healthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
	if response["service"] != "jobmatcher" {
		t.Errorf("service = %v, want jobmatcher", response["service"])
	}
	extractor, ok := response["extractor"].(map[string]any)
	if !ok {
		t.Fatal("expected extractor status in health response")
	}
	if extractor["available"] != true {
		t.Errorf("extractor available = %v, want true", extractor["available"])
	}
}

func TestStatsHandler(t *testing.T) {
	cfg := testConfig()
	s, _ := testServer(t, cfg, ServerConfig{Version: "1.0.0", MaxRequestSize: 1048576, MaxJobsPerRequest: 50})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	s.statsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response["service"] != "jobmatcher" {
		t.Errorf("service = %v, want jobmatcher", response["service"])
	}
	server, ok := response["server"].(map[string]any)
	if !ok {
		t.Fatal("expected server section in stats response")
	}
	if server["max_jobs_per_request"] != float64(50) {
		t.Errorf("max_jobs_per_request = %v, want 50", server["max_jobs_per_request"])
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"short", "****"},
		{"12345678", "****"},
		{"123456789abcdef", "12345678****"},
	}

	for _, tt := range tests {
		if got := maskAPIKey(tt.input); got != tt.want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	t.Run("x-forwarded-for", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		if got := getClientIP(req); got != "203.0.113.7" {
			t.Errorf("getClientIP() = %q, want %q", got, "203.0.113.7")
		}
	})

	t.Run("x-real-ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "198.51.100.4")
		if got := getClientIP(req); got != "198.51.100.4" {
			t.Errorf("getClientIP() = %q, want %q", got, "198.51.100.4")
		}
	})

	t.Run("remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.9:54321"
		if got := getClientIP(req); got != "192.0.2.9" {
			t.Errorf("getClientIP() = %q, want %q", got, "192.0.2.9")
		}
	})
}

func TestGetRateLimitKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-API-Key", "abc")
	req.RemoteAddr = "192.0.2.9:54321"

	if got := getRateLimitKey(req, true, true); got != "api:abc" {
		t.Errorf("key = %q, want api:abc", got)
	}
	if got := getRateLimitKey(req, false, true); got != "ip:192.0.2.9" {
		t.Errorf("key = %q, want ip:192.0.2.9", got)
	}
	if got := getRateLimitKey(req, false, false); got != "" {
		t.Errorf("key = %q, want empty", got)
	}
}
