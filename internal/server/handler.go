package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"jobmatcher/internal/analytics"
	"jobmatcher/internal/ats"
	"jobmatcher/internal/extraction"
	"jobmatcher/internal/matching"
	"jobmatcher/internal/observability"
	"jobmatcher/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// ensureProfileSkills fills in the profile skill list when the caller
// did not provide one, by running the configured extractor over the
// profile's free text fields.
func (s *Server) ensureProfileSkills(ctx context.Context, om *observability.ObservabilityManager, profile types.Profile) (types.Profile, error) {
	if len(profile.Skills) > 0 {
		return profile, nil
	}

	text := strings.TrimSpace(profile.Experience + "\n" + profile.Education)
	if text == "" {
		return profile, nil
	}

	extractor, err := extraction.NewExtractor(&s.AppConfig.Extractor, s.Logger)
	if err != nil {
		return profile, err
	}
	defer func() {
		if closeErr := extractor.Close(); closeErr != nil {
			s.Logger.LogError(closeErr, "Failed to close extractor")
		}
	}()

	metrics := om.GetMetrics()
	var skills []string
	err = metrics.TrackExtraction(ctx, "profile_skills", func(ctx context.Context) *observability.ExtractionResult {
		extracted, extractErr := extractor.ExtractSkills(ctx, text)
		skills = extracted
		return &observability.ExtractionResult{Error: extractErr}
	}, om)
	if err != nil {
		return profile, err
	}

	profile.Skills = skills
	return profile, nil
}

// validateJobs checks the job corpus size against the per-request cap
func (s *Server) validateJobs(jobs []types.JobRecord) error {
	if len(jobs) == 0 {
		return fmt.Errorf("jobs field is required and must not be empty")
	}
	if s.MaxJobsPerRequest > 0 && len(jobs) > s.MaxJobsPerRequest {
		return fmt.Errorf("too many jobs: %d exceeds limit of %d", len(jobs), s.MaxJobsPerRequest)
	}
	return nil
}

// createRecommendHandler wraps the recommend handler with observability
func (s *Server) createRecommendHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobmatcher.api")
		ctx, span := tracer.Start(ctx, "api.recommend")
		defer span.End()

		var req RecommendRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateJobs(req.Jobs); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid jobs", err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Profile.Skills) == 0 && strings.TrimSpace(req.Profile.Experience) == "" {
			err := fmt.Errorf("missing profile content")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing profile", "profile must carry skills or experience text", http.StatusBadRequest)
			return
		}

		topN := req.TopN
		if topN <= 0 {
			topN = s.AppConfig.Matching.TopN
		}

		span.SetAttributes(
			attribute.Int("request.job_count", len(req.Jobs)),
			attribute.Int("request.top_n", topN),
			attribute.String("operation", "recommend"),
		)

		profile, err := s.ensureProfileSkills(ctx, om, req.Profile)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			writeErrorResponse(w, "Failed to extract profile skills", err.Error(), http.StatusInternalServerError)
			return
		}

		recommender := matching.NewRecommender(s.Logger)
		recommendations := recommender.Recommend(profile, req.Jobs, topN)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "recommendation_served", true, om,
			attribute.Int("request.job_count", len(req.Jobs)),
			attribute.Int("response.recommendation_count", len(recommendations)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.recommendation_count", len(recommendations)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(recommendations); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScoreHandler wraps the ats-score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobmatcher.api")
		ctx, span := tracer.Start(ctx, "api.ats_score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Job.Description) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "job.description field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.Job.Description) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.Job.Description))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("job.description exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.Job.Description)),
			attribute.Int("request.skill_count", len(req.Profile.Skills)),
			attribute.String("operation", "ats_score"),
		)

		profile, err := s.ensureProfileSkills(ctx, om, req.Profile)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			writeErrorResponse(w, "Failed to extract profile skills", err.Error(), http.StatusInternalServerError)
			return
		}

		scorer := ats.NewScorer(s.Logger)
		result := scorer.Score(profile, req.Job)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "score_computed", true, om,
			attribute.Float64("ats.overall_score", result.OverallScore),
			attribute.String("ats.interpretation", string(result.Interpretation)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("ats.overall_score", result.OverallScore),
			attribute.String("ats.interpretation", string(result.Interpretation)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createInsightsHandler wraps the market insights handler with observability
func (s *Server) createInsightsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobmatcher.api")
		ctx, span := tracer.Start(ctx, "api.insights")
		defer span.End()

		var req InsightsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// A request without jobs is served from the last corpus this
		// server saw. A request with jobs refreshes that snapshot.
		jobs := req.Jobs
		fromCache := false
		if len(jobs) == 0 {
			jobs = s.JobStore.Jobs()
			fromCache = true
		}

		if err := s.validateJobs(jobs); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid jobs", err.Error(), http.StatusBadRequest)
			return
		}
		if !fromCache {
			s.JobStore.Put(jobs)
		}

		span.SetAttributes(
			attribute.Int("request.job_count", len(jobs)),
			attribute.Bool("request.cached_corpus", fromCache),
			attribute.String("operation", "insights"),
		)

		result := analytics.Insights(jobs)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "insights_computed", true, om,
			attribute.Int("request.job_count", len(jobs)),
			attribute.Int("insights.skill_count", len(result.SkillDemand)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("insights.skill_count", len(result.SkillDemand)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
