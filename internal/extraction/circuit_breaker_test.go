package extraction

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"jobmatcher/internal/config"
	"jobmatcher/internal/errors"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.ExtractorConfig {
	return &config.ExtractorConfig{
		Mode:  config.ExtractorModeEntity,
		Model: "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestCircuitBreakerNaming(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	cb := NewExtractionCircuitBreaker("skills", breakerConfig(true), logger)
	if cb == nil {
		t.Fatal("Circuit breaker should not be nil when enabled")
	}

	stats := cb.GetStats()
	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Circuit breaker name not found")
	}
	if name != "Extraction-skills" {
		t.Errorf("Expected circuit breaker name 'Extraction-skills', got '%s'", name)
	}

	state, ok := stats["state"].(string)
	if !ok {
		t.Fatal("Circuit breaker state not found")
	}
	if state != "closed" {
		t.Errorf("Expected initial state 'closed', got '%s'", state)
	}

	if !cb.IsHealthy() {
		t.Error("Circuit breaker should be healthy initially")
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	cb := NewExtractionCircuitBreaker("skills", breakerConfig(false), logger)
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}

	// A nil breaker still executes calls and reports healthy.
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return nil, stderrors.New("boom")
	})
	if err == nil || err.Error() != "boom" {
		t.Errorf("Expected passthrough error 'boom', got %v", err)
	}
	if !cb.IsHealthy() {
		t.Error("Nil circuit breaker should report healthy")
	}

	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("Nil circuit breaker stats should report enabled=false")
	}
}

func TestModelCircuitBreakerNaming(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	cb := NewModelCircuitBreaker("skills", breakerConfig(true), logger)
	if cb == nil {
		t.Fatal("Model circuit breaker should not be nil when enabled")
	}

	stats := cb.GetModelStats()
	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Circuit breaker name not found")
	}
	if name != "Extraction-Model-skills" {
		t.Errorf("Expected circuit breaker name 'Extraction-Model-skills', got '%s'", name)
	}

	if !cb.IsModelHealthy() {
		t.Error("Model circuit breaker should be healthy initially")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil error", nil, false},
		{"plain error", stderrors.New("bad input"), false},
		{"rate limited", &googleapi.Error{Code: http.StatusTooManyRequests}, true},
		{"server error", &googleapi.Error{Code: http.StatusInternalServerError}, true},
		{"bad gateway", &googleapi.Error{Code: http.StatusBadGateway}, true},
		{"unavailable", &googleapi.Error{Code: http.StatusServiceUnavailable}, true},
		{"gateway timeout", &googleapi.Error{Code: http.StatusGatewayTimeout}, true},
		{"unauthorized", &googleapi.Error{Code: http.StatusUnauthorized}, false},
		{"bad request", &googleapi.Error{Code: http.StatusBadRequest}, false},
		{"wrapped rate limit", fmt.Errorf("call failed: %w", &googleapi.Error{Code: http.StatusTooManyRequests}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.retryable {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.retryable)
			}
		})
	}
}
