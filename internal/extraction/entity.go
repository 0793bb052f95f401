package extraction

import (
	"context"
	"crypto/rand"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"jobmatcher/internal/config"
	"jobmatcher/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

const systemPrompt = `You are a technical recruiter assistant. Extract the concrete skills, technologies and tools mentioned in the text.

- Only list skills that are explicitly present in the text
- Use short lowercase names (e.g. "python", "docker", "machine learning")
- Do not invent skills or infer them from the company or role`

const userPromptTemplate = `Extract the skills mentioned in the following text:

%s`

const modelCheckTimeout = 10 * time.Second

// EntityExtractor extracts skills by asking the Gemini API to identify
// them as entities in the text. When the API call fails it falls back
// to the keyword extractor so callers always get a usable result.
type EntityExtractor struct {
	client       *genai.Client
	config       *config.ExtractorConfig
	breaker      *ExtractionCircuitBreaker
	modelBreaker *ModelCircuitBreaker
	fallback     *KeywordExtractor
	logger       *errors.Logger
}

var _ SkillExtractor = (*EntityExtractor)(nil)

// NewEntityExtractor creates an entity extractor backed by the Gemini
// API.
func NewEntityExtractor(cfg *config.ExtractorConfig, logger *errors.Logger) (*EntityExtractor, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"Failed to create Gemini client", err)
	}

	return &EntityExtractor{
		client:       client,
		config:       cfg,
		breaker:      NewExtractionCircuitBreaker("skills", cfg, logger),
		modelBreaker: NewModelCircuitBreaker("skills", cfg, logger),
		fallback:     NewKeywordExtractor(),
		logger:       logger,
	}, nil
}

// skillResponse is the JSON shape the model is constrained to return.
type skillResponse struct {
	Skills []string `json:"skills"`
}

// ExtractSkills asks the model for the skills present in the text.
// API failures are logged and answered from the keyword fallback.
func (e *EntityExtractor) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	tracer := otel.Tracer("jobmatcher.extraction.gemini")
	ctx, span := tracer.Start(ctx, "gemini.extract_skills")
	defer span.End()

	span.SetAttributes(
		attribute.String("extraction.provider", "gemini"),
		attribute.String("extraction.model", e.config.Model),
		attribute.Int("input.text_length", len(text)),
	)

	callCtx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	result, err := e.breaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return e.executeWithRetry(callCtx, "extract_skills", func() (*genai.GenerateContentResponse, error) {
			return e.client.Models.GenerateContent(callCtx, e.config.Model,
				genai.Text(fmt.Sprintf(userPromptTemplate, text)), e.buildSkillSchema())
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false), attribute.Bool("fallback", true))
		e.logger.Warn("Entity extraction failed, falling back to keyword matching",
			"model", e.config.Model,
			"error", err.Error())
		return e.fallback.ExtractSkills(ctx, text)
	}

	var output skillResponse
	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false), attribute.Bool("fallback", true))
		e.logger.Warn("Entity extraction returned unparseable response, falling back to keyword matching",
			"model", e.config.Model,
			"error", err.Error())
		return e.fallback.ExtractSkills(ctx, text)
	}

	if usage := extractTokenUsage(result); usage != nil {
		span.SetAttributes(
			attribute.Int64("extraction.tokens.input", usage.InputTokens),
			attribute.Int64("extraction.tokens.output", usage.OutputTokens),
			attribute.Int64("extraction.tokens.total", usage.TotalTokens),
		)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("output.skill_count", len(output.Skills)),
	)
	if output.Skills == nil {
		output.Skills = []string{}
	}
	return output.Skills, nil
}

// Mode identifies the extractor strategy.
func (e *EntityExtractor) Mode() string {
	return "entity"
}

// Close implements SkillExtractor. The Gemini client has no Close in
// single-shot usage.
func (e *EntityExtractor) Close() error {
	return nil
}

// ModelInfo describes the availability of the configured model.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured
// model.
func (e *EntityExtractor) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      e.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	model, err := e.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return e.client.Models.Get(checkCtx, e.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)
		e.logger.Warn("Model availability check failed",
			"model", e.config.Model,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	e.logger.Debug("Model availability check successful",
		"model", e.config.Model,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// GetCircuitBreakerStats returns combined circuit breaker statistics.
func (e *EntityExtractor) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"extraction_operations": e.breaker.GetStats(),
		"model_operations":      e.modelBreaker.GetModelStats(),
	}
	stats["overall_healthy"] = e.breaker.IsHealthy() && e.modelBreaker.IsModelHealthy()
	return stats
}

// executeWithRetry runs an API call with retry logic and exponential
// backoff.
func (e *EntityExtractor) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= e.config.MaxRetries; attempt++ {
		if attempt > 0 {
			e.logger.Warn("Retrying extraction operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", e.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				e.logger.Info("Extraction operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			e.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	e.logger.LogError(lastErr, "Extraction operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", e.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, e.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// buildSkillSchema constrains the model response to a JSON skill list.
func (e *EntityExtractor) buildSkillSchema() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"skills"},
		},
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	if e.config.Temperature > 0 {
		temperature := e.config.Temperature
		cfg.Temperature = &temperature
	}

	return cfg
}

// TokenUsage represents token usage reported by the API.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from a Gemini
// response.
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
