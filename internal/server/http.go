package server

import (
	"time"

	"jobmatcher/internal/config"
	jmErrors "jobmatcher/internal/errors"
	"jobmatcher/internal/jobsource"
	"jobmatcher/internal/types"
)

// RecommendRequest represents the request body for the recommend endpoint
// ScoreRequest represents the request body for the ats-score endpoint
// ErrorResponse represents an error response
type RecommendRequest struct {
	Profile types.Profile     `json:"profile"`
	Jobs    []types.JobRecord `json:"jobs"`
	TopN    int               `json:"topN,omitempty"`
}

type ScoreRequest struct {
	Profile types.Profile   `json:"profile"`
	Job     types.JobRecord `json:"job"`
}

type InsightsRequest struct {
	Jobs []types.JobRecord `json:"jobs"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request limits
	MaxRequestSize    int64
	MaxJobsPerRequest int

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Last job corpus served through the API, reusable by requests
	// that omit the jobs field
	JobStore *jobsource.Store

	// Logger
	Logger *jmErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host              string
	Port              string
	Version           string
	TLSConfig         config.TLSConfig
	APIKeys           []string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxRequestSize    int64
	MaxJobsPerRequest int
	RateLimit         *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *jmErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:              cfg.Host,
		Port:              cfg.Port,
		Version:           cfg.Version,
		AppConfig:         appCfg,
		TLSConfig:         cfg.TLSConfig,
		APIKeys:           apiKeyMap,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxRequestSize:    cfg.MaxRequestSize,
		MaxJobsPerRequest: cfg.MaxJobsPerRequest,
		RateLimit:         cfg.RateLimit,
		RateLimiter:       rateLimiter,
		JobStore:          jobsource.NewStore(),
		Logger:            logger,
	}
}
