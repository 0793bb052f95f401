// Package jobsource fetches job postings from an Adzuna-compatible
// search API.
package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"jobmatcher/internal/errors"
	"jobmatcher/internal/types"
)

const (
	defaultBaseURL = "https://api.adzuna.com/v1/api/jobs"
	defaultCountry = "gb"
	defaultTimeout = 10 * time.Second

	// The API rejects larger pages.
	maxResultsPerPage = 50
)

// Config holds job source client settings.
type Config struct {
	BaseURL           string
	AppID             string
	AppKey            string
	Country           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// SearchQuery describes one search request.
type SearchQuery struct {
	What           string
	SalaryMin      float64
	SalaryMax      float64
	ResultsPerPage int
	Page           int
}

// Client is a rate-limited job search API client.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *errors.Logger
}

// NewClient validates the configuration and builds a client. A nil
// logger disables request logging.
func NewClient(cfg Config, logger *errors.Logger) (*Client, error) {
	if cfg.AppID == "" || cfg.AppKey == "" {
		return nil, errors.NewConfigError(errors.ErrCodeMissingAPIKey, "job source credentials are required", nil)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = defaultCountry
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		logger:     logger,
	}, nil
}

// apiJob mirrors the upstream search result schema.
type apiJob struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Description string `json:"description"`
	Location    struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	SalaryMin float64 `json:"salary_min"`
	SalaryMax float64 `json:"salary_max"`
	Category  struct {
		Label string `json:"label"`
	} `json:"category"`
	RedirectURL string `json:"redirect_url"`
	Created     string `json:"created"`
}

type apiResponse struct {
	Results []apiJob `json:"results"`
}

// Search fetches one page of postings matching the query. The call
// blocks on the rate limiter first, so a cancelled context returns
// before any network traffic.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]types.JobRecord, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.NewNetworkError(errors.ErrCodeJobSourceThrottled, "rate limit wait aborted", err)
		}
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	perPage := q.ResultsPerPage
	if perPage <= 0 || perPage > maxResultsPerPage {
		perPage = maxResultsPerPage
	}

	endpoint := fmt.Sprintf("%s/%s/search/%d", c.cfg.BaseURL, c.cfg.Country, page)
	params := url.Values{}
	params.Set("app_id", c.cfg.AppID)
	params.Set("app_key", c.cfg.AppKey)
	params.Set("results_per_page", strconv.Itoa(perPage))
	params.Set("sort_by", "date")
	if q.What != "" {
		params.Set("what", q.What)
	}
	if q.SalaryMin > 0 {
		params.Set("salary_min", strconv.FormatFloat(q.SalaryMin, 'f', -1, 64))
	}
	if q.SalaryMax > 0 {
		params.Set("salary_max", strconv.FormatFloat(q.SalaryMax, 'f', -1, 64))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeJobSourceFailed, "failed to build search request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(errors.ErrCodeJobSourceFailed, "job search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewNetworkError(errors.ErrCodeJobSourceFailed,
			fmt.Sprintf("job search returned status %d", resp.StatusCode), nil).
			WithContext("status", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.NewNetworkError(errors.ErrCodeInvalidFormat, "failed to decode job search response", err)
	}

	jobs := make([]types.JobRecord, 0, len(body.Results))
	for _, j := range body.Results {
		jobs = append(jobs, mapJob(j))
	}

	if c.logger != nil {
		c.logger.Debug("job search completed", "what", q.What, "results", len(jobs))
	}
	return jobs, nil
}

// mapJob converts an upstream result to the internal record shape,
// applying the same tolerant defaults the rest of the system expects.
func mapJob(j apiJob) types.JobRecord {
	company := j.Company.DisplayName
	if company == "" {
		company = "Unknown"
	}
	datePosted := j.Created
	if len(datePosted) > 10 {
		datePosted = datePosted[:10]
	}
	return types.JobRecord{
		ID:          j.ID,
		Title:       j.Title,
		Company:     company,
		Description: j.Description,
		Location:    j.Location.DisplayName,
		Category:    j.Category.Label,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		URL:         j.RedirectURL,
		DatePosted:  datePosted,
	}
}
