package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	cfg.applyFallbacks()
	return &cfg
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaultConfig(t)
	assert.NoError(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, ExtractorModeKeyword, cfg.Extractor.Mode)
	assert.Equal(t, 10, cfg.Matching.TopN)
	assert.Equal(t, "gb", cfg.JobSource.Country)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.MaxJobsPerRequest)
	assert.Equal(t, "disabled", cfg.Server.TLS.Mode)
	assert.Equal(t, "json", cfg.App.DefaultFormat)
	assert.Equal(t, 30*time.Second, cfg.Extractor.Timeout)
	assert.True(t, cfg.Extractor.CircuitBreaker.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "entity mode requires api key",
			mutate:  func(c *Config) { c.Extractor.Mode = ExtractorModeEntity },
			wantErr: "extractor API key",
		},
		{
			name: "entity mode with api key is valid",
			mutate: func(c *Config) {
				c.Extractor.Mode = ExtractorModeEntity
				c.Extractor.APIKey = "key"
			},
		},
		{
			name:    "unknown extractor mode",
			mutate:  func(c *Config) { c.Extractor.Mode = "telepathy" },
			wantErr: "invalid extractor mode",
		},
		{
			name:    "topN must be positive",
			mutate:  func(c *Config) { c.Matching.TopN = 0 },
			wantErr: "topN",
		},
		{
			name:    "missing server port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "server port",
		},
		{
			name:    "default format must be supported",
			mutate:  func(c *Config) { c.App.DefaultFormat = "xml" },
			wantErr: "invalid default format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr bool
	}{
		{
			name: "disabled mode needs nothing",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name:    "server mode requires cert and key",
			tls:     TLSConfig{Mode: "server"},
			wantErr: true,
		},
		{
			name: "server mode with files",
			tls:  TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem"},
		},
		{
			name:    "mutual mode requires ca",
			tls:     TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem"},
			wantErr: true,
		},
		{
			name: "mutual mode complete",
			tls: TLSConfig{
				Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem",
				CAFile: "ca.pem", ClientAuthPolicy: "require",
			},
		},
		{
			name:    "invalid mode",
			tls:     TLSConfig{Mode: "sideways"},
			wantErr: true,
		},
		{
			name:    "invalid min version",
			tls:     TLSConfig{Mode: "disabled", MinVersion: "1.0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			cfg.Server.TLS = tt.tls
			err := cfg.ValidateTLSConfig()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAPIKeyFallbackFromEnv(t *testing.T) {
	t.Setenv("JOBMATCHER_SERVER_APIKEYS", " key-one , key-two ")

	cfg := defaultConfig(t)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Server.APIKeys)
}

func TestServiceInstanceGenerated(t *testing.T) {
	cfg := defaultConfig(t)
	assert.NotEmpty(t, cfg.Observability.ServiceInstance)
	assert.Contains(t, cfg.Observability.ServiceInstance, "jobmatcher")
}
