package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Matching Configuration
	v.SetDefault("matching.topN", 10)

	// Extractor Configuration
	v.SetDefault("extractor.mode", ExtractorModeKeyword)
	v.SetDefault("extractor.model", "gemini-2.0-flash")
	v.SetDefault("extractor.apiKey", "")
	v.SetDefault("extractor.timeout", 30*time.Second)
	v.SetDefault("extractor.maxRetries", 2)
	v.SetDefault("extractor.temperature", 0.1) // Low temperature for consistent extraction

	// Circuit Breaker Configuration for the entity extractor
	v.SetDefault("extractor.circuitBreaker.enabled", true)
	v.SetDefault("extractor.circuitBreaker.maxRequests", 3)
	v.SetDefault("extractor.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("extractor.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("extractor.circuitBreaker.minRequests", 3)
	v.SetDefault("extractor.circuitBreaker.failureThreshold", 0.6)

	// Job Source Configuration
	v.SetDefault("jobsource.baseURL", "https://api.adzuna.com/v1/api/jobs")
	v.SetDefault("jobsource.appID", "")
	v.SetDefault("jobsource.appKey", "")
	v.SetDefault("jobsource.country", "gb")
	v.SetDefault("jobsource.timeout", 10*time.Second)
	v.SetDefault("jobsource.requestsPerSecond", 2.0)
	v.SetDefault("jobsource.burst", 2)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.maxJobsPerRequest", 50)
	v.SetDefault("server.maxRequestBytes", 2*1024*1024) // 2MB

	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server, mutual
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.caFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")           // TLS 1.2 minimum
	v.SetDefault("server.tls.clientAuthPolicy", "require") // require, request, verify
	v.SetDefault("server.tls.insecureSkipVerify", false)

	// Auto-reload configuration defaults
	v.SetDefault("server.tls.autoReload.enabled", true)
	v.SetDefault("server.tls.autoReload.debounceDelay", time.Second)
	v.SetDefault("server.tls.autoReload.maxRetries", 3)
	v.SetDefault("server.tls.autoReload.retryDelay", 10*time.Second)

	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})

	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "jobmatcher")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})
}
