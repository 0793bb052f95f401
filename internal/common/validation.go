package common

import (
	"fmt"
	"slices"
	"strings"
)

// NormalizeOutputFormat lowercases the requested format and validates it
// against the configured supported formats. An empty supported list means
// no restriction.
func NormalizeOutputFormat(format string, supportedFormats []string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))

	if len(supportedFormats) == 0 {
		return normalized, nil
	}
	if slices.Contains(supportedFormats, normalized) {
		return normalized, nil
	}

	return "", fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// ValidateOutputFormat validates format against configured supported formats
func ValidateOutputFormat(format string, supportedFormats []string) error {
	_, err := NormalizeOutputFormat(format, supportedFormats)
	return err
}

// ValidateTopN bounds a recommendation count request. Zero means "use the
// configured default" and is allowed; negative counts are not.
func ValidateTopN(topN, maxTopN int) error {
	if topN < 0 {
		return fmt.Errorf("top must not be negative, got %d", topN)
	}
	if maxTopN > 0 && topN > maxTopN {
		return fmt.Errorf("top must not exceed %d, got %d", maxTopN, topN)
	}
	return nil
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
