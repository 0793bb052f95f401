package extraction

import (
	"context"
	"fmt"

	"jobmatcher/internal/config"
	"jobmatcher/internal/errors"
)

// SkillExtractor pulls a list of skills out of free-form text such as a
// job description or a profile summary.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, text string) ([]string, error)
	Mode() string
	Close() error
}

// NewExtractor builds the extractor selected by the configuration.
// Keyword mode works offline against the built-in vocabulary; entity
// mode calls the Gemini API and falls back to keyword matching when the
// API is unavailable.
func NewExtractor(cfg *config.ExtractorConfig, logger *errors.Logger) (SkillExtractor, error) {
	switch cfg.Mode {
	case config.ExtractorModeKeyword, "":
		return NewKeywordExtractor(), nil
	case config.ExtractorModeEntity:
		return NewEntityExtractor(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported extractor mode: %s", cfg.Mode), nil)
	}
}
