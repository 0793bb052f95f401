package extraction

import (
	"context"
	"strings"

	"jobmatcher/internal/matching"
	"jobmatcher/internal/textproc"
)

// KeywordExtractor matches a fixed skill vocabulary against normalized
// text. It is deterministic, needs no credentials, and is the default
// extractor mode.
type KeywordExtractor struct {
	vocabulary []string
}

// NewKeywordExtractor creates a keyword extractor over the standard
// skill vocabulary.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{vocabulary: matching.SkillVocabulary}
}

// NewKeywordExtractorWithVocabulary creates a keyword extractor over a
// custom vocabulary. Terms are matched in the given order.
func NewKeywordExtractorWithVocabulary(vocabulary []string) *KeywordExtractor {
	return &KeywordExtractor{vocabulary: vocabulary}
}

// ExtractSkills returns the vocabulary terms present in the text, in
// vocabulary order. Matching is done against the normalized text so
// punctuation and casing do not matter.
func (k *KeywordExtractor) ExtractSkills(_ context.Context, text string) ([]string, error) {
	normalized := textproc.Normalize(text)
	if normalized == "" {
		return []string{}, nil
	}

	skills := make([]string, 0, 8)
	for _, term := range k.vocabulary {
		if strings.Contains(normalized, term) {
			skills = append(skills, term)
		}
	}
	return skills, nil
}

// Mode identifies the extractor strategy.
func (k *KeywordExtractor) Mode() string {
	return "keyword"
}

// Close implements SkillExtractor. The keyword extractor holds no
// resources.
func (k *KeywordExtractor) Close() error {
	return nil
}
