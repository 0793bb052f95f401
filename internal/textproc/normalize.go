package textproc

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces anything outside [a-z0-9\s] with a
// space, collapses whitespace runs and trims the result. It never fails
// and is idempotent.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	cleaned := nonAlphanumeric.ReplaceAllString(lowered, " ")
	collapsed := whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(collapsed)
}

// Tokenize normalizes text and splits it into word tokens. Tokens shorter
// than two characters are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Terms produces the feature terms for a document: stop-word-filtered
// unigrams, plus adjacent bigrams when enabled.
func Terms(text string, bigrams bool) []string {
	tokens := Tokenize(text)
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsStopWord(t) {
			kept = append(kept, t)
		}
	}

	if !bigrams {
		return kept
	}

	terms := make([]string, 0, 2*len(kept))
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}
