package ats

import (
	"strings"

	"jobmatcher/internal/errors"
	"jobmatcher/internal/textproc"
)

// experienceIndicators are words whose presence on both sides signals
// that an experience comparison is meaningful.
var experienceIndicators = []string{
	"year", "years", "experience", "worked", "developed", "managed", "led",
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// experienceMatch scores the user's experience text against the job
// text. When both sides carry experience indicators the score is the
// TF-IDF cosine similarity of the two texts scaled to 0-100; a failed
// vectorization degrades to experienceVectorFallback, a missing signal
// on either side to experienceNeutralFallback.
func experienceMatch(userExperience, jobText string, logger *errors.Logger) float64 {
	if userExperience == "" || jobText == "" {
		return experienceNeutralFallback
	}

	expLower := strings.ToLower(userExperience)
	jobLower := strings.ToLower(jobText)
	if !containsAny(expLower, experienceIndicators) || !containsAny(jobLower, experienceIndicators) {
		return experienceNeutralFallback
	}

	vs, err := textproc.NewVectorSpace([]string{expLower, jobLower}, textproc.Options{
		MaxDocFreq: 1.0,
		MinDocFreq: 1,
	})
	if err != nil {
		if logger != nil {
			logger.LogError(err, "experience match degraded to fallback score")
		}
		return experienceVectorFallback
	}
	return textproc.Cosine(vs.Vector(0), vs.Vector(1)) * 100
}
