package textproc

import (
	"jobmatcher/internal/errors"
)

// SimilarityEngine scores how closely a profile matches each of a set of
// job texts in a shared TF-IDF vector space.
type SimilarityEngine struct {
	logger *errors.Logger
	opts   Options
}

// NewSimilarityEngine creates an engine with the default vector space
// settings. A nil logger disables degradation logging.
func NewSimilarityEngine(logger *errors.Logger) *SimilarityEngine {
	return &SimilarityEngine{
		logger: logger,
		opts:   DefaultOptions(),
	}
}

// Similarity fits one space over the profile text plus all job texts and
// returns the cosine similarity of the profile against each job, in job
// order. Scores are in [0,1]. Any degenerate input (no jobs, blank
// profile, empty vocabulary) yields all zeros rather than an error.
func (e *SimilarityEngine) Similarity(profileText string, jobTexts []string) []float64 {
	scores := make([]float64, len(jobTexts))
	if len(jobTexts) == 0 || Normalize(profileText) == "" {
		return scores
	}

	docs := make([]string, 0, len(jobTexts)+1)
	docs = append(docs, profileText)
	docs = append(docs, jobTexts...)

	vs, err := NewVectorSpace(docs, e.opts)
	if err != nil {
		if e.logger != nil {
			e.logger.LogError(err, "similarity degraded to zero scores", "jobs", len(jobTexts))
		}
		return scores
	}

	profile := vs.Vector(0)
	for i := range jobTexts {
		s := Cosine(profile, vs.Vector(i+1))
		// Guard against float drift outside the unit interval.
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
		scores[i] = s
	}
	return scores
}
