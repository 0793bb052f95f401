package ats

import (
	"jobmatcher/internal/textproc"
	"jobmatcher/internal/types"
)

const (
	// Keyword budgets for the two sides of the comparison.
	jobKeywordBudget    = 30
	resumeKeywordBudget = 50

	// Reported list caps.
	maxMatchedKeywords = 15
	maxMissingKeywords = 10
)

// keywordMatch scores how many of the job's top keywords appear among
// the resume's top keywords. The score is the percentage of job
// keywords matched; a job with no extractable keywords scores zero.
func keywordMatch(resumeText, jobText string) types.KeywordMatch {
	jobKeywords := textproc.ExtractKeywords(jobText, jobKeywordBudget)
	resumeKeywords := textproc.ExtractKeywords(resumeText, resumeKeywordBudget)

	if len(jobKeywords) == 0 {
		return types.KeywordMatch{
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
		}
	}

	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeSet[kw] = true
	}

	matched := make([]string, 0, len(jobKeywords))
	missing := make([]string, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		if resumeSet[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := float64(len(matched)) / float64(len(jobKeywords)) * 100

	if len(matched) > maxMatchedKeywords {
		matched = matched[:maxMatchedKeywords]
	}
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	return types.KeywordMatch{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}
