package ats

import (
	"fmt"
	"math"
	"strings"

	"jobmatcher/internal/errors"
	"jobmatcher/internal/types"
)

// Sub-score weights. They must sum to 1.
const (
	weightKeywords   = 0.35
	weightSkills     = 0.35
	weightExperience = 0.20
	weightEducation  = 0.10
)

// Interpretation thresholds for the overall score.
const (
	thresholdExcellent = 80
	thresholdGood      = 60
	thresholdFair      = 40
)

// Fallback scores used when a sub-score cannot be computed properly.
const (
	skillsMatchedFallback      = 100
	skillsNeutralFallback      = 50
	experienceNeutralFallback  = 50
	experienceVectorFallback   = 60
	educationNeutralFallback   = 50
	educationNoRequirement     = 80
	educationUnknownFallback   = 40
	suggestExperienceThreshold = 60
	suggestKeywordThreshold    = 70
)

// Suggestion list caps.
const (
	suggestKeywordCount = 5
	suggestSkillCount   = 3
)

// Scorer computes ATS compatibility scores for profile/job pairs.
type Scorer struct {
	logger *errors.Logger
}

// NewScorer creates a scorer. A nil logger disables degradation logging.
func NewScorer(logger *errors.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// resumeText flattens the profile fields compared against job keywords.
func resumeText(profile types.Profile) string {
	return strings.TrimSpace(strings.Join([]string{
		strings.Join(profile.Skills, " "),
		profile.Education,
		profile.Experience,
	}, " "))
}

// scoringJobText is the job side of the comparison: title, description
// and category. The company name is not part of it.
func scoringJobText(job types.JobRecord) string {
	return strings.TrimSpace(strings.Join([]string{
		job.Title,
		job.Description,
		job.Category,
	}, " "))
}

// Score computes the weighted ATS score of a profile against a job,
// with the full sub-score breakdown and improvement suggestions. It is
// a total function: degenerate inputs produce fallback sub-scores, not
// errors.
func (s *Scorer) Score(profile types.Profile, job types.JobRecord) types.ATSScore {
	resume := resumeText(profile)
	jobText := scoringJobText(job)

	keyword := keywordMatch(resume, jobText)
	skills := skillsMatch(profile.Skills, jobText)
	experience := experienceMatch(profile.Experience, jobText, s.logger)
	education := educationMatch(profile.Education, jobText)

	overall := keyword.Score*weightKeywords +
		skills.Score*weightSkills +
		experience*weightExperience +
		education*weightEducation
	overall = math.Round(overall*10) / 10

	return types.ATSScore{
		OverallScore:    overall,
		Interpretation:  interpret(overall),
		KeywordMatch:    keyword,
		SkillsMatch:     skills,
		ExperienceScore: experience,
		EducationScore:  education,
		Suggestions:     suggestions(keyword, skills, experience),
	}
}

func interpret(overall float64) types.Interpretation {
	switch {
	case overall >= thresholdExcellent:
		return types.InterpretationExcellent
	case overall >= thresholdGood:
		return types.InterpretationGood
	case overall >= thresholdFair:
		return types.InterpretationFair
	default:
		return types.InterpretationNeedsImprovement
	}
}

// suggestions assembles improvement advice in a fixed order so output
// stays deterministic.
func suggestions(keyword types.KeywordMatch, skills types.SkillsMatch, experienceScore float64) []string {
	out := make([]string, 0, 4)

	if len(keyword.MissingKeywords) > 0 {
		top := keyword.MissingKeywords
		if len(top) > suggestKeywordCount {
			top = top[:suggestKeywordCount]
		}
		out = append(out, fmt.Sprintf("Add these keywords: %s", strings.Join(top, ", ")))
	}
	if len(skills.MissingSkills) > 0 {
		top := skills.MissingSkills
		if len(top) > suggestSkillCount {
			top = top[:suggestSkillCount]
		}
		out = append(out, fmt.Sprintf("Consider learning: %s", strings.Join(top, ", ")))
	}
	if experienceScore < suggestExperienceThreshold {
		out = append(out, "Expand your experience section with quantifiable achievements")
	}
	if keyword.Score < suggestKeywordThreshold {
		out = append(out, "Tailor your resume to match job description keywords")
	}
	return out
}
