package ats

import (
	"strings"

	"jobmatcher/internal/types"
)

// commonSkills is the fixed vocabulary scanned for in job text to infer
// which skills a posting requires.
var commonSkills = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node",
	"sql", "mysql", "postgresql", "mongodb", "aws", "azure", "docker",
	"kubernetes", "git", "agile", "scrum", "machine learning", "ai",
	"data science", "html", "css", "typescript", "c++", "c#", "php",
}

const maxReportedSkills = 10

// skillsMatch compares the user's skills against skills the job text
// appears to require. With no inferred requirements the score falls
// back to skillsMatchedFallback when any user skill appears in the job
// text and skillsNeutralFallback otherwise.
func skillsMatch(userSkills []string, jobText string) types.SkillsMatch {
	jobLower := strings.ToLower(jobText)

	userList := make([]string, 0, len(userSkills))
	userSet := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		lowered := strings.ToLower(strings.TrimSpace(s))
		if lowered == "" {
			continue
		}
		userList = append(userList, lowered)
		userSet[lowered] = true
	}

	matched := make([]string, 0, len(userList))
	for _, skill := range userList {
		if strings.Contains(jobLower, skill) {
			matched = append(matched, skill)
		}
	}

	required := make([]string, 0, len(commonSkills))
	for _, skill := range commonSkills {
		if strings.Contains(jobLower, skill) {
			required = append(required, skill)
		}
	}
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if !userSet[skill] {
			missing = append(missing, skill)
		}
	}

	var score float64
	if len(required) > 0 {
		score = float64(len(matched)) / float64(len(required)) * 100
	} else if len(matched) > 0 {
		score = skillsMatchedFallback
	} else {
		score = skillsNeutralFallback
	}
	if score > 100 {
		score = 100
	}

	if len(matched) > maxReportedSkills {
		matched = matched[:maxReportedSkills]
	}
	if len(missing) > maxReportedSkills {
		missing = missing[:maxReportedSkills]
	}

	return types.SkillsMatch{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}
