package matching

import (
	"strings"

	"jobmatcher/internal/textproc"
)

// maxSkillGaps caps how many missing skills are reported per job.
const maxSkillGaps = 10

// SkillGaps returns vocabulary skills that appear in the job description
// but not in the user's skills. Matching is substring-based against the
// normalized job text, results follow vocabulary order and are capped at
// ten. Empty inputs yield an empty slice.
func SkillGaps(userSkills []string, jobDescription string, vocabulary []string) []string {
	if jobDescription == "" || len(userSkills) == 0 {
		return []string{}
	}

	userSet := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			userSet[s] = true
		}
	}

	jobText := textproc.Normalize(jobDescription)
	gaps := make([]string, 0, maxSkillGaps)
	for _, skill := range vocabulary {
		if !strings.Contains(jobText, skill) {
			continue
		}
		if userSet[skill] {
			continue
		}
		gaps = append(gaps, skill)
		if len(gaps) == maxSkillGaps {
			break
		}
	}
	return gaps
}
