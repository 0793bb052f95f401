package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatcher/internal/types"
)

func strongProfile() types.Profile {
	return types.Profile{
		Skills:     []string{"python", "django", "aws", "docker", "sql"},
		Education:  "MSc Computer Science",
		Experience: "7 years of experience, developed and led Python backend teams on AWS",
	}
}

func pythonJob() types.JobRecord {
	return types.JobRecord{
		Title:       "Python Developer",
		Description: "We need 3+ years experience with Python, Django, AWS, Docker and SQL. Bachelor degree required.",
		Category:    "IT Jobs",
	}
}

func TestScoreWeights(t *testing.T) {
	assert.InDelta(t, 1.0, weightKeywords+weightSkills+weightExperience+weightEducation, 1e-9)
}

func TestScoreRangeAndRounding(t *testing.T) {
	s := NewScorer(nil)
	result := s.Score(strongProfile(), pythonJob())

	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	// One decimal of precision.
	scaled := result.OverallScore * 10
	assert.InDelta(t, scaled, float64(int64(scaled+0.5)), 1e-6)
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		score    float64
		expected types.Interpretation
	}{
		{95, types.InterpretationExcellent},
		{80, types.InterpretationExcellent},
		{79.9, types.InterpretationGood},
		{60, types.InterpretationGood},
		{59.9, types.InterpretationFair},
		{40, types.InterpretationFair},
		{39.9, types.InterpretationNeedsImprovement},
		{0, types.InterpretationNeedsImprovement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, interpret(tt.score), "score %v", tt.score)
	}
}

func TestSkillsMatch(t *testing.T) {
	tests := []struct {
		name          string
		userSkills    []string
		jobText       string
		expectedScore float64
	}{
		{
			name:          "all required skills present",
			userSkills:    []string{"python", "docker"},
			jobText:       "python and docker in production",
			expectedScore: 100,
		},
		{
			name:          "half of required skills present",
			userSkills:    []string{"python"},
			jobText:       "python and docker in production",
			expectedScore: 50,
		},
		{
			name:          "no requirements but user skill mentioned",
			userSkills:    []string{"carpentry"},
			jobText:       "looking for carpentry apprentices",
			expectedScore: skillsMatchedFallback,
		},
		{
			name:          "no requirements and no overlap",
			userSkills:    []string{"welding"},
			jobText:       "general office duties",
			expectedScore: skillsNeutralFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skillsMatch(tt.userSkills, tt.jobText)
			assert.InDelta(t, tt.expectedScore, got.Score, 1e-9)
		})
	}
}

func TestSkillsMatchScoreCapped(t *testing.T) {
	// User skills matched as substrings can outnumber inferred
	// requirements; the score must not exceed 100.
	got := skillsMatch(
		[]string{"python", "pyth", "ytho", "thon"},
		"python shop",
	)
	assert.LessOrEqual(t, got.Score, 100.0)
}

func TestSkillsMatchMissing(t *testing.T) {
	got := skillsMatch([]string{"python"}, "python kubernetes typescript role")
	assert.Contains(t, got.MissingSkills, "kubernetes")
	assert.Contains(t, got.MissingSkills, "typescript")
	assert.NotContains(t, got.MissingSkills, "python")
}

func TestExperienceMatchFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		job      string
		expected float64
	}{
		{"empty user", "", "needs 3 years experience", experienceNeutralFallback},
		{"empty job", "5 years experience", "", experienceNeutralFallback},
		{"no indicators either side", "wrote software", "build software", experienceNeutralFallback},
		{"indicator on one side only", "5 years experience coding", "build software", experienceNeutralFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := experienceMatch(tt.user, tt.job, nil)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestExperienceMatchSimilarity(t *testing.T) {
	user := "5 years experience building python django services"
	job := "requires years of experience with python django services"
	got := experienceMatch(user, job, nil)
	assert.Greater(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestEducationMatch(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		job      string
		expected float64
	}{
		{"no requirement in job", "BSc Physics", "friendly team, good pay", educationNoRequirement},
		{"meets requirement", "MSc Computer Science", "bachelor degree required", 100},
		{"exceeds requirement", "PhD in Biology", "master degree required", 100},
		{"partial match", "Bachelor of Arts", "master degree required", 75},
		{"no detectable degree", "school of life", "bachelor required", educationUnknownFallback},
		{"empty education with requirement", "", "phd required", educationUnknownFallback},
		{"empty education without requirement", "", "friendly team, good pay", educationNoRequirement},
		{"empty job text", "BSc", "", educationNeutralFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := educationMatch(tt.user, tt.job)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestSuggestionsOrderAndContent(t *testing.T) {
	keyword := types.KeywordMatch{
		Score:           30,
		MissingKeywords: []string{"python", "django", "aws", "docker", "sql", "redis", "kafka"},
	}
	skills := types.SkillsMatch{
		Score:         40,
		MissingSkills: []string{"kubernetes", "typescript", "php", "git"},
	}

	got := suggestions(keyword, skills, 40)
	require.Len(t, got, 4)
	assert.Equal(t, "Add these keywords: python, django, aws, docker, sql", got[0])
	assert.Equal(t, "Consider learning: kubernetes, typescript, php", got[1])
	assert.Equal(t, "Expand your experience section with quantifiable achievements", got[2])
	assert.Equal(t, "Tailor your resume to match job description keywords", got[3])
}

func TestSuggestionsEmptyWhenStrong(t *testing.T) {
	keyword := types.KeywordMatch{Score: 90}
	skills := types.SkillsMatch{Score: 100}
	got := suggestions(keyword, skills, 85)
	assert.Empty(t, got)
}

func TestScoreDegenerateInputs(t *testing.T) {
	s := NewScorer(nil)
	result := s.Score(types.Profile{}, types.JobRecord{})

	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.NotEmpty(t, result.Interpretation)
}

func TestKeywordMatchEmptyJob(t *testing.T) {
	got := keywordMatch("python developer resume", "")
	assert.Zero(t, got.Score)
	assert.Empty(t, got.MatchedKeywords)
	assert.Empty(t, got.MissingKeywords)
}

func TestKeywordMatchCaps(t *testing.T) {
	// A job text rich enough to produce 30 keywords, none shared with
	// the resume.
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey", "xray", "yankee", "zulu",
	}
	jobText := strings.Join(words, " ")
	got := keywordMatch("completely different resume content", jobText)

	assert.LessOrEqual(t, len(got.MissingKeywords), maxMissingKeywords)
	assert.Zero(t, got.Score)
}
