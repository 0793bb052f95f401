package types

import (
	"encoding/json"
	"strings"
)

// Profile represents a candidate profile used for matching and scoring
type Profile struct {
	Skills     SkillList `json:"skills"`
	Education  string    `json:"education"`
	Experience string    `json:"experience"`
	Location   string    `json:"location"`
}

// SkillList holds a candidate's skills. On the wire it accepts either a
// JSON array of strings or a single comma/semicolon-delimited string.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseSkills(raw)
	return nil
}

// ParseSkills splits a delimited skills string into individual entries.
// Both commas and semicolons act as separators; blank entries are dropped.
func ParseSkills(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	skills := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// JobRecord represents a single job posting
type JobRecord struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	SalaryMin   float64 `json:"salaryMin"` // 0 means not disclosed
	SalaryMax   float64 `json:"salaryMax"` // 0 means not disclosed
	URL         string  `json:"url"`
	DatePosted  string  `json:"datePosted"` // YYYY-MM-DD
}

// Recommendation pairs a job with its similarity to a profile
type Recommendation struct {
	Job             JobRecord `json:"job"`
	SimilarityScore float64   `json:"similarityScore"` // [0,1]
	SkillGaps       []string  `json:"skillGaps"`
}

// Interpretation is the qualitative band for an overall ATS score
type Interpretation string

const (
	InterpretationExcellent        Interpretation = "Excellent"
	InterpretationGood             Interpretation = "Good"
	InterpretationFair             Interpretation = "Fair"
	InterpretationNeedsImprovement Interpretation = "NeedsImprovement"
)

// KeywordMatch breaks down how resume keywords align with job keywords
type KeywordMatch struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"` // at most 15
	MissingKeywords []string `json:"missingKeywords"` // at most 10
}

// SkillsMatch breaks down required versus present skills
type SkillsMatch struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// ATSScore represents the full scoring result for one profile/job pair
type ATSScore struct {
	OverallScore    float64        `json:"overallScore"` // 0-100, one decimal
	Interpretation  Interpretation `json:"interpretation"`
	KeywordMatch    KeywordMatch   `json:"keywordMatch"`
	SkillsMatch     SkillsMatch    `json:"skillsMatch"`
	ExperienceScore float64        `json:"experienceScore"`
	EducationScore  float64        `json:"educationScore"`
	Suggestions     []string       `json:"suggestions"`
}

// SalaryStatistics summarizes pooled salary bounds across a corpus
type SalaryStatistics struct {
	Average float64 `json:"average"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
	Median  float64 `json:"median"`
}

// CountEntry is a labeled count used in distributions
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MarketInsights aggregates analytics over a job corpus
type MarketInsights struct {
	SkillDemand   []CountEntry     `json:"skillDemand"`
	Salary        SalaryStatistics `json:"salary"`
	Locations     []CountEntry     `json:"locations"`
	Categories    []CountEntry     `json:"categories"`
	TotalJobs     int              `json:"totalJobs"`
	JobsWithPay   int              `json:"jobsWithPay"`
}

// ChartData carries plottable series derived from a corpus and
// optionally a recommendation run
type ChartData struct {
	SkillLabels      []string  `json:"skillLabels"`
	SkillCounts      []int     `json:"skillCounts"`
	LocationLabels   []string  `json:"locationLabels"`
	LocationCounts   []int     `json:"locationCounts"`
	CategoryLabels   []string  `json:"categoryLabels"`
	CategoryCounts   []int     `json:"categoryCounts"`
	SalaryLabels     []string  `json:"salaryLabels"`
	SalaryValues     []float64 `json:"salaryValues"`
	SimilarityLabels []string  `json:"similarityLabels,omitempty"`
	SimilarityScores []float64 `json:"similarityScores,omitempty"` // percentages
}
