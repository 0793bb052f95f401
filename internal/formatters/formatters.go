package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobmatcher/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "Recommendations", &RecommendationTextFormatter{})
	registry.RegisterFormatter("markdown", "Recommendations", &RecommendationMarkdownFormatter{})
	registry.RegisterFormatter("text", "ATSScore", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSScore", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "MarketInsights", &InsightsTextFormatter{})
	registry.RegisterFormatter("markdown", "MarketInsights", &InsightsMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case []types.Recommendation:
		return "Recommendations"
	case types.ATSScore:
		return "ATSScore"
	case types.MarketInsights:
		return "MarketInsights"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// RecommendationTextFormatter handles text formatting for recommendation lists
type RecommendationTextFormatter struct{}

func (rtf *RecommendationTextFormatter) Format(data any) (string, error) {
	recs, ok := data.([]types.Recommendation)
	if !ok {
		return "", fmt.Errorf("expected []Recommendation, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB RECOMMENDATIONS ===\n\n")
	if len(recs) == 0 {
		output.WriteString("No matching jobs found.\n")
		return output.String(), nil
	}

	for i, rec := range recs {
		output.WriteString(fmt.Sprintf("%d. %s at %s\n", i+1, rec.Job.Title, rec.Job.Company))
		output.WriteString(fmt.Sprintf("   Match: %.1f%%\n", rec.SimilarityScore*100))
		if rec.Job.Location != "" {
			output.WriteString(fmt.Sprintf("   Location: %s\n", rec.Job.Location))
		}
		if rec.Job.SalaryMin > 0 || rec.Job.SalaryMax > 0 {
			output.WriteString(fmt.Sprintf("   Salary: %.0f - %.0f\n", rec.Job.SalaryMin, rec.Job.SalaryMax))
		}
		if len(rec.SkillGaps) > 0 {
			output.WriteString(fmt.Sprintf("   Skills to learn: %s\n", strings.Join(rec.SkillGaps, ", ")))
		}
		if rec.Job.URL != "" {
			output.WriteString(fmt.Sprintf("   Apply: %s\n", rec.Job.URL))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rtf *RecommendationTextFormatter) SupportedType() string {
	return "Recommendations"
}

// RecommendationMarkdownFormatter handles markdown formatting for recommendation lists
type RecommendationMarkdownFormatter struct{}

func (rmf *RecommendationMarkdownFormatter) Format(data any) (string, error) {
	recs, ok := data.([]types.Recommendation)
	if !ok {
		return "", fmt.Errorf("expected []Recommendation, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Recommendations\n\n")
	if len(recs) == 0 {
		output.WriteString("No matching jobs found.\n")
		return output.String(), nil
	}

	for i, rec := range recs {
		output.WriteString(fmt.Sprintf("## %d. %s at %s\n\n", i+1, rec.Job.Title, rec.Job.Company))
		output.WriteString(fmt.Sprintf("**Match:** %.1f%%\n\n", rec.SimilarityScore*100))
		if rec.Job.Location != "" {
			output.WriteString(fmt.Sprintf("**Location:** %s\n\n", rec.Job.Location))
		}
		if rec.Job.SalaryMin > 0 || rec.Job.SalaryMax > 0 {
			output.WriteString(fmt.Sprintf("**Salary:** %.0f - %.0f\n\n", rec.Job.SalaryMin, rec.Job.SalaryMax))
		}
		if len(rec.SkillGaps) > 0 {
			output.WriteString("**Skills to learn:**\n")
			for _, skill := range rec.SkillGaps {
				output.WriteString(fmt.Sprintf("- %s\n", skill))
			}
			output.WriteString("\n")
		}
		if rec.Job.URL != "" {
			output.WriteString(fmt.Sprintf("[Apply here](%s)\n\n", rec.Job.URL))
		}
	}

	return output.String(), nil
}

func (rmf *RecommendationMarkdownFormatter) SupportedType() string {
	return "Recommendations"
}

// ScoreTextFormatter handles text formatting for resume scores
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %.1f/100 (%s)\n\n", result.OverallScore, result.Interpretation))

	output.WriteString("=== COMPONENT SCORES ===\n")
	output.WriteString(fmt.Sprintf("Keywords:   %.1f/100\n", result.KeywordMatch.Score))
	output.WriteString(fmt.Sprintf("Skills:     %.1f/100\n", result.SkillsMatch.Score))
	output.WriteString(fmt.Sprintf("Experience: %.1f/100\n", result.ExperienceScore))
	output.WriteString(fmt.Sprintf("Education:  %.1f/100\n\n", result.EducationScore))

	if len(result.KeywordMatch.MatchedKeywords) > 0 {
		output.WriteString("Matched Keywords:\n")
		output.WriteString(fmt.Sprintf("  %s\n\n", strings.Join(result.KeywordMatch.MatchedKeywords, ", ")))
	}
	if len(result.KeywordMatch.MissingKeywords) > 0 {
		output.WriteString("Missing Keywords:\n")
		output.WriteString(fmt.Sprintf("  %s\n\n", strings.Join(result.KeywordMatch.MissingKeywords, ", ")))
	}
	if len(result.SkillsMatch.MissingSkills) > 0 {
		output.WriteString("Missing Skills:\n")
		output.WriteString(fmt.Sprintf("  %s\n\n", strings.Join(result.SkillsMatch.MissingSkills, ", ")))
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ATSScore"
}

// ScoreMarkdownFormatter handles markdown formatting for resume scores
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Score\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %.1f/100 (%s)\n\n", result.OverallScore, result.Interpretation))

	output.WriteString("## Component Scores\n\n")
	output.WriteString(fmt.Sprintf("- **Keywords:** %.1f/100\n", result.KeywordMatch.Score))
	output.WriteString(fmt.Sprintf("- **Skills:** %.1f/100\n", result.SkillsMatch.Score))
	output.WriteString(fmt.Sprintf("- **Experience:** %.1f/100\n", result.ExperienceScore))
	output.WriteString(fmt.Sprintf("- **Education:** %.1f/100\n\n", result.EducationScore))

	if len(result.KeywordMatch.MatchedKeywords) > 0 {
		output.WriteString("## Matched Keywords\n\n")
		for _, keyword := range result.KeywordMatch.MatchedKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}
	if len(result.KeywordMatch.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, keyword := range result.KeywordMatch.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}
	if len(result.SkillsMatch.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		for _, skill := range result.SkillsMatch.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ATSScore"
}

// InsightsTextFormatter handles text formatting for market insights
type InsightsTextFormatter struct{}

func (itf *InsightsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MarketInsights)
	if !ok {
		return "", fmt.Errorf("expected MarketInsights, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== MARKET INSIGHTS ===\n\n")
	output.WriteString(fmt.Sprintf("Jobs analyzed: %d (%d with salary data)\n\n", result.TotalJobs, result.JobsWithPay))

	if len(result.SkillDemand) > 0 {
		output.WriteString("=== SKILL DEMAND ===\n")
		for _, entry := range result.SkillDemand {
			output.WriteString(fmt.Sprintf("%-20s %d\n", entry.Label, entry.Count))
		}
		output.WriteString("\n")
	}

	if result.Salary.Maximum > 0 {
		output.WriteString("=== SALARY ===\n")
		output.WriteString(fmt.Sprintf("Average: %.0f\n", result.Salary.Average))
		output.WriteString(fmt.Sprintf("Median:  %.0f\n", result.Salary.Median))
		output.WriteString(fmt.Sprintf("Range:   %.0f - %.0f\n\n", result.Salary.Minimum, result.Salary.Maximum))
	}

	if len(result.Locations) > 0 {
		output.WriteString("=== TOP LOCATIONS ===\n")
		for _, entry := range result.Locations {
			output.WriteString(fmt.Sprintf("%-20s %d\n", entry.Label, entry.Count))
		}
		output.WriteString("\n")
	}

	if len(result.Categories) > 0 {
		output.WriteString("=== CATEGORIES ===\n")
		for _, entry := range result.Categories {
			output.WriteString(fmt.Sprintf("%-20s %d\n", entry.Label, entry.Count))
		}
	}

	return output.String(), nil
}

func (itf *InsightsTextFormatter) SupportedType() string {
	return "MarketInsights"
}

// InsightsMarkdownFormatter handles markdown formatting for market insights
type InsightsMarkdownFormatter struct{}

func (imf *InsightsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MarketInsights)
	if !ok {
		return "", fmt.Errorf("expected MarketInsights, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Market Insights\n\n")
	output.WriteString(fmt.Sprintf("**Jobs analyzed:** %d (%d with salary data)\n\n", result.TotalJobs, result.JobsWithPay))

	if len(result.SkillDemand) > 0 {
		output.WriteString("## Skill Demand\n\n")
		output.WriteString("| Skill | Mentions |\n|---|---|\n")
		for _, entry := range result.SkillDemand {
			output.WriteString(fmt.Sprintf("| %s | %d |\n", entry.Label, entry.Count))
		}
		output.WriteString("\n")
	}

	if result.Salary.Maximum > 0 {
		output.WriteString("## Salary\n\n")
		output.WriteString(fmt.Sprintf("- **Average:** %.0f\n", result.Salary.Average))
		output.WriteString(fmt.Sprintf("- **Median:** %.0f\n", result.Salary.Median))
		output.WriteString(fmt.Sprintf("- **Range:** %.0f - %.0f\n\n", result.Salary.Minimum, result.Salary.Maximum))
	}

	if len(result.Locations) > 0 {
		output.WriteString("## Top Locations\n\n")
		output.WriteString("| Location | Jobs |\n|---|---|\n")
		for _, entry := range result.Locations {
			output.WriteString(fmt.Sprintf("| %s | %d |\n", entry.Label, entry.Count))
		}
		output.WriteString("\n")
	}

	if len(result.Categories) > 0 {
		output.WriteString("## Categories\n\n")
		output.WriteString("| Category | Jobs |\n|---|---|\n")
		for _, entry := range result.Categories {
			output.WriteString(fmt.Sprintf("| %s | %d |\n", entry.Label, entry.Count))
		}
	}

	return output.String(), nil
}

func (imf *InsightsMarkdownFormatter) SupportedType() string {
	return "MarketInsights"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
