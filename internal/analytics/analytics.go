// Package analytics aggregates job-market insights over a corpus of job
// postings: skill demand, salary statistics and distribution breakdowns.
package analytics

import (
	"sort"
	"strings"

	"jobmatcher/internal/types"
)

// skillSynonyms maps display labels to the keyword variants counted for
// them. Label order breaks ties in demand rankings.
type skillSynonyms struct {
	label    string
	keywords []string
}

var demandVocabulary = []skillSynonyms{
	{"Python", []string{"python"}},
	{"Java", []string{"java"}},
	{"JavaScript", []string{"javascript", "js"}},
	{"React", []string{"react"}},
	{"SQL", []string{"sql", "mysql", "postgresql"}},
	{"AWS", []string{"aws", "amazon web services"}},
	{"Docker", []string{"docker"}},
	{"Machine Learning", []string{"machine learning", "ml", "tensorflow", "pytorch"}},
	{"Data Science", []string{"data science", "pandas", "numpy"}},
	{"Node.js", []string{"node", "nodejs"}},
	{"Angular", []string{"angular"}},
	{"Vue", []string{"vue"}},
	{"Django", []string{"django"}},
	{"Flask", []string{"flask"}},
	{"Spring", []string{"spring"}},
	{"MongoDB", []string{"mongodb"}},
	{"Git", []string{"git", "github"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
}

// SkillDemand counts, per skill label, how many of its keyword variants
// appear anywhere in the concatenated corpus descriptions. Labels with
// zero hits are omitted; results sort by count descending with label
// definition order breaking ties.
//
// Counting is corpus-wide: a keyword present in fifty postings counts
// once. SkillDemandByJob offers per-posting counting instead.
func SkillDemand(jobs []types.JobRecord) []types.CountEntry {
	var b strings.Builder
	for _, job := range jobs {
		b.WriteString(strings.ToLower(job.Description))
		b.WriteString(" ")
	}
	corpus := b.String()

	entries := make([]types.CountEntry, 0, len(demandVocabulary))
	for _, skill := range demandVocabulary {
		count := 0
		for _, kw := range skill.keywords {
			if strings.Contains(corpus, kw) {
				count++
			}
		}
		if count > 0 {
			entries = append(entries, types.CountEntry{Label: skill.label, Count: count})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// SkillDemandByJob counts, per skill label, how many postings mention
// at least one of its keyword variants. Ordering matches SkillDemand.
func SkillDemandByJob(jobs []types.JobRecord) []types.CountEntry {
	entries := make([]types.CountEntry, 0, len(demandVocabulary))
	for _, skill := range demandVocabulary {
		count := 0
		for _, job := range jobs {
			desc := strings.ToLower(job.Description)
			for _, kw := range skill.keywords {
				if strings.Contains(desc, kw) {
					count++
					break
				}
			}
		}
		if count > 0 {
			entries = append(entries, types.CountEntry{Label: skill.label, Count: count})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Salary pools every positive salary bound across the corpus and
// reports average, minimum, maximum and the upper median. A corpus
// without disclosed salaries reports all zeros.
func Salary(jobs []types.JobRecord) types.SalaryStatistics {
	salaries := make([]float64, 0, 2*len(jobs))
	for _, job := range jobs {
		if job.SalaryMin > 0 {
			salaries = append(salaries, job.SalaryMin)
		}
		if job.SalaryMax > 0 {
			salaries = append(salaries, job.SalaryMax)
		}
	}
	if len(salaries) == 0 {
		return types.SalaryStatistics{}
	}

	sort.Float64s(salaries)
	var sum float64
	for _, s := range salaries {
		sum += s
	}
	return types.SalaryStatistics{
		Average: sum / float64(len(salaries)),
		Minimum: salaries[0],
		Maximum: salaries[len(salaries)-1],
		// Upper median: for even counts this is the higher of the
		// two middle values.
		Median: salaries[len(salaries)/2],
	}
}

// distribution counts jobs per key, skipping empty keys, sorted by
// count descending with first-seen order breaking ties.
func distribution(jobs []types.JobRecord, key func(types.JobRecord) string) []types.CountEntry {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, job := range jobs {
		k := key(job)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]types.CountEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, types.CountEntry{Label: k, Count: counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Locations breaks the corpus down by posting location.
func Locations(jobs []types.JobRecord) []types.CountEntry {
	return distribution(jobs, func(j types.JobRecord) string { return j.Location })
}

// Categories breaks the corpus down by posting category.
func Categories(jobs []types.JobRecord) []types.CountEntry {
	return distribution(jobs, func(j types.JobRecord) string { return j.Category })
}

// Insights assembles the full market summary for a corpus.
func Insights(jobs []types.JobRecord) types.MarketInsights {
	withPay := 0
	for _, job := range jobs {
		if job.SalaryMin > 0 || job.SalaryMax > 0 {
			withPay++
		}
	}
	return types.MarketInsights{
		SkillDemand: SkillDemand(jobs),
		Salary:      Salary(jobs),
		Locations:   Locations(jobs),
		Categories:  Categories(jobs),
		TotalJobs:   len(jobs),
		JobsWithPay: withPay,
	}
}

// PrepareChartData flattens corpus aggregates into parallel label and
// value series. When recommendations are supplied their similarity
// scores are included as percentages, labeled by job title.
func PrepareChartData(jobs []types.JobRecord, recommendations []types.Recommendation) types.ChartData {
	data := types.ChartData{}

	for _, e := range SkillDemand(jobs) {
		data.SkillLabels = append(data.SkillLabels, e.Label)
		data.SkillCounts = append(data.SkillCounts, e.Count)
	}
	for _, e := range Locations(jobs) {
		data.LocationLabels = append(data.LocationLabels, e.Label)
		data.LocationCounts = append(data.LocationCounts, e.Count)
	}
	for _, e := range Categories(jobs) {
		data.CategoryLabels = append(data.CategoryLabels, e.Label)
		data.CategoryCounts = append(data.CategoryCounts, e.Count)
	}
	salary := Salary(jobs)
	data.SalaryLabels = []string{"average", "minimum", "maximum", "median"}
	data.SalaryValues = []float64{salary.Average, salary.Minimum, salary.Maximum, salary.Median}
	for _, rec := range recommendations {
		data.SimilarityLabels = append(data.SimilarityLabels, rec.Job.Title)
		data.SimilarityScores = append(data.SimilarityScores, rec.SimilarityScore*100)
	}
	return data
}
