package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatcher/internal/types"
)

func sampleJobs() []types.JobRecord {
	return []types.JobRecord{
		{
			ID:          "1",
			Title:       "Python Developer",
			Company:     "Acme",
			Description: "Build Django services on AWS with Docker and PostgreSQL",
			Category:    "IT Jobs",
		},
		{
			ID:          "2",
			Title:       "Forestry Technician",
			Company:     "Woodland",
			Description: "Maintain trails and survey tree growth in state forests",
			Category:    "Outdoor Jobs",
		},
		{
			ID:          "3",
			Title:       "Senior Python Engineer",
			Company:     "Initech",
			Description: "Python, Django, AWS, Docker and machine learning pipelines",
			Category:    "IT Jobs",
		},
	}
}

func pythonProfile() types.Profile {
	return types.Profile{
		Skills:     []string{"python", "django", "aws"},
		Education:  "BSc Computer Science",
		Experience: "5 years building Python web services",
		Location:   "Leeds",
	}
}

func TestRecommendOrdering(t *testing.T) {
	r := NewRecommender(nil)
	recs := r.Recommend(pythonProfile(), sampleJobs(), 10)
	require.Len(t, recs, 3)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].SimilarityScore, recs[i].SimilarityScore,
			"recommendations must be in descending similarity order")
	}
	// The forestry job shares no vocabulary with the profile.
	assert.Equal(t, "2", recs[len(recs)-1].Job.ID)
}

func TestRecommendTruncation(t *testing.T) {
	r := NewRecommender(nil)
	recs := r.Recommend(pythonProfile(), sampleJobs(), 2)
	assert.Len(t, recs, 2)
}

func TestRecommendEmptyJobs(t *testing.T) {
	r := NewRecommender(nil)
	recs := r.Recommend(pythonProfile(), nil, 5)
	assert.Empty(t, recs)
}

func TestRecommendEmptyProfile(t *testing.T) {
	r := NewRecommender(nil)
	recs := r.Recommend(types.Profile{}, sampleJobs(), 10)
	assert.Empty(t, recs)
}

func TestRecommendSingleJobOverlapScoresPositive(t *testing.T) {
	profile := types.Profile{
		Skills:     []string{"python", "sql"},
		Education:  "Bachelor",
		Experience: "2 years backend development",
	}
	job := types.JobRecord{
		ID:          "42",
		Title:       "Backend Engineer",
		Company:     "Initech",
		Description: "Backend development with Python and SQL databases",
		Category:    "IT Jobs",
	}

	r := NewRecommender(nil)
	recs := r.Recommend(profile, []types.JobRecord{job}, 10)
	require.Len(t, recs, 1)
	assert.Greater(t, recs[0].SimilarityScore, 0.0,
		"overlapping profile and job must not score zero")
	assert.LessOrEqual(t, recs[0].SimilarityScore, 1.0)
}

func TestRecommendSkillGapsAttached(t *testing.T) {
	r := NewRecommender(nil)
	recs := r.Recommend(pythonProfile(), sampleJobs(), 3)
	require.Len(t, recs, 3)

	for _, rec := range recs {
		if rec.Job.ID == "1" {
			// Docker and PostgreSQL are in the description but not the profile.
			assert.Contains(t, rec.SkillGaps, "docker")
			assert.Contains(t, rec.SkillGaps, "postgresql")
			assert.NotContains(t, rec.SkillGaps, "python")
		}
	}
}

func TestRecommendScoreRange(t *testing.T) {
	r := NewRecommender(nil)
	recs := r.Recommend(pythonProfile(), sampleJobs(), 10)
	for _, rec := range recs {
		assert.GreaterOrEqual(t, rec.SimilarityScore, 0.0)
		assert.LessOrEqual(t, rec.SimilarityScore, 1.0)
	}
}

func TestProfileText(t *testing.T) {
	text := ProfileText(types.Profile{
		Skills:     []string{"go", "sql"},
		Education:  "MSc",
		Experience: "backend services",
		Location:   "Remote",
	})
	assert.Equal(t, "go sql MSc backend services Remote", text)
}

func TestJobText(t *testing.T) {
	text := JobText(types.JobRecord{
		Title:       "Go Developer",
		Description: "APIs",
		Category:    "IT Jobs",
		Company:     "Acme",
	})
	assert.Equal(t, "Go Developer APIs IT Jobs Acme", text)
}

func TestFitScorePercentage(t *testing.T) {
	r := NewRecommender(nil)
	score := r.FitScore(pythonProfile(), sampleJobs()[0])
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}
