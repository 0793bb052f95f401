package matching

import (
	"sort"
	"strings"

	"jobmatcher/internal/errors"
	"jobmatcher/internal/textproc"
	"jobmatcher/internal/types"
)

// Recommender ranks jobs against a candidate profile.
type Recommender struct {
	engine     *textproc.SimilarityEngine
	vocabulary []string
}

// NewRecommender builds a recommender using the built-in skill
// vocabulary. A nil logger disables degradation logging.
func NewRecommender(logger *errors.Logger) *Recommender {
	return &Recommender{
		engine:     textproc.NewSimilarityEngine(logger),
		vocabulary: SkillVocabulary,
	}
}

// ProfileText flattens a profile into the free text used for matching.
func ProfileText(profile types.Profile) string {
	parts := []string{
		strings.Join(profile.Skills, " "),
		profile.Education,
		profile.Experience,
		profile.Location,
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// JobText flattens a job record into the free text used for matching.
func JobText(job types.JobRecord) string {
	return strings.TrimSpace(strings.Join([]string{
		job.Title,
		job.Description,
		job.Category,
		job.Company,
	}, " "))
}

// Recommend scores every job against the profile and returns the topN
// matches ordered by descending similarity. Equal scores keep the input
// job order. Each returned entry carries the job's skill gaps relative
// to the profile. An empty job list or an empty profile yields an empty
// result.
func (r *Recommender) Recommend(profile types.Profile, jobs []types.JobRecord, topN int) []types.Recommendation {
	if len(jobs) == 0 || topN <= 0 || ProfileText(profile) == "" {
		return []types.Recommendation{}
	}

	jobTexts := make([]string, len(jobs))
	for i, job := range jobs {
		jobTexts[i] = JobText(job)
	}

	scores := r.engine.Similarity(ProfileText(profile), jobTexts)

	ranked := make([]types.Recommendation, len(jobs))
	for i, job := range jobs {
		ranked[i] = types.Recommendation{
			Job:             job,
			SimilarityScore: scores[i],
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SimilarityScore > ranked[j].SimilarityScore
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	for i := range ranked {
		ranked[i].SkillGaps = SkillGaps(profile.Skills, ranked[i].Job.Description, r.vocabulary)
	}
	return ranked
}

// FitScore is the similarity between one profile and one job, expressed
// as a percentage with one decimal of precision preserved by the caller.
func (r *Recommender) FitScore(profile types.Profile, job types.JobRecord) float64 {
	scores := r.engine.Similarity(ProfileText(profile), []string{JobText(job)})
	return scores[0] * 100
}
