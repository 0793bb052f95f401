package textproc

import (
	"testing"
)

func TestSimilarityEmptyInputs(t *testing.T) {
	engine := NewSimilarityEngine(nil)

	tests := []struct {
		name    string
		profile string
		jobs    []string
	}{
		{"no jobs", "python developer", nil},
		{"blank profile", "", []string{"python developer wanted"}},
		{"punctuation profile", "!!!", []string{"python developer wanted"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := engine.Similarity(tt.profile, tt.jobs)
			if len(scores) != len(tt.jobs) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tt.jobs))
			}
			for i, s := range scores {
				if s != 0 {
					t.Errorf("score[%d] = %f, want 0", i, s)
				}
			}
		})
	}
}

func TestSimilarityRange(t *testing.T) {
	engine := NewSimilarityEngine(nil)
	profile := "senior python developer django postgresql aws docker"
	jobs := []string{
		"python developer with django experience and aws deployment",
		"java spring boot engineer",
		"registered nurse for the oncology ward",
		"python django developer docker postgresql",
	}

	scores := engine.Similarity(profile, jobs)
	if len(scores) != len(jobs) {
		t.Fatalf("got %d scores, want %d", len(scores), len(jobs))
	}
	for i, s := range scores {
		if s < 0 || s > 1 {
			t.Errorf("score[%d] = %f, outside [0,1]", i, s)
		}
	}
	if scores[0] <= scores[2] {
		t.Errorf("python job scored %f, nurse job %f; expected python higher", scores[0], scores[2])
	}
}

func TestSimilarityOrderMatchesJobOrder(t *testing.T) {
	engine := NewSimilarityEngine(nil)
	jobs := []string{
		"golang backend engineer kubernetes",
		"unrelated forestry technician role",
	}
	scores := engine.Similarity("golang kubernetes backend", jobs)
	if scores[0] <= scores[1] {
		t.Errorf("expected scores to follow job order: %v", scores)
	}
}

func TestSimilarityDegenerateVocabulary(t *testing.T) {
	engine := NewSimilarityEngine(nil)
	// All documents collapse to nothing after stop-word filtering.
	scores := engine.Similarity("the and", []string{"of with", "to from"})
	for i, s := range scores {
		if s != 0 {
			t.Errorf("score[%d] = %f, want 0", i, s)
		}
	}
}
