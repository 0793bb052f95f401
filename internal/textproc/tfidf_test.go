package textproc

import (
	"math"
	"testing"
)

func TestNewVectorSpaceEmptyCorpus(t *testing.T) {
	if _, err := NewVectorSpace(nil, DefaultOptions()); err == nil {
		t.Fatal("expected error for empty corpus")
	}
}

func TestNewVectorSpaceEmptyVocabulary(t *testing.T) {
	// Stop words and punctuation only, nothing survives tokenization.
	_, err := NewVectorSpace([]string{"the and of", "!!!"}, DefaultOptions())
	if err == nil {
		t.Fatal("expected empty vocabulary error")
	}
}

func TestVectorSpaceNormalizedVectors(t *testing.T) {
	vs, err := NewVectorSpace([]string{
		"python developer with django",
		"java developer with spring",
		"registered nurse in oncology",
	}, Options{MaxFeatures: 5000, MaxDocFreq: 1.0, MinDocFreq: 1, Bigrams: true})
	if err != nil {
		t.Fatalf("NewVectorSpace: %v", err)
	}

	for i := 0; i < 3; i++ {
		var norm float64
		for _, v := range vs.Vector(i) {
			norm += v * v
		}
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("vector %d has squared norm %f, want 1", i, norm)
		}
	}
}

func TestVectorSpaceMaxFeatures(t *testing.T) {
	docs := []string{"rust rust rust python python java kotlin swift"}
	vs, err := NewVectorSpace(docs, Options{MaxFeatures: 2, MaxDocFreq: 1.0, MinDocFreq: 1, Bigrams: false})
	if err != nil {
		t.Fatalf("NewVectorSpace: %v", err)
	}
	terms := vs.Terms()
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}
	// Highest counts win the cap, order stays first-seen.
	if terms[0] != "rust" || terms[1] != "python" {
		t.Errorf("terms = %v, want [rust python]", terms)
	}
}

func TestVectorSpaceMaxDocFreqPruning(t *testing.T) {
	// "developer" is in every document and gets pruned at 0.5.
	docs := []string{
		"python developer",
		"java developer",
		"rust developer",
		"go engineer",
	}
	vs, err := NewVectorSpace(docs, Options{MaxDocFreq: 0.5, MinDocFreq: 1, Bigrams: false})
	if err != nil {
		t.Fatalf("NewVectorSpace: %v", err)
	}
	for _, term := range vs.Terms() {
		if term == "developer" {
			t.Error("expected high-frequency term to be pruned")
		}
	}
}

func TestVectorSpaceTinyCorpusKeepsSharedTerms(t *testing.T) {
	// At two documents a 0.95 cutoff would discard every shared term,
	// leaving nothing for similarity to work with. Shared terms must
	// survive.
	vs, err := NewVectorSpace([]string{
		"python sql bachelor",
		"python sql backend services",
	}, DefaultOptions())
	if err != nil {
		t.Fatalf("NewVectorSpace: %v", err)
	}

	found := map[string]bool{}
	for _, term := range vs.Terms() {
		found[term] = true
	}
	if !found["python"] || !found["sql"] {
		t.Errorf("terms = %v, want shared terms python and sql kept", vs.Terms())
	}
	if got := Cosine(vs.Vector(0), vs.Vector(1)); got <= 0 {
		t.Errorf("overlapping documents similarity = %f, want > 0", got)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"length mismatch", []float64{1}, []float64{1, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Cosine = %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestSelfSimilarityIsOne(t *testing.T) {
	vs, err := NewVectorSpace([]string{
		"golang microservices kubernetes",
		"golang microservices kubernetes",
		"completely unrelated gardening text",
	}, Options{MaxDocFreq: 1.0, MinDocFreq: 1, Bigrams: true})
	if err != nil {
		t.Fatalf("NewVectorSpace: %v", err)
	}
	got := Cosine(vs.Vector(0), vs.Vector(1))
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("identical documents similarity = %f, want 1", got)
	}
}
