package textproc

import (
	"math"
	"sort"

	"jobmatcher/internal/errors"
)

// Options controls how a vector space is fitted.
type Options struct {
	// MaxFeatures caps the vocabulary at the most frequent terms.
	// Zero means no cap.
	MaxFeatures int
	// MaxDocFreq prunes terms appearing in more than this proportion
	// of documents. 1.0 disables pruning.
	MaxDocFreq float64
	// MinDocFreq prunes terms appearing in fewer than this many documents.
	MinDocFreq int
	// Bigrams adds adjacent word pairs alongside unigrams.
	Bigrams bool
}

// DefaultOptions matches the settings used for similarity computation.
func DefaultOptions() Options {
	return Options{
		MaxFeatures: 5000,
		MaxDocFreq:  0.95,
		MinDocFreq:  1,
		Bigrams:     true,
	}
}

// KeywordOptions matches the settings used for single-document keyword
// extraction: the feature cap doubles as the result budget and no
// high-frequency pruning applies.
func KeywordOptions(topN int) Options {
	return Options{
		MaxFeatures: topN,
		MaxDocFreq:  1.0,
		MinDocFreq:  1,
		Bigrams:     true,
	}
}

// VectorSpace is a TF-IDF vector space fitted over a document corpus.
// Document vectors are L2-normalized, so cosine similarity is a dot
// product.
type VectorSpace struct {
	vocab   map[string]int
	terms   []string
	idf     []float64
	vectors [][]float64
}

// NewVectorSpace fits a space over the given documents. Documents are
// normalized and tokenized internally. It fails when no terms survive
// vocabulary pruning.
func NewVectorSpace(docs []string, opts Options) (*VectorSpace, error) {
	if len(docs) == 0 {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyCorpus, "no documents to fit", nil)
	}

	docTerms := make([][]string, len(docs))
	for i, d := range docs {
		docTerms[i] = Terms(d, opts.Bigrams)
	}

	// First-seen order keeps vocabulary construction deterministic.
	type termStat struct {
		term  string
		df    int
		count int
		seen  int
	}
	stats := make(map[string]*termStat)
	order := make([]*termStat, 0)
	for _, terms := range docTerms {
		inDoc := make(map[string]bool, len(terms))
		for _, t := range terms {
			st, ok := stats[t]
			if !ok {
				st = &termStat{term: t, seen: len(order)}
				stats[t] = st
				order = append(order, st)
			}
			st.count++
			if !inDoc[t] {
				st.df++
				inDoc[t] = true
			}
		}
	}

	n := len(docs)
	// With very few documents the frequency cutoff falls below 2 and
	// would prune every term the documents share, which is exactly the
	// overlap similarity depends on. Skip high-frequency pruning there.
	maxDF := opts.MaxDocFreq * float64(n)
	pruneFrequent := opts.MaxDocFreq < 1.0 && maxDF >= 2
	kept := make([]*termStat, 0, len(order))
	for _, st := range order {
		if opts.MinDocFreq > 0 && st.df < opts.MinDocFreq {
			continue
		}
		if pruneFrequent && float64(st.df) > maxDF {
			continue
		}
		kept = append(kept, st)
	}

	if opts.MaxFeatures > 0 && len(kept) > opts.MaxFeatures {
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].count > kept[j].count
		})
		kept = kept[:opts.MaxFeatures]
		sort.Slice(kept, func(i, j int) bool {
			return kept[i].seen < kept[j].seen
		})
	}

	if len(kept) == 0 {
		return nil, errors.NewInternalError(errors.ErrCodeEmptyVocabulary, "vocabulary empty after pruning", nil)
	}

	vs := &VectorSpace{
		vocab: make(map[string]int, len(kept)),
		terms: make([]string, len(kept)),
		idf:   make([]float64, len(kept)),
	}
	for i, st := range kept {
		vs.vocab[st.term] = i
		vs.terms[i] = st.term
		// Smoothed inverse document frequency.
		vs.idf[i] = math.Log(float64(1+n)/float64(1+st.df)) + 1
	}

	vs.vectors = make([][]float64, len(docs))
	for i, terms := range docTerms {
		vs.vectors[i] = vs.vectorize(terms)
	}
	return vs, nil
}

func (vs *VectorSpace) vectorize(terms []string) []float64 {
	vec := make([]float64, len(vs.terms))
	for _, t := range terms {
		if idx, ok := vs.vocab[t]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		vec[i] *= vs.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Terms returns the fitted vocabulary in construction order.
func (vs *VectorSpace) Terms() []string {
	return vs.terms
}

// Vector returns the L2-normalized TF-IDF vector of fitted document i.
func (vs *VectorSpace) Vector(i int) []float64 {
	return vs.vectors[i]
}

// Transform vectorizes a document that was not part of the fit.
func (vs *VectorSpace) Transform(text string, bigrams bool) []float64 {
	return vs.vectorize(Terms(text, bigrams))
}

// Cosine computes cosine similarity between two equal-length vectors.
// Zero vectors yield zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
