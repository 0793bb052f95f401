package textproc

import "sort"

// ExtractKeywords returns up to topN terms of the text ranked by TF-IDF
// weight in a single-document space. With one document every term has
// the same inverse document frequency, so the ranking reduces to term
// frequency; ties keep first-seen order. Empty or degenerate text yields
// an empty slice.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		return nil
	}

	vs, err := NewVectorSpace([]string{text}, KeywordOptions(topN))
	if err != nil {
		return nil
	}

	terms := vs.Terms()
	vec := vs.Vector(0)

	type ranked struct {
		term   string
		weight float64
		seen   int
	}
	candidates := make([]ranked, 0, len(terms))
	for i, t := range terms {
		if vec[i] > 0 {
			candidates = append(candidates, ranked{term: t, weight: vec[i], seen: i})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	keywords := make([]string, len(candidates))
	for i, c := range candidates {
		keywords[i] = c.term
	}
	return keywords
}
