package textproc

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		topN int
		want []string
	}{
		{
			name: "ranks by frequency with first-seen tie break",
			text: "python python python docker docker aws",
			topN: 3,
			want: []string{"python", "docker", "python python"},
		},
		{
			name: "empty text",
			text: "",
			topN: 5,
			want: nil,
		},
		{
			name: "stop words only",
			text: "the and of with",
			topN: 5,
			want: nil,
		},
		{
			name: "zero budget",
			text: "python developer",
			topN: 0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text, tt.topN)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractKeywordsBudget(t *testing.T) {
	text := "go rust python java kotlin swift scala ruby perl haskell"
	got := ExtractKeywords(text, 4)
	if len(got) != 4 {
		t.Fatalf("got %d keywords, want 4", len(got))
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "backend services in go with postgres, redis and kafka"
	first := ExtractKeywords(text, 8)
	for i := 0; i < 10; i++ {
		if again := ExtractKeywords(text, 8); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed: %v vs %v", i, first, again)
		}
	}
}

func TestExtractKeywordsIncludesBigrams(t *testing.T) {
	got := ExtractKeywords("machine learning machine learning engineer", 10)
	found := false
	for _, k := range got {
		if k == "machine learning" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected bigram in keywords, got %v", got)
	}
}
