package similarity

import (
	"math"
	"testing"

	"github.com/akinlabs/akin/internal/corpus"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b corpus.TermVector
		want float64
	}{
		{
			name: "identical vectors",
			a:    corpus.TermVector{"cat": 1, "dog": 2},
			b:    corpus.TermVector{"cat": 1, "dog": 2},
			want: 1.0,
		},
		{
			name: "disjoint vocabularies",
			a:    corpus.TermVector{"cat": 3},
			b:    corpus.TermVector{"dog": 5},
			want: 0.0,
		},
		{
			name: "partial overlap",
			// {cat:2,dog:1} x {dog:2,bird:1}: dot=2, |a|=|b|=sqrt(5)
			a:    corpus.TermVector{"cat": 2, "dog": 1},
			b:    corpus.TermVector{"dog": 2, "bird": 1},
			want: 0.4,
		},
		{
			name: "empty vector scores zero",
			a:    corpus.TermVector{},
			b:    corpus.TermVector{"cat": 1},
			want: 0.0,
		},
		{
			name: "both empty",
			a:    corpus.TermVector{},
			b:    corpus.TermVector{},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCosineCommutative(t *testing.T) {
	a := corpus.TermVector{"cat": 2, "dog": 1, "bird": 4}
	b := corpus.TermVector{"dog": 3, "bird": 1}

	ab := Cosine(a, b)
	ba := Cosine(b, a)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("Cosine is not commutative: %v vs %v", ab, ba)
	}
}

func TestCosineRange(t *testing.T) {
	vectors := []corpus.TermVector{
		{"a": 1},
		{"a": 100, "b": 1},
		{"b": 7, "c": 3},
		{},
	}

	for i, a := range vectors {
		for j, b := range vectors {
			got := Cosine(a, b)
			if got < 0 || got > 1 {
				t.Errorf("Cosine(vectors[%d], vectors[%d]) = %v, outside [0,1]", i, j, got)
			}
		}
	}
}
