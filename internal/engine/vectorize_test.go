package engine

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

func TestVectorizeWeightsDistinctiveTerms(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 1, Author: "Ann Wren", Genre: "Fantasy", Description: "dragons everywhere"},
		{ID: 2, Author: "Ann Wren", Genre: "Fantasy", Description: "dragons sometimes"},
		{ID: 3, Author: "Ann Wren", Genre: "Fantasy", Description: "submarines"},
	}

	vocab, vectors := e.vectorize(catalog)
	if vocab.size() == 0 {
		t.Fatal("expected non-empty vocabulary")
	}

	// "ann" appears in every document, "submarines" in one; the rare term
	// must carry more weight in its vector.
	v3 := vectors[3]
	common := v3[vocab.index["ann"]]
	rare := v3[vocab.index["submarines"]]
	if rare <= common {
		t.Errorf("expected rare term to outweigh ubiquitous term: rare=%f common=%f", rare, common)
	}
}

func TestVectorizeL2Normalized(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 1, Author: "Ann Wren", Genre: "Fantasy", Description: "dragons over the keep"},
		{ID: 2, Author: "Bo Hart", Genre: "Romance", Description: "letters across the harbor"},
	}

	_, vectors := e.vectorize(catalog)
	for id, vec := range vectors {
		norm := floats.Norm(vec, 2)
		if math.Abs(norm-1.0) > 1e-9 {
			t.Errorf("book %d: expected unit norm, got %f", id, norm)
		}
	}
}

func TestVectorizeEmptyMetadataYieldsZeroVector(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 1, Author: "Ann Wren", Genre: "Fantasy", Description: "dragons"},
		{ID: 2, Title: "Only a title"},
	}

	_, vectors := e.vectorize(catalog)
	for _, v := range vectors[2] {
		if v != 0 {
			t.Fatalf("expected zero vector for metadata-less book, got %v", vectors[2])
		}
	}
}

func TestVocabularyCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxVocabulary = 3
	e := New(cfg)

	docs := []string{
		"alpha beta gamma delta",
		"alpha beta",
		"alpha",
	}
	vocab := e.buildVocabulary(docs)
	if vocab.size() != 3 {
		t.Fatalf("expected vocabulary capped at 3, got %d", vocab.size())
	}
	// gamma loses the document-frequency tie against delta alphabetically.
	if _, ok := vocab.index["gamma"]; ok {
		t.Error("expected gamma to be dropped by the cap")
	}
	for _, term := range []string{"alpha", "beta", "delta"} {
		if _, ok := vocab.index[term]; !ok {
			t.Errorf("expected %q in capped vocabulary", term)
		}
	}
}

func TestTokenizeDropsStopwords(t *testing.T) {
	got := tokenize("The dragons and the keep")
	want := []string{"dragons", "keep"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestNormalizeGenres(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Fantasy", []string{"fantasy"}},
		{"['Fantasy', 'Adventure']", []string{"fantasy", "adventure"}},
		{`"Sci-Fi, Mystery"`, []string{"sci-fi", "mystery"}},
		{"fantasy, sci-fi", []string{"fantasy", "sci-fi"}},
		{"", nil},
		{"[]", nil},
	}
	for _, tc := range cases {
		got := normalizeGenres(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("normalizeGenres(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("normalizeGenres(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestGenreMatchSubstringTolerant(t *testing.T) {
	if !genreMatch("epic fantasy", "fantasy") {
		t.Error("expected epic fantasy to match fantasy")
	}
	if !genreMatch("fantasy", "epic fantasy") {
		t.Error("expected match to work in both directions")
	}
	if genreMatch("romance", "fantasy") {
		t.Error("expected no match between unrelated genres")
	}
	if genreMatch("", "fantasy") {
		t.Error("expected empty genre to never match")
	}
}
