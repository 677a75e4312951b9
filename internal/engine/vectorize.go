package engine

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// vocabulary maps terms to vector indices with their smoothed IDF weights.
type vocabulary struct {
	index map[string]int
	idf   []float64
}

func (v *vocabulary) size() int { return len(v.idf) }

// vectorize builds one L2-normalized TF-IDF vector per catalog book over the
// concatenated author, genre, and description text. A book with no usable
// metadata gets the zero vector.
func (e *Engine) vectorize(catalog []domain.Book) (*vocabulary, map[int64][]float64) {
	docs := make([]string, len(catalog))
	for i, b := range catalog {
		docs[i] = bookDocument(b)
	}
	vocab := e.buildVocabulary(docs)
	vectors := make(map[int64][]float64, len(catalog))
	for i, b := range catalog {
		vectors[b.ID] = vocab.embed(docs[i])
	}
	return vocab, vectors
}

func bookDocument(b domain.Book) string {
	parts := append([]string{b.Author}, normalizeGenres(b.Genre)...)
	parts = append(parts, b.Description)
	return strings.Join(parts, " ")
}

func (e *Engine) buildVocabulary(docs []string) *vocabulary {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	// Cap by document frequency so the dimension stays bounded, then index
	// alphabetically so it stays stable across calls.
	if e.cfg.MaxVocabulary > 0 && len(terms) > e.cfg.MaxVocabulary {
		sort.Slice(terms, func(i, j int) bool {
			if df[terms[i]] != df[terms[j]] {
				return df[terms[i]] > df[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:e.cfg.MaxVocabulary]
	}
	sort.Strings(terms)

	v := &vocabulary{
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, t := range terms {
		v.index[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v
}

func (v *vocabulary) embed(doc string) []float64 {
	vec := make([]float64, v.size())
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenize(doc) {
		if idx, ok := v.index[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

var stopwords = makeStopwords()

func makeStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was",
		"were", "be", "been", "being", "it", "this", "that", "these", "those",
		"from", "up", "down", "over", "under", "again", "further", "than",
		"so", "such", "into", "about", "between", "through", "during",
		"before", "after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
