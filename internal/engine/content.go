package engine

import (
	"gonum.org/v1/gonum/floats"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// contentScores compares the user's aggregate taste vector against every
// catalog book vector by cosine similarity. The taste vector is the
// rating-weighted sum of the vectors of books the user interacted with;
// unrated interactions get the neutral weight. Returns nil when the taste
// vector degenerates to zero, signaling that this branch has no opinion.
func (e *Engine) contentScores(history []domain.Interaction, vocab *vocabulary, vectors map[int64][]float64, catalog []domain.Book) []float64 {
	taste := make([]float64, vocab.size())
	for _, in := range history {
		vec, ok := vectors[in.BookID]
		if !ok {
			continue
		}
		w := e.cfg.NeutralWeight
		if r, rated := ratingValue(in.Rating); rated {
			w = e.clampRating(r) / e.cfg.MaxRating
		}
		floats.AddScaled(taste, w, vec)
	}
	tasteNorm := floats.Norm(taste, 2)
	if tasteNorm == 0 {
		return nil
	}

	scores := make([]float64, len(catalog))
	for i, b := range catalog {
		vec := vectors[b.ID]
		norm := floats.Norm(vec, 2)
		if norm == 0 {
			continue
		}
		scores[i] = floats.Dot(taste, vec) / (tasteNorm * norm)
	}
	return scores
}
