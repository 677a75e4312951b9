package engine

import (
	"gonum.org/v1/gonum/floats"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// collaborativeScores projects user-user similarity onto books: each book's
// score is the similarity-weighted sum of every matrix user's rating for it.
// Books nobody rated score 0. Returns nil when the target user has no usable
// row, signaling that this branch has no opinion.
//
// Naive O(users² × books); fine for the hundreds-of-users scale this service
// targets.
func (e *Engine) collaborativeScores(userID int64, m *ratingMatrix, catalog []domain.Book) []float64 {
	idx, ok := m.userIndex[userID]
	if !ok {
		return nil
	}
	target := m.rows[idx]
	targetNorm := floats.Norm(target, 2)
	if targetNorm == 0 {
		return nil
	}

	sims := make([]float64, len(m.rows))
	for i, row := range m.rows {
		norm := floats.Norm(row, 2)
		if norm == 0 {
			continue
		}
		sims[i] = floats.Dot(target, row) / (targetNorm * norm)
	}

	scores := make([]float64, len(catalog))
	for i, b := range catalog {
		col, rated := m.bookIndex[b.ID]
		if !rated {
			continue
		}
		var s float64
		for u, row := range m.rows {
			s += sims[u] * row[col]
		}
		scores[i] = s
	}
	return scores
}
