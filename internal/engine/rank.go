package engine

import (
	"math"
	"sort"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// selectTopN drops every book the user already interacted with, orders the
// rest by score descending with ascending book id breaking ties, and
// truncates to limit. Scores are rounded to three decimals first, matching
// what the API reports.
func selectTopN(ranked []domain.ScoredBook, interacted map[int64]struct{}, limit int) []domain.ScoredBook {
	out := make([]domain.ScoredBook, 0, len(ranked))
	for _, sb := range ranked {
		if _, seen := interacted[sb.BookID]; seen {
			continue
		}
		sb.Score = math.Round(sb.Score*1000) / 1000
		out = append(out, sb)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].BookID < out[j].BookID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
