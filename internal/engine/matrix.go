package engine

import (
	"sort"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// ratingMatrix is a dense user-by-book matrix of clamped ratings. A zero cell
// means "no rating", never "rated zero"; similarity code must not confuse the
// two.
type ratingMatrix struct {
	books     []int64
	userIndex map[int64]int
	bookIndex map[int64]int
	rows      [][]float64
}

// buildRatingMatrix pivots the interaction snapshot into a matrix whose rows
// are users with at least one interaction and whose columns are books with at
// least one interaction. Later entries for the same (user, book) pair win.
func (e *Engine) buildRatingMatrix(interactions []domain.Interaction) *ratingMatrix {
	userSet := make(map[int64]struct{})
	bookSet := make(map[int64]struct{})
	for _, in := range interactions {
		userSet[in.UserID] = struct{}{}
		bookSet[in.BookID] = struct{}{}
	}

	users := sortedIDs(userSet)
	books := sortedIDs(bookSet)

	m := &ratingMatrix{
		books:     books,
		userIndex: make(map[int64]int, len(users)),
		bookIndex: make(map[int64]int, len(books)),
		rows:      make([][]float64, len(users)),
	}
	for i, id := range users {
		m.userIndex[id] = i
		m.rows[i] = make([]float64, len(books))
	}
	for i, id := range books {
		m.bookIndex[id] = i
	}

	for _, in := range interactions {
		r, ok := ratingValue(in.Rating)
		if !ok {
			continue
		}
		m.rows[m.userIndex[in.UserID]][m.bookIndex[in.BookID]] = e.clampRating(r)
	}
	return m
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
