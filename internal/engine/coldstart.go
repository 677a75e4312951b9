package engine

import "github.com/shelfwise/recommendation-service/internal/domain"

// fallback ranks the catalog for a user without usable history. Three rungs,
// first non-empty result wins:
//
//  1. books rated highly by users whose liked genres overlap at least two of
//     the user's preferred genres, restricted to those preferred genres
//  2. books whose genre matches the preferred set, by average rating
//  3. every book by catalog-wide average rating, unrated books at the
//     neutral rating so new arrivals are not buried
func (e *Engine) fallback(catalog []domain.Book, m *ratingMatrix, preferredGenres []string) []domain.ScoredBook {
	preferred := normalizeGenreSet(preferredGenres)
	if len(preferred) > 0 {
		if ranked := e.likedByKindredUsers(catalog, m, preferred); len(ranked) > 0 {
			return ranked
		}
		if ranked := e.booksMatchingGenres(catalog, m, preferred); len(ranked) > 0 {
			return ranked
		}
	}
	return e.booksByAverageRating(catalog, m)
}

// likedByKindredUsers finds users whose highly rated books cover at least two
// preferred genres, then ranks the preferred-genre books those users liked by
// the average rating they gave them.
func (e *Engine) likedByKindredUsers(catalog []domain.Book, m *ratingMatrix, preferred []string) []domain.ScoredBook {
	genresByBook := make(map[int64][]string, len(catalog))
	for _, b := range catalog {
		genresByBook[b.ID] = normalizeGenres(b.Genre)
	}

	var kindred []int
	for i, row := range m.rows {
		var liked []string
		for col, r := range row {
			if r < e.cfg.LikedThreshold {
				continue
			}
			liked = append(liked, genresByBook[m.books[col]]...)
		}
		if overlapCount(liked, preferred) >= 2 {
			kindred = append(kindred, i)
		}
	}
	if len(kindred) == 0 {
		return nil
	}

	sum := make(map[int64]float64)
	cnt := make(map[int64]int)
	for _, i := range kindred {
		for col, r := range m.rows[i] {
			if r < e.cfg.LikedThreshold {
				continue
			}
			id := m.books[col]
			if !matchesAny(genresByBook[id], preferred) {
				continue
			}
			sum[id] += r
			cnt[id]++
		}
	}

	var ranked []domain.ScoredBook
	for _, b := range catalog {
		if n := cnt[b.ID]; n > 0 {
			ranked = append(ranked, domain.ScoredBook{BookID: b.ID, Score: sum[b.ID] / float64(n)})
		}
	}
	return ranked
}

func (e *Engine) booksMatchingGenres(catalog []domain.Book, m *ratingMatrix, preferred []string) []domain.ScoredBook {
	avg := e.averageRatings(m)
	var ranked []domain.ScoredBook
	for _, b := range catalog {
		if !matchesAny(normalizeGenres(b.Genre), preferred) {
			continue
		}
		ranked = append(ranked, domain.ScoredBook{BookID: b.ID, Score: e.avgOrNeutral(avg, b.ID)})
	}
	return ranked
}

func (e *Engine) booksByAverageRating(catalog []domain.Book, m *ratingMatrix) []domain.ScoredBook {
	avg := e.averageRatings(m)
	ranked := make([]domain.ScoredBook, len(catalog))
	for i, b := range catalog {
		ranked[i] = domain.ScoredBook{BookID: b.ID, Score: e.avgOrNeutral(avg, b.ID)}
	}
	return ranked
}

// averageRatings means only over users who actually rated the book; zero
// cells are missing interactions, not scores.
func (e *Engine) averageRatings(m *ratingMatrix) map[int64]float64 {
	avg := make(map[int64]float64, len(m.books))
	for col, id := range m.books {
		var sum float64
		var n int
		for _, row := range m.rows {
			if row[col] > 0 {
				sum += row[col]
				n++
			}
		}
		if n > 0 {
			avg[id] = sum / float64(n)
		}
	}
	return avg
}

func (e *Engine) avgOrNeutral(avg map[int64]float64, id int64) float64 {
	if v, ok := avg[id]; ok {
		return v
	}
	return e.cfg.NeutralRating
}
