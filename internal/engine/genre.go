package engine

import "strings"

// normalizeGenres turns the loosely formatted genre field ("Fantasy",
// "['Fantasy', 'Adventure']", "fantasy, sci-fi") into clean lowercase values.
func normalizeGenres(raw string) []string {
	trimmed := strings.Trim(strings.TrimSpace(raw), "[]")
	if trimmed == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(trimmed, ",") {
		g := strings.ToLower(strings.Trim(strings.TrimSpace(part), `'"`))
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

func normalizeGenreSet(genres []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, raw := range genres {
		for _, g := range normalizeGenres(raw) {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}

// genreMatch is substring-tolerant in both directions so "fantasy" pairs
// with "epic fantasy".
func genreMatch(a, b string) bool {
	return a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a))
}

func matchesAny(bookGenres, preferred []string) bool {
	for _, g := range bookGenres {
		for _, p := range preferred {
			if genreMatch(g, p) {
				return true
			}
		}
	}
	return false
}

// overlapCount reports how many preferred genres appear among the liked
// genres.
func overlapCount(likedGenres, preferred []string) int {
	n := 0
	for _, p := range preferred {
		for _, g := range likedGenres {
			if genreMatch(g, p) {
				n++
				break
			}
		}
	}
	return n
}
