// Package engine implements the hybrid book scoring core: TF-IDF content
// similarity blended with user-user collaborative filtering over a rating
// matrix, with a cold-start fallback for users without usable history.
//
// The engine is pure and stateless. Every call works on the snapshots it is
// given and never mutates them, so it is safe to invoke concurrently as long
// as each call receives its own snapshot.
package engine

import (
	"fmt"
	"math"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

type Config struct {
	// ContentWeight and CollaborativeWeight blend the two score branches.
	// When one branch has no signal, its weight moves to the other.
	ContentWeight       float64
	CollaborativeWeight float64

	// LikedThreshold is the minimum rating treated as an endorsement when
	// matching users by genre preference during cold start.
	LikedThreshold float64

	// NeutralRating stands in for books nobody has rated when ranking by
	// catalog-wide average.
	NeutralRating float64

	// NeutralWeight is the taste-vector weight of an unrated interaction.
	NeutralWeight float64

	MinRating float64
	MaxRating float64

	// MaxVocabulary caps the TF-IDF vocabulary by document frequency.
	MaxVocabulary int

	DefaultLimit int
}

func DefaultConfig() Config {
	return Config{
		ContentWeight:       0.6,
		CollaborativeWeight: 0.4,
		LikedThreshold:      4.0,
		NeutralRating:       4.0,
		NeutralWeight:       0.6,
		MinRating:           1.0,
		MaxRating:           5.0,
		MaxVocabulary:       2000,
		DefaultLimit:        5,
	}
}

// Snapshot carries the immutable inputs of one recommendation computation.
type Snapshot struct {
	Catalog      []domain.Book
	Roster       []int64
	Interactions []domain.Interaction
}

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Recommend scores the catalog for the given user and returns up to limit
// books the user has not interacted with, best first. An empty catalog yields
// an empty result, a user missing from the roster yields
// domain.ErrUserNotFound, and a user without usable history falls back to the
// cold-start ladder.
func (e *Engine) Recommend(snap Snapshot, userID int64, limit int, preferredGenres []string) ([]domain.ScoredBook, error) {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}
	if len(snap.Catalog) == 0 {
		return []domain.ScoredBook{}, nil
	}
	if err := validateCatalog(snap.Catalog); err != nil {
		return nil, err
	}
	if !onRoster(snap.Roster, userID) {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrUserNotFound)
	}

	history := userHistory(snap.Interactions, userID)
	interacted := make(map[int64]struct{}, len(history))
	for _, in := range history {
		interacted[in.BookID] = struct{}{}
	}

	matrix := e.buildRatingMatrix(snap.Interactions)

	if len(history) == 0 {
		return selectTopN(e.fallback(snap.Catalog, matrix, preferredGenres), interacted, limit), nil
	}

	vocab, vectors := e.vectorize(snap.Catalog)
	content := e.contentScores(history, vocab, vectors, snap.Catalog)
	collaborative := e.collaborativeScores(userID, matrix, snap.Catalog)

	// Both branches degenerate: treat like a cold start rather than failing.
	if content == nil && collaborative == nil {
		return selectTopN(e.fallback(snap.Catalog, matrix, preferredGenres), interacted, limit), nil
	}

	final := e.combineScores(content, collaborative)
	ranked := make([]domain.ScoredBook, len(snap.Catalog))
	for i, b := range snap.Catalog {
		ranked[i] = domain.ScoredBook{BookID: b.ID, Score: final[i]}
	}
	return selectTopN(ranked, interacted, limit), nil
}

func validateCatalog(catalog []domain.Book) error {
	seen := make(map[int64]struct{}, len(catalog))
	for _, b := range catalog {
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("book %d: %w", b.ID, domain.ErrDuplicateBook)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

func onRoster(roster []int64, userID int64) bool {
	for _, id := range roster {
		if id == userID {
			return true
		}
	}
	return false
}

func userHistory(interactions []domain.Interaction, userID int64) []domain.Interaction {
	var out []domain.Interaction
	for _, in := range interactions {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	return out
}

// ratingValue unwraps an optional rating. NaN carries no order, so it is
// treated the same as an absent rating.
func ratingValue(r *float64) (float64, bool) {
	if r == nil || math.IsNaN(*r) {
		return 0, false
	}
	return *r, true
}

// clampRating pulls out-of-range ratings back into bounds instead of
// rejecting the whole interaction.
func (e *Engine) clampRating(r float64) float64 {
	return math.Min(e.cfg.MaxRating, math.Max(e.cfg.MinRating, r))
}
