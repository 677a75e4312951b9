package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetPreferredGenres returns the raw onboarding genre preference string for a
// user, empty when none was recorded. The engine normalizes the loose
// formatting (brackets, quotes, comma lists) itself.
func (r *Repository) GetPreferredGenres(ctx context.Context, userID int64) (string, error) {
	var genres string
	err := r.pool.QueryRow(ctx,
		`SELECT preferred_genres FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(&genres)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("query preferences for user %d: %w", userID, err)
	}
	return genres, nil
}
