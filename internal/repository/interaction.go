package repository

import (
	"context"
	"fmt"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// ListInteractions returns the full interaction snapshot, ordered by
// (user_id, book_id) so snapshots compare stably across calls.
func (r *Repository) ListInteractions(ctx context.Context) ([]domain.Interaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, book_id, rating, status
		FROM interactions
		ORDER BY user_id, book_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	var items []domain.Interaction
	for rows.Next() {
		var in domain.Interaction
		if err := rows.Scan(&in.UserID, &in.BookID, &in.Rating, &in.Status); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		items = append(items, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over interactions: %w", err)
	}
	return items, nil
}

// UpsertInteraction keeps the one-row-per-(user, book) invariant: a repeat
// write overwrites rating and status in place.
func (r *Repository) UpsertInteraction(ctx context.Context, in domain.Interaction) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO interactions (user_id, book_id, rating, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, book_id)
		DO UPDATE SET rating = EXCLUDED.rating, status = EXCLUDED.status`,
		in.UserID, in.BookID, in.Rating, in.Status,
	)
	if err != nil {
		return fmt.Errorf("upsert interaction user=%d book=%d: %w", in.UserID, in.BookID, err)
	}
	return nil
}
