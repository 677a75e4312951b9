package repository

import (
	"context"
	"fmt"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// ListBooks returns the full catalog snapshot, ordered by id.
func (r *Repository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, author, genre, description
		FROM books
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Description); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over books: %w", err)
	}
	return books, nil
}
