package handler

import "github.com/shelfwise/recommendation-service/internal/domain"

type RecommendationResponse struct {
	UserID          int64                     `json:"user_id"`
	Recommendations []domain.ScoredBook       `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type InteractionRequest struct {
	BookID int64    `json:"book_id"`
	Rating *float64 `json:"rating,omitempty"`
	Status string   `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
