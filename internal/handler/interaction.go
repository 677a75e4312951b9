package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// POST /users/{userID}/interactions
func (h *Handler) AddInteraction(w http.ResponseWriter, r *http.Request) {
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}
	if req.BookID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid book_id")
		return
	}

	in := domain.Interaction{
		UserID: userID,
		BookID: req.BookID,
		Rating: req.Rating,
		Status: domain.InteractionStatus(req.Status),
	}
	if err := h.service.RecordInteraction(r.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "invalid_interaction", err.Error())
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User with ID %d does not exist", userID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, in)
}
