package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shelfwise/recommendation-service/internal/cache"
	"github.com/shelfwise/recommendation-service/internal/domain"
	"github.com/shelfwise/recommendation-service/internal/engine"
	"github.com/shelfwise/recommendation-service/internal/repository"
)

const (
	defaultLimit     = 10
	maxLimit         = 50
	batchConcurrency = 10
	batchRecLimit    = 10
)

type Service struct {
	repo   *repository.Repository
	cache  *cache.Cache
	engine *engine.Engine
}

func NewService(repo *repository.Repository, cache *cache.Cache, eng *engine.Engine) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		engine: eng,
	}
}

func (s *Service) GetRecommendations(ctx context.Context, userID int64, limit int) (*domain.RecommendationResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	// Check Cache
	cached, found, err := s.cache.Get(ctx, userID, limit)
	if err != nil {
		log.Printf("[service] cache get error for user %d: %v", userID, err)
	}

	// Use recommendations from cache if available
	if found {
		return &domain.RecommendationResult{
			Recommendations: cached,
			CacheHit:        true,
		}, nil
	}

	// Cache miss -> score a fresh snapshot
	recs, err := s.generateRecommendations(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	// Store recommendations in cache
	if cacheErr := s.cache.Set(ctx, userID, limit, recs); cacheErr != nil {
		log.Printf("[service] cache set error for user %d: %v", userID, cacheErr)
	}

	return &domain.RecommendationResult{
		Recommendations: recs,
		CacheHit:        false,
	}, nil
}

func (s *Service) generateRecommendations(ctx context.Context, userID int64, limit int) ([]domain.ScoredBook, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	var preferred []string
	genres, err := s.repo.GetPreferredGenres(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch preferences: %w", err)
	}
	if genres != "" {
		preferred = []string{genres}
	}

	recs, err := s.engine.Recommend(snap, userID, limit, preferred)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// loadSnapshot assembles the three read-only snapshots the engine consumes.
func (s *Service) loadSnapshot(ctx context.Context) (engine.Snapshot, error) {
	catalog, err := s.repo.ListBooks(ctx)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("fetch catalog: %w", err)
	}
	roster, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("fetch roster: %w", err)
	}
	interactions, err := s.repo.ListInteractions(ctx)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("fetch interactions: %w", err)
	}
	return engine.Snapshot{
		Catalog:      catalog,
		Roster:       roster,
		Interactions: interactions,
	}, nil
}

func (s *Service) GetBatchRecommendations(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	// Fetch paginated user IDs
	userIDs, err := s.repo.GetUserIDsPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch user ids: %w", err)
	}

	// Fetch total user
	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count user: %w", err)
	}

	// Process users concurrently with bounded worker pool
	results := make([]domain.BatchUserResult, len(userIDs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, userID := range userIDs {
		wg.Add(1)
		go func(idx int, uid int64) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			result := s.processUserForBatch(ctx, uid)
			results[idx] = result
		}(i, userID)
	}
	wg.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	elapsed := time.Since(start).Milliseconds()

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalUsers: totalUsers,
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: elapsed,
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Generates recommendations for a single user, capturing errors.
func (s *Service) processUserForBatch(ctx context.Context, userID int64) domain.BatchUserResult {
	result, err := s.GetRecommendations(ctx, userID, batchRecLimit)
	if err != nil {
		log.Printf("[service] batch: failed for user %d: %v", userID, err)
		code, msg := categorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchUserResult{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

// RecordInteraction upserts an interaction and clears the user's cached
// recommendations, since their taste profile just changed.
func (s *Service) RecordInteraction(ctx context.Context, in domain.Interaction) error {
	switch in.Status {
	case domain.StatusRead, domain.StatusReading, domain.StatusWishlist:
	default:
		return fmt.Errorf("status %q: %w", in.Status, domain.ErrInvalidStatus)
	}
	if _, err := s.repo.GetUserByID(ctx, in.UserID); err != nil {
		return err
	}
	if err := s.repo.UpsertInteraction(ctx, in); err != nil {
		return err
	}
	if err := s.cache.ClearUserCache(ctx, in.UserID); err != nil {
		log.Printf("[service] cache invalidation error for user %d: %v", in.UserID, err)
	}
	return nil
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrUserNotFound) {
		return "user_not_found", "user not found"
	}
	if errors.Is(err, domain.ErrDuplicateBook) {
		return "invalid_catalog", "catalog snapshot contains duplicate book ids"
	}
	return "internal_error", "an unexpected error occurred"
}
