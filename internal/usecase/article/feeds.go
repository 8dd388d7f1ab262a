package article

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
	"inkpress/internal/repository"
)

// DefaultTrendingDays is the lookback window when the client does not
// ask for one. The client offers 7/30/90 but any positive value works.
const DefaultTrendingDays = 7

// Trending returns the ranked feed of recently published articles:
// views desc, then engagement (likes + comments) desc, then recency.
// The ranking is computed at query time against live counters; nothing
// is precomputed or cached.
func (s *Service) Trending(ctx context.Context, days, limit int) ([]*entity.Article, error) {
	if days <= 0 {
		days = DefaultTrendingDays
	}
	since := time.Now().AddDate(0, 0, -days)

	articles, err := s.Repo.Trending(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("trending articles: %w", err)
	}
	return articles, nil
}

// Stats aggregates engagement totals over the requester's article set at
// request time.
func (s *Service) Stats(ctx context.Context, requester primitive.ObjectID) (*repository.AuthorStats, error) {
	stats, err := s.Repo.AuthorStats(ctx, requester)
	if err != nil {
		return nil, fmt.Errorf("author stats: %w", err)
	}
	return stats, nil
}
