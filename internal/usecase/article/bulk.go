package article

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"inkpress/internal/domain/entity"
	"inkpress/internal/observability/metrics"
	"inkpress/internal/repository"
)

// imageReleaseWorkers caps concurrent image-host calls during bulk delete.
const imageReleaseWorkers = 4

// dedupeIDs drops repeated ids, keeping first-occurrence order. A
// repeated id resolves to one article, which must not trip the
// all-or-nothing ownership check.
func dedupeIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// BulkDelete removes the requester's articles listed in ids.
// Authorization is all-or-nothing: if any id is missing or belongs to
// another author the whole call fails with ErrForbidden and nothing is
// deleted. Stored images are released best-effort before the records go;
// a failure mid-batch can leave images unreleased, which is accepted.
func (s *Service) BulkDelete(ctx context.Context, requester primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, &entity.ValidationError{Field: "ids", Message: "is required"}
	}
	ids = dedupeIDs(ids)

	articles, err := s.Repo.FindByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete: %w", err)
	}
	if len(articles) != len(ids) {
		return 0, ErrForbidden
	}
	for _, art := range articles {
		if art.Author != requester {
			return 0, ErrForbidden
		}
	}

	// Release images concurrently; errors are logged, never fatal.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageReleaseWorkers)
	for _, art := range articles {
		if art.FeaturedImage == nil {
			continue
		}
		g.Go(func() error {
			if err := s.Images.Delete(gctx, art.FeaturedImage.ID); err != nil {
				s.Logger.Warn("failed to release stored image during bulk delete",
					slog.String("article_id", art.ID.Hex()),
					slog.String("image_id", art.FeaturedImage.ID),
					slog.String("error", err.Error()))
			}
			return nil
		})
	}
	_ = g.Wait()

	deleted, err := s.Repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete: %w", err)
	}
	metrics.RecordArticlesDeleted(int(deleted))
	return deleted, nil
}

// BulkUpdateInput is the whitelisted field set for bulk updates.
// Unknown fields are dropped by the handler before this point.
type BulkUpdateInput struct {
	Published *bool
	Category  *string
}

// BulkUpdate applies the field set to the requester's articles among ids.
// Unlike BulkDelete this path is partial-permissive: ids the requester
// does not own are silently excluded and the modified count reflects
// only the articles actually updated. publishedAt is stamped for records
// gaining published=true for the first time.
func (s *Service) BulkUpdate(ctx context.Context, requester primitive.ObjectID, ids []primitive.ObjectID, in BulkUpdateInput) (int64, error) {
	if len(ids) == 0 {
		return 0, &entity.ValidationError{Field: "ids", Message: "is required"}
	}

	fields := repository.BulkFields{Published: in.Published}
	if in.Category != nil {
		category, ok := entity.ParseCategory(*in.Category)
		if !ok || category == "" {
			return 0, &entity.ValidationError{Field: "category", Message: "is not a known category"}
		}
		fields.Category = &category
	}
	if fields.Published == nil && fields.Category == nil {
		return 0, &entity.ValidationError{Field: "updates", Message: "must set published or category"}
	}

	modified, err := s.Repo.UpdateByIDs(ctx, requester, ids, fields)
	if err != nil {
		return 0, fmt.Errorf("bulk update: %w", err)
	}
	return modified, nil
}
