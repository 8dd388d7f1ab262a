package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
	"inkpress/internal/observability/metrics"
	"inkpress/internal/repository"
)

// ImageStore is the upload adapter consumed by the service.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, folder string) (*entity.Image, error)
	Delete(ctx context.Context, id string) error
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates
// persistence to the repository.
type Service struct {
	Repo   repository.ArticleRepository
	Users  repository.UserRepository
	Images ImageStore
	Logger *slog.Logger
}

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title     string
	Content   string
	Excerpt   string
	Tags      []string
	Category  string
	Published bool
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Tags      []string
	Category  *string
	Published *bool
}

// Create creates a new article authored by the given user.
// Derived fields (read time, excerpt) are computed here; publishedAt is
// stamped when the article is created already published.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, author primitive.ObjectID, in CreateInput) (*entity.Article, error) {
	category, ok := entity.ParseCategory(in.Category)
	if !ok {
		return nil, &entity.ValidationError{Field: "category", Message: "is not a known category"}
	}
	if category == "" {
		category = entity.CategoryOther
	}

	now := time.Now()
	art := &entity.Article{
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Author:    author,
		Tags:      entity.NormalizeTags(in.Tags),
		Category:  category,
		Published: in.Published,
		Likes:     []entity.Like{},
		Comments:  []entity.Comment{},
		Bookmarks: []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	art.ApplyContentDerivations()
	if in.Published {
		art.PublishedAt = &now
	}

	if err := art.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordArticleCreated(in.Published)
	return art, nil
}

// Get retrieves a single article by id for the given requester and
// counts the view. A zero requester means anonymous.
// Returns ErrArticleNotFound when the article is absent or is a draft
// the requester may not see.
func (s *Service) Get(ctx context.Context, id, requester primitive.ObjectID) (*entity.Article, error) {
	art, err := s.visible(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	// The counter bump is fire-and-forget from the reader's perspective;
	// a failed increment must not hide the article.
	if err := s.Repo.IncrementViews(ctx, id); err != nil {
		s.Logger.Warn("failed to increment views",
			slog.String("article_id", id.Hex()),
			slog.String("error", err.Error()))
	} else {
		art.Views++
	}
	return art, nil
}

// Update modifies an article's content fields. Only the author may update.
// Only non-nil fields in the input will be updated; readTime and excerpt
// are recomputed when content changes, and publishedAt is stamped on the
// first draft-to-published transition and never thereafter.
func (s *Service) Update(ctx context.Context, id, requester primitive.ObjectID, in UpdateInput) (*entity.Article, error) {
	art, err := s.owned(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	contentChanged := false
	if in.Title != nil {
		art.Title = *in.Title
	}
	if in.Content != nil && *in.Content != art.Content {
		art.Content = *in.Content
		contentChanged = true
	}
	if in.Excerpt != nil {
		art.Excerpt = *in.Excerpt
	}
	if in.Tags != nil {
		art.Tags = entity.NormalizeTags(in.Tags)
	}
	if in.Category != nil {
		category, ok := entity.ParseCategory(*in.Category)
		if !ok {
			return nil, &entity.ValidationError{Field: "category", Message: "is not a known category"}
		}
		if category != "" {
			art.Category = category
		}
	}
	if contentChanged {
		art.ReadTime = entity.ReadTime(art.Content)
		if in.Excerpt == nil {
			art.Excerpt = entity.Excerpt(art.Content)
		}
	}
	if in.Published != nil {
		if *in.Published && art.PublishedAt == nil {
			now := time.Now()
			art.PublishedAt = &now
		}
		art.Published = *in.Published
	}
	art.UpdatedAt = time.Now()

	if err := art.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article. Only the author may delete. The stored
// featured image is released first, best-effort: a failed image delete
// is logged and never blocks the record deletion.
func (s *Service) Delete(ctx context.Context, id, requester primitive.ObjectID) error {
	art, err := s.owned(ctx, id, requester)
	if err != nil {
		return err
	}

	s.releaseImage(ctx, art)

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	metrics.RecordArticlesDeleted(1)
	return nil
}

// List retrieves a page of articles matching the filter plus the total
// count, most recently published first.
func (s *Service) List(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]*entity.Article, int64, error) {
	articles, total, err := s.Repo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

// Profiles resolves public profiles for the given user ids, for
// populating author and commenter fields in responses.
func (s *Service) Profiles(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]entity.Profile, error) {
	profiles, err := s.Users.GetProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve profiles: %w", err)
	}
	return profiles, nil
}

// UploadImage stores a new featured image for the article and records it.
// Only the author may replace the image; the prior image is released
// best-effort before the new reference is saved.
func (s *Service) UploadImage(ctx context.Context, id, requester primitive.ObjectID, data []byte) (*entity.Image, error) {
	art, err := s.owned(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	s.releaseImage(ctx, art)

	img, err := s.Images.Upload(ctx, data, "articles")
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetFeaturedImage(ctx, id, img); err != nil {
		return nil, fmt.Errorf("set featured image: %w", err)
	}
	return img, nil
}

// visible loads an article and applies the visibility rule, folding
// invisible drafts into ErrArticleNotFound.
func (s *Service) visible(ctx context.Context, id, requester primitive.ObjectID) (*entity.Article, error) {
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil || !art.VisibleTo(requester) {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// owned loads an article and requires the requester to be its author.
// Existence is checked before authorization: a foreign published article
// yields ErrForbidden, an absent or invisible one ErrArticleNotFound.
func (s *Service) owned(ctx context.Context, id, requester primitive.ObjectID) (*entity.Article, error) {
	art, err := s.visible(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	if art.Author != requester {
		return nil, ErrForbidden
	}
	return art, nil
}

// releaseImage deletes the article's stored image, logging failures.
func (s *Service) releaseImage(ctx context.Context, art *entity.Article) {
	if art.FeaturedImage == nil {
		return
	}
	if err := s.Images.Delete(ctx, art.FeaturedImage.ID); err != nil {
		s.Logger.Warn("failed to release stored image",
			slog.String("article_id", art.ID.Hex()),
			slog.String("image_id", art.FeaturedImage.ID),
			slog.String("error", err.Error()))
	}
}
