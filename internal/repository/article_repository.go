package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
)

// ArticleFilter contains the optional filters for article list queries.
// Zero values mean "no filter" for each field.
type ArticleFilter struct {
	Tag      string             // Containment match against the tags array
	Category entity.Category    // Exact category match
	Author   primitive.ObjectID // Exact author match
	Search   string             // Case-insensitive substring over title, content, tags
	// Visibility: when Requester is zero only published articles match;
	// otherwise published articles plus the requester's own drafts.
	Requester primitive.ObjectID
	// OwnerOnly restricts results to the requester's articles regardless
	// of published state (the "my articles" feed).
	OwnerOnly bool
	// BookmarkedBy restricts results to articles bookmarked by the user.
	BookmarkedBy primitive.ObjectID
}

// BulkFields is the whitelisted field set for bulk updates.
// Nil pointers mean "leave unchanged".
type BulkFields struct {
	Published *bool
	Category  *entity.Category
}

// AuthorStats is the aggregate over one author's article set.
type AuthorStats struct {
	TotalArticles  int64
	PublishedCount int64
	TotalViews     int64
	TotalLikes     int64
	TotalComments  int64
	TotalBookmarks int64
}

// ArticleRepository persists articles in a document store. Engagement
// mutations (toggles, comment edits, view counts) are expressed as atomic
// per-document operations so concurrent requests converge without
// application-level locking.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	// Get retrieves an article by id. Returns (nil, nil) when absent.
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error)
	// Update persists the mutable content fields of the article
	// (title, content, excerpt, tags, category, published, publishedAt,
	// readTime, updatedAt). Engagement fields are untouched.
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List returns a page of articles matching the filter, most recently
	// published first (drafts sort by creation time), plus the total count.
	List(ctx context.Context, filter ArticleFilter, offset, limit int) ([]*entity.Article, int64, error)

	// IncrementViews atomically bumps the view counter.
	IncrementViews(ctx context.Context, id primitive.ObjectID) error

	// ToggleLike flips the user's like membership and returns the
	// resulting state and like count.
	ToggleLike(ctx context.Context, id, userID primitive.ObjectID, at time.Time) (liked bool, count int, err error)
	// ToggleBookmark flips the user's bookmark membership and returns the
	// resulting state and bookmark count.
	ToggleBookmark(ctx context.Context, id, userID primitive.ObjectID) (bookmarked bool, count int, err error)

	// AddComment appends the comment to the article's thread.
	AddComment(ctx context.Context, id primitive.ObjectID, comment *entity.Comment) error
	// UpdateComment rewrites the content of one comment.
	UpdateComment(ctx context.Context, id, commentID primitive.ObjectID, content string, at time.Time) error
	// DeleteComment removes one comment by id.
	DeleteComment(ctx context.Context, id, commentID primitive.ObjectID) error

	// Trending returns published articles with publishedAt >= since,
	// ordered by views desc, engagement (likes+comments) desc, then
	// publishedAt desc.
	Trending(ctx context.Context, since time.Time, limit int) ([]*entity.Article, error)

	// AuthorStats aggregates engagement totals over the author's articles.
	AuthorStats(ctx context.Context, author primitive.ObjectID) (*AuthorStats, error)

	// FindByIDs returns the articles whose ids are in the given set.
	// Missing ids are silently absent from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Article, error)
	// DeleteByIDs removes all listed articles, returning the deleted count.
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	// UpdateByIDs applies the bulk field set to the author's articles among
	// ids, stamping publishedAt on records that gain published=true for the
	// first time. Returns the modified count.
	UpdateByIDs(ctx context.Context, author primitive.ObjectID, ids []primitive.ObjectID, fields BulkFields) (int64, error)

	// SetFeaturedImage replaces the article's stored image reference.
	// A nil image clears it.
	SetFeaturedImage(ctx context.Context, id primitive.ObjectID, image *entity.Image) error
}
