// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and User, along with
// their validation rules, derived-field computation, and domain-specific errors.
package entity

import (
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field length limits enforced at the domain boundary.
const (
	MaxTitleLength   = 200
	MaxExcerptLength = 300
	MaxTagLength     = 30
	MaxCommentLength = 1000
)

// WordsPerMinute is the reading speed used to derive an article's read time.
const WordsPerMinute = 200

// Article represents a long-form post authored by a user.
// Engagement data (likes, comments, bookmarks) is embedded in the document
// so that toggles and appends are single atomic document updates.
type Article struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Title         string               `bson:"title"`
	Content       string               `bson:"content"`
	Excerpt       string               `bson:"excerpt,omitempty"`
	Author        primitive.ObjectID   `bson:"author"`
	Tags          []string             `bson:"tags,omitempty"`
	Category      Category             `bson:"category"`
	FeaturedImage *Image               `bson:"featuredImage,omitempty"`
	ReadTime      int                  `bson:"readTime"`
	Likes         []Like               `bson:"likes"`
	Comments      []Comment            `bson:"comments"`
	Bookmarks     []primitive.ObjectID `bson:"bookmarks"`
	Published     bool                 `bson:"published"`
	PublishedAt   *time.Time           `bson:"publishedAt,omitempty"`
	Views         int64                `bson:"views"`
	CreatedAt     time.Time            `bson:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt"`
}

// Image is a stored image reference. ID identifies the blob at the backend
// that stored it (remote delete handle or local filename), URL is where
// clients fetch it from.
type Image struct {
	ID  string `bson:"id" json:"id"`
	URL string `bson:"url" json:"url"`
}

// Like records a single user's like with the time it was given.
// At most one entry per user is kept.
type Like struct {
	User      primitive.ObjectID `bson:"user"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Comment is one entry in an article's comment thread.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id"`
	User      primitive.ObjectID `bson:"user"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// LikedBy reports whether the given user currently has a like entry.
func (a *Article) LikedBy(userID primitive.ObjectID) bool {
	for _, l := range a.Likes {
		if l.User == userID {
			return true
		}
	}
	return false
}

// BookmarkedBy reports whether the given user has bookmarked the article.
func (a *Article) BookmarkedBy(userID primitive.ObjectID) bool {
	for _, b := range a.Bookmarks {
		if b == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the comment with the given id, or nil if absent.
func (a *Article) CommentByID(commentID primitive.ObjectID) *Comment {
	for i := range a.Comments {
		if a.Comments[i].ID == commentID {
			return &a.Comments[i]
		}
	}
	return nil
}

// VisibleTo reports whether the article may be observed by the requester.
// Drafts are visible only to their author; a zero requester means anonymous.
func (a *Article) VisibleTo(requester primitive.ObjectID) bool {
	if a.Published {
		return true
	}
	return !requester.IsZero() && a.Author == requester
}

// Validate checks field constraints on a fully populated article.
// Returns a ValidationError describing the first violated constraint.
func (a *Article) Validate() error {
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if utf8.RuneCountInString(a.Title) > MaxTitleLength {
		return &ValidationError{Field: "title", Message: "must be at most 200 characters"}
	}
	if a.Content == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if utf8.RuneCountInString(a.Excerpt) > MaxExcerptLength {
		return &ValidationError{Field: "excerpt", Message: "must be at most 300 characters"}
	}
	if err := ValidateTags(a.Tags); err != nil {
		return err
	}
	if !a.Category.Valid() {
		return &ValidationError{Field: "category", Message: "is not a known category"}
	}
	return nil
}
