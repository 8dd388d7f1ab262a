// Package article provides HTTP handlers for the article endpoints:
// CRUD, engagement, feeds, stats, bulk operations, and image upload.
package article

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/common/pagination"
	"inkpress/internal/domain/entity"
)

// ProfileDTO is the public author/commenter shape embedded in responses.
type ProfileDTO struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Avatar *entity.Image `json:"avatar,omitempty"`
	Bio    string        `json:"bio,omitempty"`
}

// CommentDTO is the JSON shape of a comment with its author populated.
type CommentDTO struct {
	ID        string      `json:"id"`
	User      *ProfileDTO `json:"user,omitempty"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// DTO is the JSON shape of an article. Engagement arrays are exposed as
// counts plus the requester's own state; the full comment list is only
// included on the detail endpoint.
type DTO struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content,omitempty"`
	Excerpt       string        `json:"excerpt"`
	Author        *ProfileDTO   `json:"author,omitempty"`
	Tags          []string      `json:"tags"`
	Category      string        `json:"category"`
	FeaturedImage *entity.Image `json:"featuredImage,omitempty"`
	ReadTime      int           `json:"readTime"`
	Likes         int           `json:"likes"`
	Liked         bool          `json:"liked"`
	Bookmarks     int           `json:"bookmarks"`
	Bookmarked    bool          `json:"bookmarked"`
	CommentCount  int           `json:"commentCount"`
	Comments      []CommentDTO  `json:"comments,omitempty"`
	Published     bool          `json:"published"`
	PublishedAt   *time.Time    `json:"publishedAt,omitempty"`
	Views         int64         `json:"views"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// listResponse is the paginated list envelope.
type listResponse struct {
	Success    bool                `json:"success"`
	Articles   []DTO               `json:"articles"`
	Pagination pagination.Metadata `json:"pagination"`
}

// detailResponse wraps a single article.
type detailResponse struct {
	Success bool `json:"success"`
	Article DTO  `json:"article"`
}

func toProfileDTO(p entity.Profile) *ProfileDTO {
	if p.ID.IsZero() {
		return nil
	}
	return &ProfileDTO{ID: p.ID.Hex(), Name: p.Name, Avatar: p.Avatar, Bio: p.Bio}
}

func toCommentDTO(c entity.Comment, profiles map[primitive.ObjectID]entity.Profile) CommentDTO {
	return CommentDTO{
		ID:        c.ID.Hex(),
		User:      toProfileDTO(profiles[c.User]),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// toDTO converts an article for the given requester. withDetail controls
// whether the body and the full comment list are included.
func toDTO(a *entity.Article, profiles map[primitive.ObjectID]entity.Profile, requester primitive.ObjectID, withDetail bool) DTO {
	out := DTO{
		ID:            a.ID.Hex(),
		Title:         a.Title,
		Excerpt:       a.Excerpt,
		Author:        toProfileDTO(profiles[a.Author]),
		Tags:          a.Tags,
		Category:      string(a.Category),
		FeaturedImage: a.FeaturedImage,
		ReadTime:      a.ReadTime,
		Likes:         len(a.Likes),
		Liked:         a.LikedBy(requester),
		Bookmarks:     len(a.Bookmarks),
		Bookmarked:    a.BookmarkedBy(requester),
		CommentCount:  len(a.Comments),
		Published:     a.Published,
		PublishedAt:   a.PublishedAt,
		Views:         a.Views,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if withDetail {
		out.Content = a.Content
		out.Comments = make([]CommentDTO, 0, len(a.Comments))
		for _, c := range a.Comments {
			out.Comments = append(out.Comments, toCommentDTO(c, profiles))
		}
	}
	return out
}

// profileIDs collects the user ids a response needs resolved: each
// article's author and, in detail mode, every commenter.
func profileIDs(articles []*entity.Article, withDetail bool) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{})
	var ids []primitive.ObjectID
	add := func(id primitive.ObjectID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, a := range articles {
		add(a.Author)
		if withDetail {
			for _, c := range a.Comments {
				add(c.User)
			}
		}
	}
	return ids
}
