// Package mongodb provides MongoDB implementations of the repository interfaces.
package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/repository"
)

// buildArticleFilter translates an ArticleFilter into a bson document.
// The visibility rule is folded in here so every list path applies it:
// anonymous requesters see only published articles, authenticated ones
// additionally see their own drafts, and OwnerOnly feeds skip the
// published check entirely.
func buildArticleFilter(f repository.ArticleFilter) bson.M {
	filter := bson.M{}

	switch {
	case f.OwnerOnly:
		filter["author"] = f.Requester
	case f.Requester.IsZero():
		filter["published"] = true
	default:
		filter["$or"] = bson.A{
			bson.M{"published": true},
			bson.M{"author": f.Requester},
		}
	}

	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if !f.Author.IsZero() && !f.OwnerOnly {
		filter["author"] = f.Author
	}
	if !f.BookmarkedBy.IsZero() {
		filter["bookmarks"] = f.BookmarkedBy
	}

	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		search := bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
			bson.M{"tags": pattern},
		}
		// Combine with the visibility $or via $and; a filter cannot
		// carry two top-level $or clauses.
		if vis, ok := filter["$or"]; ok {
			delete(filter, "$or")
			filter["$and"] = bson.A{
				bson.M{"$or": vis},
				bson.M{"$or": search},
			}
		} else {
			filter["$or"] = search
		}
	}

	return filter
}

// articleSort is the general feed ordering: most recently published
// first, with drafts (no publishedAt) ordered by creation time.
func articleSort() bson.D {
	return bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}
}
