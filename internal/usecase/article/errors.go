// Package article provides use cases for managing articles.
// It implements business logic for authoring, engagement (likes,
// bookmarks, comments), trending ranking, per-author statistics, and
// bulk operations, delegating persistence to the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article does not
	// exist or is invisible to the requester. Drafts deliberately
	// surface this rather than a distinct "forbidden", so their
	// existence is not leaked.
	ErrArticleNotFound = errors.New("article not found")

	// ErrCommentNotFound indicates that the requested comment does not
	// exist on the article.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidArticleID indicates that the provided article ID is not
	// a valid object id.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrForbidden indicates that the authenticated requester is not
	// permitted to perform the operation.
	ErrForbidden = errors.New("not permitted")
)
