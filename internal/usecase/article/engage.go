package article

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
	"inkpress/internal/observability/metrics"
)

// ToggleLike flips the requester's like on the article and returns the
// new state and count. The operation is an involution: invoking it twice
// with the same user restores the original state. Naive clients assuming
// monotonic "like" semantics will observe the second call as an unlike.
func (s *Service) ToggleLike(ctx context.Context, id, requester primitive.ObjectID) (liked bool, count int, err error) {
	if _, err := s.visible(ctx, id, requester); err != nil {
		return false, 0, err
	}

	liked, count, err = s.Repo.ToggleLike(ctx, id, requester, time.Now())
	if err != nil {
		return false, 0, fmt.Errorf("toggle like: %w", err)
	}
	metrics.RecordEngagement("like", liked)
	return liked, count, nil
}

// ToggleBookmark flips the requester's bookmark on the article, with the
// same involution contract as ToggleLike.
func (s *Service) ToggleBookmark(ctx context.Context, id, requester primitive.ObjectID) (bookmarked bool, count int, err error) {
	if _, err := s.visible(ctx, id, requester); err != nil {
		return false, 0, err
	}

	bookmarked, count, err = s.Repo.ToggleBookmark(ctx, id, requester)
	if err != nil {
		return false, 0, fmt.Errorf("toggle bookmark: %w", err)
	}
	metrics.RecordEngagement("bookmark", bookmarked)
	return bookmarked, count, nil
}

// AddComment appends a comment by the requester and returns it with the
// commenter's public profile.
func (s *Service) AddComment(ctx context.Context, id, requester primitive.ObjectID, content string) (*entity.Comment, *entity.Profile, error) {
	if err := entity.ValidateCommentContent(content); err != nil {
		return nil, nil, err
	}
	if _, err := s.visible(ctx, id, requester); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	comment := &entity.Comment{
		ID:        primitive.NewObjectID(),
		User:      requester,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.AddComment(ctx, id, comment); err != nil {
		return nil, nil, fmt.Errorf("add comment: %w", err)
	}
	metrics.RecordEngagement("comment", true)

	profiles, err := s.Users.GetProfiles(ctx, []primitive.ObjectID{requester})
	if err != nil {
		return nil, nil, fmt.Errorf("add comment: resolve author: %w", err)
	}
	profile := profiles[requester]
	return comment, &profile, nil
}

// UpdateComment rewrites a comment's content. Only the comment's own
// author may edit; the article's author has no edit override.
func (s *Service) UpdateComment(ctx context.Context, id, commentID, requester primitive.ObjectID, content string) error {
	if err := entity.ValidateCommentContent(content); err != nil {
		return err
	}

	art, err := s.visible(ctx, id, requester)
	if err != nil {
		return err
	}
	comment := art.CommentByID(commentID)
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.User != requester {
		return ErrForbidden
	}

	if err := s.Repo.UpdateComment(ctx, id, commentID, content, time.Now()); err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// DeleteComment removes a comment. Permitted for the comment's author
// and, as a moderation override, the article's author.
func (s *Service) DeleteComment(ctx context.Context, id, commentID, requester primitive.ObjectID) error {
	art, err := s.visible(ctx, id, requester)
	if err != nil {
		return err
	}
	comment := art.CommentByID(commentID)
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.User != requester && art.Author != requester {
		return ErrForbidden
	}

	if err := s.Repo.DeleteComment(ctx, id, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	metrics.RecordEngagement("comment", false)
	return nil
}
