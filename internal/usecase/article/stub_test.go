package article_test

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
	"inkpress/internal/repository"
	artUC "inkpress/internal/usecase/article"
)

// Minimal in-memory ArticleRepository shared by the usecase tests.
type stubRepo struct {
	data map[primitive.ObjectID]*entity.Article
	err  error // forces every call to fail when set
}

func newStub() *stubRepo {
	return &stubRepo{data: map[primitive.ObjectID]*entity.Article{}}
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Get(_ context.Context, id primitive.ObjectID) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	// Hand back a copy, like a driver decoding a fresh document.
	cp := *a
	return &cp, nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) List(_ context.Context, f repository.ArticleFilter, offset, limit int) ([]*entity.Article, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		if f.OwnerOnly {
			if a.Author != f.Requester {
				continue
			}
		} else if !a.VisibleTo(f.Requester) {
			continue
		}
		if !f.BookmarkedBy.IsZero() && !a.BookmarkedBy(f.BookmarkedBy) {
			continue
		}
		if !f.Author.IsZero() && !f.OwnerOnly && a.Author != f.Author {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (s *stubRepo) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	if s.err != nil {
		return s.err
	}
	if a := s.data[id]; a != nil {
		a.Views++
	}
	return nil
}

func (s *stubRepo) ToggleLike(_ context.Context, id, userID primitive.ObjectID, at time.Time) (bool, int, error) {
	if s.err != nil {
		return false, 0, s.err
	}
	a := s.data[id]
	for i, l := range a.Likes {
		if l.User == userID {
			a.Likes = append(a.Likes[:i], a.Likes[i+1:]...)
			return false, len(a.Likes), nil
		}
	}
	a.Likes = append(a.Likes, entity.Like{User: userID, CreatedAt: at})
	return true, len(a.Likes), nil
}

func (s *stubRepo) ToggleBookmark(_ context.Context, id, userID primitive.ObjectID) (bool, int, error) {
	if s.err != nil {
		return false, 0, s.err
	}
	a := s.data[id]
	for i, b := range a.Bookmarks {
		if b == userID {
			a.Bookmarks = append(a.Bookmarks[:i], a.Bookmarks[i+1:]...)
			return false, len(a.Bookmarks), nil
		}
	}
	a.Bookmarks = append(a.Bookmarks, userID)
	return true, len(a.Bookmarks), nil
}

func (s *stubRepo) AddComment(_ context.Context, id primitive.ObjectID, c *entity.Comment) error {
	if s.err != nil {
		return s.err
	}
	a := s.data[id]
	if a == nil {
		return entity.ErrNotFound
	}
	a.Comments = append(a.Comments, *c)
	return nil
}

func (s *stubRepo) UpdateComment(_ context.Context, id, commentID primitive.ObjectID, content string, at time.Time) error {
	if s.err != nil {
		return s.err
	}
	a := s.data[id]
	for i := range a.Comments {
		if a.Comments[i].ID == commentID {
			a.Comments[i].Content = content
			a.Comments[i].UpdatedAt = at
			return nil
		}
	}
	return entity.ErrNotFound
}

func (s *stubRepo) DeleteComment(_ context.Context, id, commentID primitive.ObjectID) error {
	if s.err != nil {
		return s.err
	}
	a := s.data[id]
	for i := range a.Comments {
		if a.Comments[i].ID == commentID {
			a.Comments = append(a.Comments[:i], a.Comments[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

func (s *stubRepo) Trending(_ context.Context, since time.Time, limit int) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		if a.Published && a.PublishedAt != nil && !a.PublishedAt.Before(since) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		ei := len(out[i].Likes) + len(out[i].Comments)
		ej := len(out[j].Likes) + len(out[j].Comments)
		if ei != ej {
			return ei > ej
		}
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRepo) AuthorStats(_ context.Context, author primitive.ObjectID) (*repository.AuthorStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	stats := &repository.AuthorStats{}
	for _, a := range s.data {
		if a.Author != author {
			continue
		}
		stats.TotalArticles++
		if a.Published {
			stats.PublishedCount++
		}
		stats.TotalViews += a.Views
		stats.TotalLikes += int64(len(a.Likes))
		stats.TotalComments += int64(len(a.Comments))
		stats.TotalBookmarks += int64(len(a.Bookmarks))
	}
	return stats, nil
}

func (s *stubRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, id := range ids {
		if a, ok := s.data[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, id := range ids {
		if _, ok := s.data[id]; ok {
			delete(s.data, id)
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) UpdateByIDs(_ context.Context, author primitive.ObjectID, ids []primitive.ObjectID, fields repository.BulkFields) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, id := range ids {
		a, ok := s.data[id]
		if !ok || a.Author != author {
			continue
		}
		if fields.Published != nil {
			if *fields.Published && a.PublishedAt == nil {
				now := time.Now()
				a.PublishedAt = &now
			}
			a.Published = *fields.Published
		}
		if fields.Category != nil {
			a.Category = *fields.Category
		}
		n++
	}
	return n, nil
}

func (s *stubRepo) SetFeaturedImage(_ context.Context, id primitive.ObjectID, image *entity.Image) error {
	if s.err != nil {
		return s.err
	}
	a := s.data[id]
	if a == nil {
		return entity.ErrNotFound
	}
	a.FeaturedImage = image
	return nil
}

// stubUsers resolves profiles from a fixed map.
type stubUsers struct {
	profiles map[primitive.ObjectID]entity.Profile
}

func (s *stubUsers) Create(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUsers) Get(_ context.Context, _ primitive.ObjectID) (*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) GetProfiles(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]entity.Profile, error) {
	out := map[primitive.ObjectID]entity.Profile{}
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
func (s *stubUsers) SetAvatar(_ context.Context, _ primitive.ObjectID, _ *entity.Image) error {
	return nil
}

// stubImages records uploads and deletions.
type stubImages struct {
	uploaded  int
	deleted   []string
	uploadErr error
	deleteErr error
}

func (s *stubImages) Upload(_ context.Context, data []byte, folder string) (*entity.Image, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploaded++
	return &entity.Image{ID: "img_stub", URL: "http://localhost/uploads/img_stub"}, nil
}

func (s *stubImages) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

// newService wires a Service over fresh stubs.
func newService() (*artUC.Service, *stubRepo, *stubImages) {
	repo := newStub()
	images := &stubImages{}
	svc := &artUC.Service{
		Repo:   repo,
		Users:  &stubUsers{profiles: map[primitive.ObjectID]entity.Profile{}},
		Images: images,
		Logger: slog.Default(),
	}
	return svc, repo, images
}

// seedArticle inserts a ready-made article owned by author.
func seedArticle(repo *stubRepo, author primitive.ObjectID, published bool) *entity.Article {
	now := time.Now()
	a := &entity.Article{
		ID:        primitive.NewObjectID(),
		Title:     "Seed Article",
		Content:   "Seed content for testing.",
		Author:    author,
		Category:  entity.CategoryOther,
		ReadTime:  1,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if published {
		a.PublishedAt = &now
	}
	repo.data[a.ID] = a
	return a
}
