package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkpress/internal/domain/entity"
	"inkpress/internal/repository"
)

type ArticleRepo struct {
	col *mongo.Collection
}

func NewArticleRepo(database *mongo.Database) repository.ArticleRepository {
	return &ArticleRepo{col: database.Collection("articles")}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	if _, err := repo.col.InsertOne(ctx, article); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error) {
	var article entity.Article
	err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

// Update persists content fields only. Engagement arrays and the view
// counter are owned by their atomic operations and never rewritten here,
// so a stale in-memory copy cannot clobber concurrent likes or comments.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	update := bson.M{"$set": bson.M{
		"title":         article.Title,
		"content":       article.Content,
		"excerpt":       article.Excerpt,
		"tags":          article.Tags,
		"category":      article.Category,
		"readTime":      article.ReadTime,
		"published":     article.Published,
		"publishedAt":   article.PublishedAt,
		"featuredImage": article.FeaturedImage,
		"updatedAt":     article.UpdatedAt,
	}}
	res, err := repo.col.UpdateOne(ctx, bson.M{"_id": article.ID}, update)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := repo.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]*entity.Article, int64, error) {
	query := buildArticleFilter(filter)

	total, err := repo.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("List: count: %w", err)
	}

	opts := options.Find().
		SetSort(articleSort()).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := repo.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	articles := make([]*entity.Article, 0, limit)
	for cur.Next(ctx) {
		var article entity.Article
		if err := cur.Decode(&article); err != nil {
			return nil, 0, fmt.Errorf("List: decode: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, total, cur.Err()
}

func (repo *ArticleRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := repo.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("IncrementViews: %w", err)
	}
	return nil
}

// ToggleLike removes the user's like entry if present, otherwise adds one.
// Both branches are single guarded updates, so two concurrent toggles by
// the same user resolve to last-write-wins without a partial state.
func (repo *ArticleRepo) ToggleLike(ctx context.Context, id, userID primitive.ObjectID, at time.Time) (bool, int, error) {
	res, err := repo.col.UpdateOne(ctx,
		bson.M{"_id": id, "likes.user": userID},
		bson.M{"$pull": bson.M{"likes": bson.M{"user": userID}}})
	if err != nil {
		return false, 0, fmt.Errorf("ToggleLike: pull: %w", err)
	}

	liked := false
	if res.ModifiedCount == 0 {
		// No entry to remove: add one, guarded against a duplicate racing in.
		_, err = repo.col.UpdateOne(ctx,
			bson.M{"_id": id, "likes.user": bson.M{"$ne": userID}},
			bson.M{"$push": bson.M{"likes": entity.Like{User: userID, CreatedAt: at}}})
		if err != nil {
			return false, 0, fmt.Errorf("ToggleLike: push: %w", err)
		}
		liked = true
	}

	count, err := repo.arrayLen(ctx, id, "likes")
	if err != nil {
		return false, 0, fmt.Errorf("ToggleLike: %w", err)
	}
	return liked, count, nil
}

// ToggleBookmark mirrors ToggleLike over the bookmark set. $addToSet is
// enough here because bookmarks carry no timestamp.
func (repo *ArticleRepo) ToggleBookmark(ctx context.Context, id, userID primitive.ObjectID) (bool, int, error) {
	res, err := repo.col.UpdateOne(ctx,
		bson.M{"_id": id, "bookmarks": userID},
		bson.M{"$pull": bson.M{"bookmarks": userID}})
	if err != nil {
		return false, 0, fmt.Errorf("ToggleBookmark: pull: %w", err)
	}

	bookmarked := false
	if res.ModifiedCount == 0 {
		_, err = repo.col.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$addToSet": bson.M{"bookmarks": userID}})
		if err != nil {
			return false, 0, fmt.Errorf("ToggleBookmark: add: %w", err)
		}
		bookmarked = true
	}

	count, err := repo.arrayLen(ctx, id, "bookmarks")
	if err != nil {
		return false, 0, fmt.Errorf("ToggleBookmark: %w", err)
	}
	return bookmarked, count, nil
}

// arrayLen projects the size of one array field on a single document.
func (repo *ArticleRepo) arrayLen(ctx context.Context, id primitive.ObjectID, field string) (int, error) {
	var doc struct {
		N int `bson:"n"`
	}
	opts := options.FindOne().SetProjection(bson.M{"n": bson.M{"$size": "$" + field}})
	err := repo.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, entity.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return doc.N, nil
}

func (repo *ArticleRepo) AddComment(ctx context.Context, id primitive.ObjectID, comment *entity.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	res, err := repo.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return fmt.Errorf("AddComment: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ArticleRepo) UpdateComment(ctx context.Context, id, commentID primitive.ObjectID, content string, at time.Time) error {
	res, err := repo.col.UpdateOne(ctx,
		bson.M{"_id": id, "comments._id": commentID},
		bson.M{"$set": bson.M{
			"comments.$.content":   content,
			"comments.$.updatedAt": at,
		}})
	if err != nil {
		return fmt.Errorf("UpdateComment: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ArticleRepo) DeleteComment(ctx context.Context, id, commentID primitive.ObjectID) error {
	res, err := repo.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}})
	if err != nil {
		return fmt.Errorf("DeleteComment: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Trending ranks recent published articles. The engagement key has to be
// materialized with $size before sorting; sorting on an array field
// directly compares elements, not lengths.
func (repo *ArticleRepo) Trending(ctx context.Context, since time.Time, limit int) ([]*entity.Article, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"published":   true,
			"publishedAt": bson.M{"$gte": since},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"engagement": bson.M{"$add": bson.A{
				bson.M{"$size": "$likes"},
				bson.M{"$size": "$comments"},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "views", Value: -1},
			{Key: "engagement", Value: -1},
			{Key: "publishedAt", Value: -1},
		}}},
		{{Key: "$limit", Value: int64(limit)}},
	}

	cur, err := repo.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("Trending: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	articles := make([]*entity.Article, 0, limit)
	for cur.Next(ctx) {
		var article entity.Article
		if err := cur.Decode(&article); err != nil {
			return nil, fmt.Errorf("Trending: decode: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, cur.Err()
}

func (repo *ArticleRepo) AuthorStats(ctx context.Context, author primitive.ObjectID) (*repository.AuthorStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"author": author}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"totalArticles":  bson.M{"$sum": 1},
			"publishedCount": bson.M{"$sum": bson.M{"$cond": bson.A{"$published", 1, 0}}},
			"totalViews":     bson.M{"$sum": "$views"},
			"totalLikes":     bson.M{"$sum": bson.M{"$size": "$likes"}},
			"totalComments":  bson.M{"$sum": bson.M{"$size": "$comments"}},
			"totalBookmarks": bson.M{"$sum": bson.M{"$size": "$bookmarks"}},
		}}},
	}

	cur, err := repo.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("AuthorStats: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var row struct {
		TotalArticles  int64 `bson:"totalArticles"`
		PublishedCount int64 `bson:"publishedCount"`
		TotalViews     int64 `bson:"totalViews"`
		TotalLikes     int64 `bson:"totalLikes"`
		TotalComments  int64 `bson:"totalComments"`
		TotalBookmarks int64 `bson:"totalBookmarks"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("AuthorStats: decode: %w", err)
		}
	}
	return &repository.AuthorStats{
		TotalArticles:  row.TotalArticles,
		PublishedCount: row.PublishedCount,
		TotalViews:     row.TotalViews,
		TotalLikes:     row.TotalLikes,
		TotalComments:  row.TotalComments,
		TotalBookmarks: row.TotalBookmarks,
	}, cur.Err()
}

func (repo *ArticleRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Article, error) {
	cur, err := repo.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("FindByIDs: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	articles := make([]*entity.Article, 0, len(ids))
	for cur.Next(ctx) {
		var article entity.Article
		if err := cur.Decode(&article); err != nil {
			return nil, fmt.Errorf("FindByIDs: decode: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, cur.Err()
}

func (repo *ArticleRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := repo.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("DeleteByIDs: %w", err)
	}
	return res.DeletedCount, nil
}

// UpdateByIDs applies the whitelisted bulk fields to the author's own
// articles among ids. When published is being set true, publishedAt is
// stamped first on exactly the records that never had one, preserving
// the set-once invariant.
func (repo *ArticleRepo) UpdateByIDs(ctx context.Context, author primitive.ObjectID, ids []primitive.ObjectID, fields repository.BulkFields) (int64, error) {
	owned := bson.M{"_id": bson.M{"$in": ids}, "author": author}

	set := bson.M{"updatedAt": time.Now()}
	if fields.Published != nil {
		set["published"] = *fields.Published
		if *fields.Published {
			stamp := bson.M{"_id": bson.M{"$in": ids}, "author": author, "publishedAt": nil}
			if _, err := repo.col.UpdateMany(ctx, stamp,
				bson.M{"$set": bson.M{"publishedAt": time.Now()}}); err != nil {
				return 0, fmt.Errorf("UpdateByIDs: stamp publishedAt: %w", err)
			}
		}
	}
	if fields.Category != nil {
		set["category"] = *fields.Category
	}

	res, err := repo.col.UpdateMany(ctx, owned, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("UpdateByIDs: %w", err)
	}
	return res.MatchedCount, nil
}

func (repo *ArticleRepo) SetFeaturedImage(ctx context.Context, id primitive.ObjectID, image *entity.Image) error {
	update := bson.M{"$set": bson.M{"featuredImage": image, "updatedAt": time.Now()}}
	if image == nil {
		update = bson.M{
			"$unset": bson.M{"featuredImage": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}
	res, err := repo.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("SetFeaturedImage: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
