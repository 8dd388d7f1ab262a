package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkpress/internal/domain/entity"
	"inkpress/internal/repository"
)

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(database *mongo.Database) repository.UserRepository {
	return &UserRepo{col: database.Collection("users")}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := repo.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) Get(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := repo.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetProfiles(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]entity.Profile, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]entity.Profile{}, nil
	}

	cur, err := repo.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("GetProfiles: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	profiles := make(map[primitive.ObjectID]entity.Profile, len(ids))
	for cur.Next(ctx) {
		var user entity.User
		if err := cur.Decode(&user); err != nil {
			return nil, fmt.Errorf("GetProfiles: decode: %w", err)
		}
		profiles[user.ID] = user.PublicProfile()
	}
	return profiles, cur.Err()
}

func (repo *UserRepo) SetAvatar(ctx context.Context, id primitive.ObjectID, image *entity.Image) error {
	res, err := repo.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"avatar": image, "updatedAt": time.Now()}})
	if err != nil {
		return fmt.Errorf("SetAvatar: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
