package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
)

// ErrDuplicateEmail is returned by Create when the email collides with
// an existing account.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// Get retrieves a user by id. Returns (nil, nil) when absent.
	Get(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetProfiles resolves the public profiles for a set of user ids.
	// Unknown ids are absent from the result map.
	GetProfiles(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]entity.Profile, error)
	// SetAvatar replaces the user's stored avatar reference.
	SetAvatar(ctx context.Context, id primitive.ObjectID, image *entity.Image) error
}
