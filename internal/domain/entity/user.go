package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. The password is stored only as a bcrypt
// hash and must never appear in API responses.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Name         string               `bson:"name"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"passwordHash"`
	Avatar       *Image               `bson:"avatar,omitempty"`
	Bio          string               `bson:"bio,omitempty"`
	Followers    []primitive.ObjectID `bson:"followers"`
	Following    []primitive.ObjectID `bson:"following"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

// Profile is the public subset of a user embedded in article and
// comment responses.
type Profile struct {
	ID     primitive.ObjectID
	Name   string
	Avatar *Image
	Bio    string
}

// PublicProfile returns the user's public-facing fields.
func (u *User) PublicProfile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Bio: u.Bio}
}
