// Package auth implements account registration and login: bcrypt
// password hashing, credential verification, and JWT issuance.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"inkpress/internal/domain/entity"
	"inkpress/internal/observability/metrics"
	"inkpress/internal/repository"
)

// MinPasswordLength is the registration password floor.
const MinPasswordLength = 6

// DefaultTokenTTL is the token lifetime when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned on login with an unknown email or a
// wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ImageStore stores uploaded avatar images.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, folder string) (*entity.Image, error)
	Delete(ctx context.Context, id string) error
}

// Service handles registration, login, token issuance, and account
// profile updates.
type Service struct {
	Users    repository.UserRepository
	Images   ImageStore
	Logger   *slog.Logger
	Secret   []byte
	TokenTTL time.Duration
}

// RegisterInput are the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (in *RegisterInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if !emailPattern.MatchString(in.Email) {
		return &entity.ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if len(in.Password) < MinPasswordLength {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		}
	}
	return nil
}

// Register creates an account and returns it with a fresh token.
// A duplicate email surfaces as a field validation error, relying on the
// unique index rather than a racy pre-check.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	if err := in.validate(); err != nil {
		metrics.RecordAuthRequest("register", false)
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Followers:    []primitive.ObjectID{},
		Following:    []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		metrics.RecordAuthRequest("register", false)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", &entity.ValidationError{Field: "email", Message: "is already registered"}
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	metrics.RecordAuthRequest("register", true)
	return user, token, nil
}

// Login verifies the credentials and returns the account with a fresh
// token. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		metrics.RecordAuthRequest("login", false)
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.RecordAuthRequest("login", false)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	metrics.RecordAuthRequest("login", true)
	return user, token, nil
}

// Me loads the account behind a verified token subject.
func (s *Service) Me(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	user, err := s.Users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrNotFound
	}
	return user, nil
}

// SetAvatar stores a new avatar image for the user and replaces the
// previous one. The prior image is deleted best-effort before the new
// upload; a failed cleanup is logged but does not fail the request.
func (s *Service) SetAvatar(ctx context.Context, userID primitive.ObjectID, data []byte) (*entity.Image, error) {
	user, err := s.Users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrNotFound
	}

	if user.Avatar != nil {
		if err := s.Images.Delete(ctx, user.Avatar.ID); err != nil {
			s.Logger.Warn("failed to delete previous avatar",
				slog.String("user_id", userID.Hex()),
				slog.String("image_id", user.Avatar.ID),
				slog.String("error", err.Error()))
		}
	}

	img, err := s.Images.Upload(ctx, data, "avatars")
	if err != nil {
		return nil, err
	}
	if err := s.Users.SetAvatar(ctx, userID, img); err != nil {
		return nil, fmt.Errorf("set avatar: %w", err)
	}
	return img, nil
}

// IssueToken signs an HS256 token whose subject is the user id.
func (s *Service) IssueToken(userID primitive.ObjectID) (string, error) {
	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.Hex(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies an HS256 token and returns the user id from its
// subject claim. Expiry is enforced by the parser.
func ParseToken(secret []byte, tokenString string) (primitive.ObjectID, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return primitive.NilObjectID, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return primitive.NilObjectID, errors.New("invalid sub claim")
	}
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return primitive.NilObjectID, errors.New("invalid sub claim")
	}
	return id, nil
}
