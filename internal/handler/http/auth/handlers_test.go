package auth_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
	httpauth "inkpress/internal/handler/http/auth"
	"inkpress/internal/repository"
	authservice "inkpress/internal/service/auth"
)

type stubUsers struct {
	byEmail map[string]*entity.User
}

func (s *stubUsers) Create(_ context.Context, u *entity.User) error {
	if _, exists := s.byEmail[u.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	u.ID = primitive.NewObjectID()
	s.byEmail[u.Email] = u
	return nil
}

func (s *stubUsers) Get(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.byEmail[email], nil
}

func (s *stubUsers) GetProfiles(_ context.Context, _ []primitive.ObjectID) (map[primitive.ObjectID]entity.Profile, error) {
	return nil, nil
}

func (s *stubUsers) SetAvatar(_ context.Context, _ primitive.ObjectID, _ *entity.Image) error {
	return nil
}

func newService() *authservice.Service {
	return &authservice.Service{
		Users:  &stubUsers{byEmail: map[string]*entity.User{}},
		Secret: []byte("0123456789abcdef0123456789abcdef"),
	}
}

func TestRegisterEndpoint(t *testing.T) {
	h := httpauth.RegisterHandler{Svc: newService()}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/auth/register",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"secret1"}`))
	h.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Token == "" || body.User.Email != "ada@example.com" {
		t.Errorf("body = %+v, want success with token and user", body)
	}
	if strings.Contains(w.Body.String(), "secret1") || strings.Contains(w.Body.String(), "passwordHash") {
		t.Error("response leaked password material")
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	h := httpauth.RegisterHandler{Svc: newService()}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/auth/register",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"123"}`))
	h.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || len(body.Errors) == 0 {
		t.Errorf("body = %+v, want failure with field errors", body)
	}
}

func TestLoginEndpoint(t *testing.T) {
	svc := newService()
	if _, _, err := svc.Register(context.Background(), authservice.RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret1",
	}); err != nil {
		t.Fatal(err)
	}
	h := httpauth.LoginHandler{Svc: svc, Logger: slog.New(slog.DiscardHandler)}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"secret1"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", w.Code)
	}
}

func TestMeEndpoint(t *testing.T) {
	svc := newService()
	user, token, err := svc.Register(context.Background(), authservice.RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatal(err)
	}

	h := httpauth.Require(svc.Secret, httpauth.MeHandler{Svc: svc})

	r := httptest.NewRequest("GET", "/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), user.ID.Hex()) {
		t.Error("response missing the account id")
	}
}

func TestRequireRejectsMissingToken(t *testing.T) {
	h := httpauth.Require([]byte("secret"), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler reached without a token")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/auth/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestOptionalAllowsAnonymous(t *testing.T) {
	var got primitive.ObjectID
	h := httpauth.Optional([]byte("secret"), http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = httpauth.UserID(r.Context())
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/articles", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !got.IsZero() {
		t.Errorf("user id = %v, want zero for anonymous", got)
	}
}

func TestOptionalRejectsMalformedToken(t *testing.T) {
	h := httpauth.Optional([]byte("secret"), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler reached with a malformed token")
	}))
	r := httptest.NewRequest("GET", "/articles", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLoginLimiter(t *testing.T) {
	limiter := httpauth.NewLoginLimiter(5, 2)
	h := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest("POST", "/auth/login", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first requests = %v, want burst allowed", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", codes[2])
	}

	// A different IP has its own budget.
	r := httptest.NewRequest("POST", "/auth/login", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("fresh ip status = %d, want 200", w.Code)
	}
}
