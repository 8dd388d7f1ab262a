package auth

import (
	"log/slog"
	"net/http"

	authservice "inkpress/internal/service/auth"
)

// Register wires the auth routes. The credential endpoints share one
// per-IP limiter; /auth/me requires a bearer token.
func Register(mux *http.ServeMux, svc *authservice.Service, limiter *LoginLimiter, logger *slog.Logger) {
	mux.Handle("POST /auth/register", limiter.Limit(RegisterHandler{Svc: svc}))
	mux.Handle("POST /auth/login", limiter.Limit(LoginHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET /auth/me", Require(svc.Secret, MeHandler{Svc: svc}))
	mux.Handle("PUT /auth/avatar", Require(svc.Secret, AvatarHandler{Svc: svc}))
}
