package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkpress/internal/handler/http/respond"
	"inkpress/internal/observability/logging"
	authservice "inkpress/internal/service/auth"
)

// LoginHandler verifies credentials and issues a token.
type LoginHandler struct {
	Svc    *authservice.Service
	Logger *slog.Logger
}

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	user, token, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			// Do not disclose whether the email exists.
			logger.Warn("login rejected", slog.String("reason", "invalid_credentials"))
			respond.SafeError(w, http.StatusUnauthorized, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("login successful", slog.String("user_id", user.ID.Hex()))
	respond.JSON(w, http.StatusOK, sessionResponse{
		Success: true,
		Token:   token,
		User:    toUserDTO(user),
	})
}
