package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/respond"
	authservice "inkpress/internal/service/auth"
)

// RegisterHandler creates an account and issues a token.
type RegisterHandler struct{ Svc *authservice.Service }

func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	user, token, err := h.Svc.Register(r.Context(), authservice.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, sessionResponse{
		Success: true,
		Token:   token,
		User:    toUserDTO(user),
	})
}
