package auth

import (
	"errors"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/respond"
	authservice "inkpress/internal/service/auth"
)

// MeHandler returns the account behind the bearer token.
type MeHandler struct{ Svc *authservice.Service }

func (h MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Me(r.Context(), UserID(r.Context()))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, meResponse{Success: true, User: toUserDTO(user)})
}
