package article

import (
	"net/http"

	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// LikeHandler toggles the requester's like. Calling it twice restores
// the original state.
type LikeHandler struct{ Svc *artUC.Service }

func (h LikeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	liked, count, err := h.Svc.ToggleLike(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"liked":   liked,
		"likes":   count,
	})
}
