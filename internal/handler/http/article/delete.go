package article

import (
	"net/http"

	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// DeleteHandler removes an article and releases its stored image.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, auth.UserID(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "article deleted",
	})
}
