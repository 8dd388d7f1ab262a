package article

import (
	"net/http"

	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// BookmarkHandler toggles the requester's bookmark.
type BookmarkHandler struct{ Svc *artUC.Service }

func (h BookmarkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	bookmarked, count, err := h.Svc.ToggleBookmark(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"bookmarked": bookmarked,
		"bookmarks":  count,
	})
}
