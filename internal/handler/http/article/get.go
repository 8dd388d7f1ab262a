package article

import (
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// GetHandler returns one article and counts the view. Drafts are only
// visible to their author; everyone else gets a 404.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	requester := auth.UserID(r.Context())
	art, err := h.Svc.Get(r.Context(), id, requester)
	if err != nil {
		writeError(w, err)
		return
	}

	profiles, err := h.Svc.Profiles(r.Context(), profileIDs([]*entity.Article{art}, true))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, detailResponse{
		Success: true,
		Article: toDTO(art, profiles, requester, true),
	})
}
