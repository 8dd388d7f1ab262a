package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// UpdateHandler modifies an article. Author only; absent request fields
// leave the stored values untouched.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Title     *string  `json:"title"`
		Content   *string  `json:"content"`
		Excerpt   *string  `json:"excerpt"`
		Tags      []string `json:"tags"`
		Category  *string  `json:"category"`
		Published *bool    `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	requester := auth.UserID(r.Context())
	art, err := h.Svc.Update(r.Context(), id, requester, artUC.UpdateInput{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Tags:      req.Tags,
		Category:  req.Category,
		Published: req.Published,
	})
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
