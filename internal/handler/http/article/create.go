package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// CreateHandler creates an article for the authenticated user.
type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string   `json:"title"`
		Content   string   `json:"content"`
		Excerpt   string   `json:"excerpt"`
		Tags      []string `json:"tags"`
		Category  string   `json:"category"`
		Published bool     `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	requester := auth.UserID(r.Context())
	art, err := h.Svc.Create(r.Context(), requester, artUC.CreateInput{
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
	respond.JSON(w, http.StatusCreated, detailResponse{
		Success: true,
		Article: toDTO(art, profiles, requester, true),
	})
}
