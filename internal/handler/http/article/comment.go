package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// CommentCreateHandler appends a comment to an article.
type CommentCreateHandler struct{ Svc *artUC.Service }

func (h CommentCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	requester := auth.UserID(r.Context())
	comment, profile, err := h.Svc.AddComment(r.Context(), id, requester, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	out := toCommentDTO(*comment, map[primitive.ObjectID]entity.Profile{requester: *profile})
	respond.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"comment": out,
	})
}

// CommentUpdateHandler edits a comment. Only the comment's author may.
type CommentUpdateHandler struct{ Svc *artUC.Service }

func (h CommentUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	commentID, err := pathutil.ObjectID(r, "cid")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.UpdateComment(r.Context(), id, commentID, auth.UserID(r.Context()), req.Content); err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "comment updated",
	})
}

// CommentDeleteHandler removes a comment. The comment's author may
// delete it, and the article's author may moderate it away.
type CommentDeleteHandler struct{ Svc *artUC.Service }

func (h CommentDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	commentID, err := pathutil.ObjectID(r, "cid")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Svc.DeleteComment(r.Context(), id, commentID, auth.UserID(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "comment deleted",
	})
}
