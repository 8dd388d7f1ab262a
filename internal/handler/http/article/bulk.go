package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/respond"
	artUC "inkpress/internal/usecase/article"
)

// parseIDList converts request id strings, rejecting the whole batch on
// the first malformed entry.
func parseIDList(raw []string) ([]primitive.ObjectID, error) {
	if len(raw) == 0 {
		return nil, &entity.ValidationError{Field: "ids", Message: "is required"}
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, &entity.ValidationError{Field: "ids", Message: "contains an invalid article id"}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// BulkDeleteHandler deletes a batch of the requester's articles,
// all-or-nothing.
type BulkDeleteHandler struct{ Svc *artUC.Service }

func (h BulkDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	ids, err := parseIDList(req.IDs)
	if err != nil {
		writeError(w, err)
		return
	}

	deleted, err := h.Svc.BulkDelete(r.Context(), auth.UserID(r.Context()), ids)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"deletedCount": deleted,
	})
}

// BulkUpdateHandler applies a whitelisted field set to a batch of the
// requester's articles. Foreign ids are silently skipped; the response
// reports how many records actually changed.
type BulkUpdateHandler struct{ Svc *artUC.Service }

func (h BulkUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs     []string `json:"ids"`
		Updates struct {
			Published *bool   `json:"published"`
			Category  *string `json:"category"`
		} `json:"updates"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	ids, err := parseIDList(req.IDs)
	if err != nil {
		writeError(w, err)
		return
	}

	modified, err := h.Svc.BulkUpdate(r.Context(), auth.UserID(r.Context()), ids, artUC.BulkUpdateInput{
		Published: req.Updates.Published,
		Category:  req.Updates.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"modifiedCount": modified,
	})
}
