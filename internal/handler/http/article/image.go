package article

import (
	"errors"
	"io"
	"net/http"

	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/infra/imagestore"
	artUC "inkpress/internal/usecase/article"
)

// ImageHandler accepts a multipart featured-image upload for an article.
// The form field is "image"; payloads are validated before any storage
// attempt and the prior image is replaced.
type ImageHandler struct{ Svc *artUC.Service }

func (h ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ObjectID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	// Parse with a little headroom over the payload ceiling; the exact
	// size check happens in the validation step.
	if err := r.ParseMultipartForm(imagestore.MaxUploadBytes + 1<<20); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid multipart form"))
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("image file is required"))
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, imagestore.MaxUploadBytes+1))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid image payload"))
		return
	}

	img, err := h.Svc.UploadImage(r.Context(), id, auth.UserID(r.Context()), data)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   img,
	})
}
