package auth

import (
	"errors"
	"io"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/infra/imagestore"
	authservice "inkpress/internal/service/auth"
)

// AvatarHandler accepts a multipart avatar upload for the current user.
// The form field is "image"; validation and backend selection are the
// same as for article images.
type AvatarHandler struct{ Svc *authservice.Service }

func (h AvatarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	img, err := h.Svc.SetAvatar(r.Context(), UserID(r.Context()), data)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, entity.ErrNotFound):
			code = http.StatusNotFound
		case errors.Is(err, imagestore.ErrEmptyPayload),
			errors.Is(err, imagestore.ErrTooLarge),
			errors.Is(err, imagestore.ErrUnsupportedType):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   img,
	})
}
