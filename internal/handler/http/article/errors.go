package article

import (
	"errors"
	"net/http"

	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/infra/imagestore"
	artUC "inkpress/internal/usecase/article"
)

// writeError maps usecase errors onto the HTTP error taxonomy:
// validation 400, missing or invisible 404, not permitted 403,
// everything else a sanitized 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, pathutil.ErrInvalidID),
		errors.Is(err, imagestore.ErrEmptyPayload),
		errors.Is(err, imagestore.ErrTooLarge),
		errors.Is(err, imagestore.ErrUnsupportedType):
		code = http.StatusBadRequest
	case errors.Is(err, artUC.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, artUC.ErrCommentNotFound):
		code = http.StatusNotFound
	}
	respond.SafeError(w, code, err)
}
