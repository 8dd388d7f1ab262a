package article

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/common/pagination"
	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/repository"
	artUC "inkpress/internal/usecase/article"
)

// ListHandler serves the general feed with filters and pagination.
//
// Query parameters: page, limit, tag, category, author, search.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filter := repository.ArticleFilter{
		Tag:       r.URL.Query().Get("tag"),
		Search:    r.URL.Query().Get("search"),
		Requester: auth.UserID(r.Context()),
	}

	category, ok := entity.ParseCategory(r.URL.Query().Get("category"))
	if !ok {
		respond.SafeError(w, http.StatusBadRequest,
			&entity.ValidationError{Field: "category", Message: "is not a known category"})
		return
	}
	filter.Category = category

	if author := r.URL.Query().Get("author"); author != "" {
		authorID, err := primitive.ObjectIDFromHex(author)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				&entity.ValidationError{Field: "author", Message: "must be a valid user id"})
			return
		}
		filter.Author = authorID
	}

	writePage(w, r.Context(), h.Svc, filter, params)
}

// writePage runs the list query and writes the pagination envelope with
// author profiles resolved. Shared by every list-shaped endpoint.
func writePage(w http.ResponseWriter, ctx context.Context, svc *artUC.Service, filter repository.ArticleFilter, params pagination.Params) {
	articles, total, err := svc.List(ctx, filter, params.Offset(), params.Limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeArticles(w, ctx, svc, articles, filter.Requester, pagination.NewMetadata(params, total))
}

// writeArticles resolves profiles and writes a list envelope.
func writeArticles(w http.ResponseWriter, ctx context.Context, svc *artUC.Service, articles []*entity.Article, requester primitive.ObjectID, md pagination.Metadata) {
	profiles, err := svc.Profiles(ctx, profileIDs(articles, false))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a, profiles, requester, false))
	}
	respond.JSON(w, http.StatusOK, listResponse{
		Success:    true,
		Articles:   out,
		Pagination: md,
	})
}
