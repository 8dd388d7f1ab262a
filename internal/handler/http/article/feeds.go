package article

import (
	"net/http"
	"strconv"

	"inkpress/internal/common/pagination"
	"inkpress/internal/domain/entity"
	"inkpress/internal/handler/http/auth"
	"inkpress/internal/handler/http/pathutil"
	"inkpress/internal/handler/http/respond"
	"inkpress/internal/repository"
	artUC "inkpress/internal/usecase/article"
)

// MineHandler lists the requester's own articles, drafts included.
type MineHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

func (h MineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	requester := auth.UserID(r.Context())
	writePage(w, r.Context(), h.Svc, repository.ArticleFilter{
		Requester: requester,
		OwnerOnly: true,
	}, params)
}

// BookmarkedHandler lists the articles the requester has bookmarked.
type BookmarkedHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

func (h BookmarkedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	requester := auth.UserID(r.Context())
	writePage(w, r.Context(), h.Svc, repository.ArticleFilter{
		Requester:    requester,
		BookmarkedBy: requester,
	}, params)
}

// ByAuthorHandler lists a user's published articles (plus their drafts
// when the author asks for their own feed).
type ByAuthorHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

func (h ByAuthorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathutil.ObjectID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	writePage(w, r.Context(), h.Svc, repository.ArticleFilter{
		Author:    authorID,
		Requester: auth.UserID(r.Context()),
	}, params)
}

// TrendingHandler serves the ranked feed of recently published articles.
//
// Query parameter: days (positive integer lookback, default 7).
type TrendingHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

func (h TrendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 {
			respond.SafeError(w, http.StatusBadRequest,
				&entity.ValidationError{Field: "days", Message: "must be a positive integer"})
			return
		}
		days = parsed
	}

	articles, err := h.Svc.Trending(r.Context(), days, h.PaginationCfg.DefaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	requester := auth.UserID(r.Context())
	md := pagination.NewMetadata(
		pagination.Params{Page: 1, Limit: h.PaginationCfg.DefaultLimit},
		int64(len(articles)),
	)
	writeArticles(w, r.Context(), h.Svc, articles, requester, md)
}

// StatsHandler reports the requester's aggregate engagement numbers.
type StatsHandler struct{ Svc *artUC.Service }

func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats": map[string]any{
			"totalArticles":  stats.TotalArticles,
			"publishedCount": stats.PublishedCount,
			"draftCount":     stats.TotalArticles - stats.PublishedCount,
			"totalViews":     stats.TotalViews,
			"totalLikes":     stats.TotalLikes,
			"totalComments":  stats.TotalComments,
			"totalBookmarks": stats.TotalBookmarks,
		},
	})
}
