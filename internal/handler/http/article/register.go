package article

import (
	"net/http"

	"inkpress/internal/common/pagination"
	"inkpress/internal/handler/http/auth"
	artUC "inkpress/internal/usecase/article"
)

// Register wires the article routes. Literal segments (trending, user,
// bulk, stats) take precedence over the {id} wildcard under the 1.22
// ServeMux matching rules, so the fixed feeds never collide with
// article ids.
func Register(mux *http.ServeMux, svc *artUC.Service, secret []byte, cfg pagination.Config) {
	// Public reads; a bearer token widens visibility to own drafts.
	mux.Handle("GET /articles", auth.Optional(secret, ListHandler{Svc: svc, PaginationCfg: cfg}))
	mux.Handle("GET /articles/trending", auth.Optional(secret, TrendingHandler{Svc: svc, PaginationCfg: cfg}))
	mux.Handle("GET /articles/user/{userId}", auth.Optional(secret, ByAuthorHandler{Svc: svc, PaginationCfg: cfg}))
	mux.Handle("GET /articles/{id}", auth.Optional(secret, GetHandler{Svc: svc}))

	// Authenticated feeds.
	mux.Handle("GET /articles/user/my-articles", auth.Require(secret, MineHandler{Svc: svc, PaginationCfg: cfg}))
	mux.Handle("GET /articles/user/bookmarks", auth.Require(secret, BookmarkedHandler{Svc: svc, PaginationCfg: cfg}))
	mux.Handle("GET /articles/stats/overview", auth.Require(secret, StatsHandler{Svc: svc}))

	// Mutations.
	mux.Handle("POST /articles", auth.Require(secret, CreateHandler{Svc: svc}))
	mux.Handle("PUT /articles/{id}", auth.Require(secret, UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /articles/{id}", auth.Require(secret, DeleteHandler{Svc: svc}))
	mux.Handle("POST /articles/{id}/image", auth.Require(secret, ImageHandler{Svc: svc}))

	// Engagement.
	mux.Handle("POST /articles/{id}/like", auth.Require(secret, LikeHandler{Svc: svc}))
	mux.Handle("POST /articles/{id}/bookmark", auth.Require(secret, BookmarkHandler{Svc: svc}))
	mux.Handle("POST /articles/{id}/comments", auth.Require(secret, CommentCreateHandler{Svc: svc}))
	mux.Handle("PUT /articles/{id}/comments/{cid}", auth.Require(secret, CommentUpdateHandler{Svc: svc}))
	mux.Handle("DELETE /articles/{id}/comments/{cid}", auth.Require(secret, CommentDeleteHandler{Svc: svc}))

	// Bulk operations.
	mux.Handle("DELETE /articles/bulk/delete", auth.Require(secret, BulkDeleteHandler{Svc: svc}))
	mux.Handle("PUT /articles/bulk/update", auth.Require(secret, BulkUpdateHandler{Svc: svc}))
}
