package article

import (
	"net/http"

	artUC "herald/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Literal segments (featured, breaking, slug, batch-delete) take precedence
// over the {id} wildcard under Go 1.22 pattern matching.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("GET /articles", ListHandler{svc})
	mux.Handle("POST /articles", CreateHandler{svc})
	mux.Handle("GET /articles/featured", FeaturedHandler{svc})
	mux.Handle("GET /articles/breaking", BreakingHandler{svc})
	mux.Handle("GET /articles/slug/{slug}", GetBySlugHandler{svc})
	mux.Handle("POST /articles/batch-delete", BatchDeleteHandler{svc})

	mux.Handle("GET /articles/{id}", GetHandler{svc})
	mux.Handle("PUT /articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc})
	mux.Handle("POST /articles/{id}/views", ViewsHandler{svc})
	mux.Handle("POST /articles/{id}/slug", RegenerateSlugHandler{svc})
}
