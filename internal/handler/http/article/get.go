package article

import (
	"net/http"

	"herald/internal/handler/http/pathutil"
	"herald/internal/handler/http/respond"
	artUC "herald/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事取得
// @Summary      記事取得
// @Description  ID で記事を1件取得します。形式不正の ID は 400、存在しない ID は 404
// @Tags         articles
// @Produce      json
// @Param        id path string true "記事 ID"
// @Success      200 {object} ItemResponse
// @Failure      400 {object} respond.Envelope "Missing or malformed ID"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		writeError(w, r, "Failed to fetch article", err)
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Failed to fetch article", err)
		return
	}
	respond.OK(w, http.StatusOK, NewDTO(a))
}

type GetBySlugHandler struct{ Svc *artUC.Service }

// ServeHTTP スラッグで記事取得
// @Summary      スラッグで記事取得
// @Tags         articles
// @Produce      json
// @Param        slug path string true "スラッグ"
// @Success      200 {object} ItemResponse
// @Failure      400 {object} respond.Envelope "Missing slug"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/slug/{slug} [get]
func (h GetBySlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.Value(r, "slug")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Slug is required")
		return
	}

	a, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, r, "Failed to fetch article", err)
		return
	}
	respond.OK(w, http.StatusOK, NewDTO(a))
}
