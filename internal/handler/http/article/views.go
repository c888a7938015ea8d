package article

import (
	"net/http"

	"herald/internal/handler/http/pathutil"
	"herald/internal/handler/http/respond"
	artUC "herald/internal/usecase/article"
)

type ViewsHandler struct{ Svc *artUC.Service }

// ServeHTTP 閲覧数加算
// @Summary      閲覧数加算
// @Tags         articles
// @Produce      json
// @Param        id path string true "記事 ID"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.Envelope "Missing or malformed ID"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/{id}/views [post]
func (h ViewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		writeError(w, r, "Failed to record view", err)
		return
	}
	if err := h.Svc.IncrementViews(r.Context(), id); err != nil {
		writeError(w, r, "Failed to record view", err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "View recorded")
}

type RegenerateSlugHandler struct{ Svc *artUC.Service }

// ServeHTTP スラッグ再生成
// @Summary      スラッグ再生成
// @Description  現在のタイトルからスラッグを作り直します
// @Tags         articles
// @Produce      json
// @Param        id path string true "記事 ID"
// @Success      200 {object} ItemResponse
// @Failure      400 {object} respond.Envelope "Missing or malformed ID, or unusable title"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Failure      409 {object} respond.Envelope "Slug already in use"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/{id}/slug [post]
func (h RegenerateSlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		writeError(w, r, "Failed to regenerate slug", err)
		return
	}
	a, err := h.Svc.RegenerateSlug(r.Context(), id)
	if err != nil {
		writeError(w, r, "Failed to regenerate slug", err)
		return
	}
	respond.Message(w, http.StatusOK, NewDTO(a), "Slug regenerated")
}
