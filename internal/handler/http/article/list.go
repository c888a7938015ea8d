package article

import (
	"net/http"
	"strconv"
	"strings"

	"herald/internal/domain/entity"
	"herald/internal/handler/http/respond"
	artUC "herald/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  全記事を新しい順に返します。category を指定すると公開済みの該当カテゴリのみ返します
// @Tags         articles
// @Produce      json
// @Param        category query string false "カテゴリ (politics, business, technology, sports, entertainment, health, science, world)"
// @Success      200 {object} ListResponse
// @Failure      400 {object} respond.Envelope "Unknown category"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		list []*entity.Article
		err  error
	)
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		list, err = h.Svc.ListByCategory(r.Context(), category)
	} else {
		list, err = h.Svc.List(r.Context())
	}
	if err != nil {
		writeError(w, r, "Failed to fetch articles", err)
		return
	}
	respond.List(w, NewDTOs(list), len(list))
}

type FeaturedHandler struct{ Svc *artUC.Service }

// ServeHTTP 注目記事取得
// @Summary      注目記事取得
// @Description  公開済みの注目記事を返します (limit 既定 5、最大 50)
// @Tags         articles
// @Produce      json
// @Param        limit query int false "件数"
// @Success      200 {object} ListResponse
// @Failure      400 {object} respond.Envelope "Invalid limit"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/featured [get]
func (h FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.Fail(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	list, err := h.Svc.ListFeatured(r.Context(), limit)
	if err != nil {
		writeError(w, r, "Failed to fetch featured articles", err)
		return
	}
	respond.List(w, NewDTOs(list), len(list))
}

type BreakingHandler struct{ Svc *artUC.Service }

// ServeHTTP 速報記事取得
// @Summary      速報記事取得
// @Description  breaking フラグ付きの公開済み記事を返します
// @Tags         articles
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/breaking [get]
func (h BreakingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListBreaking(r.Context())
	if err != nil {
		writeError(w, r, "Failed to fetch breaking articles", err)
		return
	}
	respond.List(w, NewDTOs(list), len(list))
}

// ListResponse documents the list envelope.
type ListResponse struct {
	Success bool  `json:"success" example:"true"`
	Data    []DTO `json:"data"`
	Count   int   `json:"count" example:"1"`
}

// ItemResponse documents the single-article envelope.
type ItemResponse struct {
	Success bool   `json:"success" example:"true"`
	Data    DTO    `json:"data"`
	Message string `json:"message,omitempty"`
}
