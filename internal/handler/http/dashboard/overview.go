// Package dashboard serves the admin overview: the filtered article list
// together with statistics over the whole collection.
package dashboard

import (
	"net/http"
	"strings"

	"herald/internal/domain/entity"
	"herald/internal/handler/http/article"
	"herald/internal/handler/http/respond"
	dashUC "herald/internal/usecase/dashboard"
)

// CategoryCountsDTO is the per-category breakdown.
type CategoryCountsDTO struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
}

// StatsDTO is the wire form of dashboard.Stats.
type StatsDTO struct {
	Total      int                          `json:"total"`
	Featured   int                          `json:"featured"`
	Breaking   int                          `json:"breaking"`
	Published  int                          `json:"published"`
	Draft      int                          `json:"draft"`
	TotalViews int64                        `json:"totalViews"`
	ByCategory map[string]CategoryCountsDTO `json:"byCategory"`
}

// OverviewDTO is the data payload of GET /admin/overview.
type OverviewDTO struct {
	Articles []article.DTO `json:"articles"`
	Stats    StatsDTO      `json:"stats"`
}

func newStatsDTO(s dashUC.Stats) StatsDTO {
	by := make(map[string]CategoryCountsDTO, len(s.ByCategory))
	for c, cc := range s.ByCategory {
		by[string(c)] = CategoryCountsDTO(cc)
	}
	return StatsDTO{
		Total:      s.Total,
		Featured:   s.Featured,
		Breaking:   s.Breaking,
		Published:  s.Published,
		Draft:      s.Draft,
		TotalViews: s.TotalViews,
		ByCategory: by,
	}
}

type OverviewHandler struct{ Svc *dashUC.Service }

// ServeHTTP 管理画面の概要
// @Summary      管理画面の概要
// @Description  q はタイトル・著者名・抜粋の部分一致 (大文字小文字を区別しない)、category は all または各カテゴリ。stats は常に全件の集計です
// @Tags         admin
// @Produce      json
// @Param        q        query string false "検索語"
// @Param        category query string false "カテゴリ (既定 all)"
// @Success      200 {object} respond.Envelope{data=OverviewDTO}
// @Failure      400 {object} respond.Envelope "Unknown category"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /admin/overview [get]
func (h OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c := dashUC.Criteria{SearchTerm: q.Get("q"), Category: q.Get("category")}
	if category := strings.TrimSpace(c.Category); category != "" && !strings.EqualFold(category, dashUC.AllCategories) {
		if _, err := entity.ParseCategory(category); err != nil {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ov, err := h.Svc.Overview(r.Context(), c)
	if err != nil {
		respond.Internal(w, r, "Failed to build overview", err)
		return
	}
	respond.List(w, OverviewDTO{
		Articles: article.NewDTOs(ov.Articles),
		Stats:    newStatsDTO(ov.Stats),
	}, len(ov.Articles))
}

// Register registers the admin routes.
func Register(mux *http.ServeMux, svc *dashUC.Service) {
	mux.Handle("GET /admin/overview", OverviewHandler{svc})
}
