// Package breaking provides HTTP handlers for the breaking-news ticker.
package breaking

import (
	"encoding/json"
	"errors"
	"net/http"

	"herald/internal/domain/entity"
	"herald/internal/handler/http/pathutil"
	"herald/internal/handler/http/respond"
	bnUC "herald/internal/usecase/breakingnews"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

// DTO is a ticker item on the wire.
type DTO struct {
	ID        string `json:"_id" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
	Text      string `json:"text" example:"Polls close in 10 minutes"`
	Priority  int    `json:"priority" example:"1"`
	Active    bool   `json:"active" example:"true"`
	CreatedAt string `json:"createdAt" example:"2025-10-26T12:00:00.000Z"`
}

func newDTO(it *entity.BreakingNewsItem) DTO {
	return DTO{
		ID:        it.ID,
		Text:      it.Text,
		Priority:  it.Priority,
		Active:    it.Active,
		CreatedAt: it.CreatedAt.UTC().Format(timeLayout),
	}
}

func newDTOs(items []*entity.BreakingNewsItem) []DTO {
	out := make([]DTO, 0, len(items))
	for _, it := range items {
		out = append(out, newDTO(it))
	}
	return out
}

type ListHandler struct{ Svc *bnUC.Service }

// ServeHTTP 速報ティッカー取得
// @Summary      速報ティッカー取得
// @Description  有効な速報を優先度の高い順に返します
// @Tags         breaking-news
// @Produce      json
// @Success      200 {object} respond.Envelope{data=[]DTO}
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /breaking-news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListActive(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch breaking news", err)
		return
	}
	respond.List(w, newDTOs(items), len(items))
}

// CreateRequest is the body of POST /breaking-news.
type CreateRequest struct {
	Text     string `json:"text" example:"Polls close in 10 minutes"`
	Priority int    `json:"priority" example:"2"`
}

type CreateHandler struct{ Svc *bnUC.Service }

// ServeHTTP 速報追加
// @Summary      速報追加
// @Description  priority を省略すると 1 になります。本文は 280 文字まで
// @Tags         breaking-news
// @Accept       json
// @Produce      json
// @Param        item body CreateRequest true "速報"
// @Success      201 {object} respond.Envelope{data=DTO}
// @Failure      400 {object} respond.Envelope "Invalid input"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /breaking-news [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := h.Svc.Add(r.Context(), req.Text, req.Priority)
	if err != nil {
		writeError(w, r, "Failed to add breaking news", err)
		return
	}
	respond.OK(w, http.StatusCreated, newDTO(item))
}

type DeactivateHandler struct{ Svc *bnUC.Service }

// ServeHTTP 速報取り下げ
// @Summary      速報取り下げ
// @Description  速報をティッカーから外します (レコードは残ります)
// @Tags         breaking-news
// @Produce      json
// @Param        id path string true "速報 ID"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.Envelope "Missing or malformed ID"
// @Failure      404 {object} respond.Envelope "Item not found"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /breaking-news/{id} [delete]
func (h DeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Item ID is required")
		return
	}
	if err := h.Svc.Deactivate(r.Context(), id); err != nil {
		writeError(w, r, "Failed to deactivate breaking news", err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Breaking news deactivated")
}

// ImportRequest is the body of POST /breaking-news/import.
type ImportRequest struct {
	URL      string `json:"url" example:"https://wire.example.com/latest.rss"`
	Priority int    `json:"priority" example:"1"`
	Max      int    `json:"max" example:"10"`
}

// ImportFailureDTO is a headline that could not be stored.
type ImportFailureDTO struct {
	Text    string `json:"text" example:"Fed holds rates"`
	Message string `json:"message" example:"failed to store item"`
}

// ImportDTO reports an import.
type ImportDTO struct {
	Added   []DTO              `json:"added"`
	Skipped int                `json:"skipped"`
	Failed  []ImportFailureDTO `json:"failed"`
}

func newImportDTO(res *bnUC.ImportResult) ImportDTO {
	failed := make([]ImportFailureDTO, 0, len(res.Failed))
	for _, f := range res.Failed {
		failed = append(failed, ImportFailureDTO{Text: f.Text, Message: f.Message})
	}
	return ImportDTO{Added: newDTOs(res.Added), Skipped: res.Skipped, Failed: failed}
}

type ImportHandler struct{ Svc *bnUC.Service }

// ServeHTTP 配信フィード取り込み
// @Summary      配信フィード取り込み
// @Description  RSS/Atom フィードの見出しを速報として追加します。既に有効な同文の速報はスキップし、保存に失敗した見出しは failed に返します
// @Tags         breaking-news
// @Accept       json
// @Produce      json
// @Param        body body ImportRequest true "フィード URL"
// @Success      200 {object} respond.Envelope{data=ImportDTO}
// @Failure      400 {object} respond.Envelope "Invalid URL"
// @Failure      502 {object} respond.Envelope "Feed unavailable"
// @Router       /breaking-news/import [post]
func (h ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	res, err := h.Svc.ImportFeed(r.Context(), req.URL, req.Priority, req.Max)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			writeError(w, r, "", err)
			return
		}
		respond.JSON(w, http.StatusBadGateway, respond.Envelope{
			Success: false,
			Error:   "Failed to import feed",
			Message: respond.SanitizeError(err),
		})
		return
	}
	respond.OK(w, http.StatusOK, newImportDTO(res))
}

func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var invalid *entity.ValidationError
	switch {
	case errors.As(err, &invalid):
		respond.Fail(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, bnUC.ErrItemIDRequired):
		respond.Fail(w, http.StatusBadRequest, "Item ID is required")
	case errors.Is(err, bnUC.ErrInvalidItemID):
		respond.Fail(w, http.StatusBadRequest, "Invalid item ID")
	case errors.Is(err, bnUC.ErrItemNotFound):
		respond.Fail(w, http.StatusNotFound, "Breaking news item not found")
	default:
		respond.Internal(w, r, msg, err)
	}
}

// Register registers the breaking-news routes.
func Register(mux *http.ServeMux, svc *bnUC.Service) {
	mux.Handle("GET /breaking-news", ListHandler{svc})
	mux.Handle("POST /breaking-news", CreateHandler{svc})
	mux.Handle("POST /breaking-news/import", ImportHandler{svc})
	mux.Handle("DELETE /breaking-news/{id}", DeactivateHandler{svc})
}
