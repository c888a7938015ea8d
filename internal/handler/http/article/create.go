package article

import (
	"net/http"

	"herald/internal/handler/http/respond"
	artUC "herald/internal/usecase/article"
)

// CreateRequest is the body of POST /articles.
type CreateRequest struct {
	Slug        string       `json:"slug" example:"budget-vote-delayed"`
	Title       string       `json:"title" example:"Budget vote delayed"`
	Excerpt     string       `json:"excerpt" example:"Parliament postponed the vote."`
	Content     string       `json:"content" example:"<p>Parliament postponed...</p>"`
	Category    string       `json:"category" example:"politics"`
	Image       string       `json:"image" example:"https://cdn.example.com/budget.jpg"`
	Author      *AuthorInput `json:"author" swaggertype:"object"`
	PublishedAt string       `json:"publishedAt" example:"2025-10-26T10:00:00Z"`
	Featured    bool         `json:"featured"`
	Breaking    bool         `json:"breaking"`
	Published   *bool        `json:"published"`
	Tags        []string     `json:"tags"`
	Sources     []string     `json:"sources"`
}

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。必須項目が欠けている場合は missingFields に列挙します
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body CreateRequest true "記事情報 (author は文字列またはオブジェクト)"
// @Success      201 {object} ItemResponse
// @Failure      400 {object} respond.Envelope "Missing fields or invalid input"
// @Failure      409 {object} respond.Envelope "Slug already in use"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := artUC.CreateInput{
		Slug:      req.Slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Image:     req.Image,
		Featured:  req.Featured,
		Breaking:  req.Breaking,
		Published: req.Published,
		Tags:      req.Tags,
		Sources:   req.Sources,
	}
	if req.Author != nil {
		in.Author = req.Author.Author
	}
	if req.PublishedAt != "" {
		t, err := parseTime("publishedAt", req.PublishedAt)
		if err != nil {
			writeError(w, r, "Failed to create article", err)
			return
		}
		in.PublishedAt = &t
	}

	a, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "Failed to create article", err)
		return
	}
	respond.OK(w, http.StatusCreated, NewDTO(a))
}
