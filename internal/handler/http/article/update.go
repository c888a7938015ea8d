package article

import (
	"net/http"

	"herald/internal/handler/http/pathutil"
	"herald/internal/handler/http/respond"
	artUC "herald/internal/usecase/article"
)

// UpdateRequest is the body of PUT /articles/{id}. Absent fields are left
// untouched; identity, timestamps and views cannot be changed here.
type UpdateRequest struct {
	Slug        *string      `json:"slug,omitempty"`
	Title       *string      `json:"title,omitempty"`
	Excerpt     *string      `json:"excerpt,omitempty"`
	Content     *string      `json:"content,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Image       *string      `json:"image,omitempty"`
	Author      *AuthorInput `json:"author,omitempty" swaggertype:"object"`
	PublishedAt *string      `json:"publishedAt,omitempty"`
	Featured    *bool        `json:"featured,omitempty"`
	Breaking    *bool        `json:"breaking,omitempty"`
	Published   *bool        `json:"published,omitempty"`
	Tags        *[]string    `json:"tags,omitempty"`
	Sources     *[]string    `json:"sources,omitempty"`
}

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  リクエストに含まれる項目だけを更新し、再取得した記事を返します
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path string true "記事 ID"
// @Param        article body UpdateRequest true "更新する項目"
// @Success      200 {object} ItemResponse
// @Failure      400 {object} respond.Envelope "No fields, invalid input or malformed ID"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Failure      409 {object} respond.Envelope "Slug already in use"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		writeError(w, r, "Failed to update article", err)
		return
	}

	var req UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := artUC.UpdateInput{
		ID:        id,
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
		in.Author = &req.Author.Author
	}
	if req.PublishedAt != nil {
		t, err := parseTime("publishedAt", *req.PublishedAt)
		if err != nil {
			writeError(w, r, "Failed to update article", err)
			return
		}
		in.PublishedAt = &t
	}

	a, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		writeError(w, r, "Failed to update article", err)
		return
	}
	respond.Message(w, http.StatusOK, NewDTO(a), "Article updated successfully")
}
