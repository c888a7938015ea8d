package article

import (
	"net/http"

	"herald/internal/handler/http/pathutil"
	"herald/internal/handler/http/respond"
	artUC "herald/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Tags         articles
// @Produce      json
// @Param        id path string true "記事 ID"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.Envelope "Missing or malformed ID"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		writeError(w, r, "Failed to delete article", err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Failed to delete article", err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Article deleted successfully")
}

// BatchDeleteRequest is the body of POST /articles/batch-delete.
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BatchFailureDTO is one identifier that could not be deleted.
type BatchFailureDTO struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// BatchDeleteDTO reports every requested identifier in exactly one bucket.
type BatchDeleteDTO struct {
	Deleted  []string          `json:"deleted"`
	NotFound []string          `json:"notFound"`
	Failed   []BatchFailureDTO `json:"failed"`
}

type BatchDeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事一括削除
// @Summary      記事一括削除
// @Description  各 ID を個別に削除し、結果を deleted / notFound / failed に分けて返します。ロールバックはありません
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body body BatchDeleteRequest true "削除する ID (最大 100 件)"
// @Success      200 {object} respond.Envelope{data=BatchDeleteDTO}
// @Failure      400 {object} respond.Envelope "Empty or oversized batch"
// @Failure      500 {object} respond.Envelope "Store failure"
// @Router       /articles/batch-delete [post]
func (h BatchDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req BatchDeleteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.Svc.DeleteBatch(r.Context(), req.IDs)
	if err != nil {
		writeError(w, r, "Failed to delete articles", err)
		return
	}

	out := BatchDeleteDTO{
		Deleted:  res.Deleted,
		NotFound: res.NotFound,
		Failed:   make([]BatchFailureDTO, 0, len(res.Failed)),
	}
	for _, f := range res.Failed {
		out.Failed = append(out.Failed, BatchFailureDTO{ID: f.ID, Message: f.Message})
	}
	respond.OK(w, http.StatusOK, out)
}
