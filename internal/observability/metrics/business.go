package metrics

import "time"

// Article write operations.
const (
	OpCreate         = "create"
	OpUpdate         = "update"
	OpDelete         = "delete"
	OpRegenerateSlug = "regenerate_slug"
)

// RecordArticleMutation counts one successful article write.
func RecordArticleMutation(operation string) {
	ArticleMutationsTotal.WithLabelValues(operation).Inc()
}

// RecordArticleView counts one view increment.
func RecordArticleView() {
	ArticleViewsTotal.Inc()
}

// RecordBatchDelete adds the outcome counts of one batch delete.
func RecordBatchDelete(deleted, notFound, failed int) {
	BatchDeleteOutcomes.WithLabelValues("deleted").Add(float64(deleted))
	BatchDeleteOutcomes.WithLabelValues("not_found").Add(float64(notFound))
	BatchDeleteOutcomes.WithLabelValues("failed").Add(float64(failed))
}

// UpdateArticlesTotal records the article count seen by an overview.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// RecordBreakingNewsAdded counts added items. Origin is "manual" or "feed".
func RecordBreakingNewsAdded(origin string, count int) {
	BreakingNewsAddedTotal.WithLabelValues(origin).Add(float64(count))
}

// RecordFeedImport records how long one wire import took.
func RecordFeedImport(duration time.Duration) {
	FeedImportDuration.Observe(duration.Seconds())
}

// RecordGeneration records one text generation call. A nil err counts as success
// and observes the output length.
func RecordGeneration(task string, duration time.Duration, length int, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	GenerationRequestsTotal.WithLabelValues(task, status).Inc()
	GenerationDuration.WithLabelValues(task).Observe(duration.Seconds())
	if err == nil {
		GenerationLength.WithLabelValues(task).Observe(float64(length))
	}
}

// RecordContentFetch records one source extraction attempt.
func RecordContentFetch(duration time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	ContentFetchAttemptsTotal.WithLabelValues(result).Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordStoreOperation records the duration of a repository call.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreOperationDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}
