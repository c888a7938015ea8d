// Package dashboard derives the admin overview from the full article list.
//
// The overview fetches every article once and narrows and aggregates in memory.
// That keeps keystroke filtering off the store, but the cost grows linearly with
// the collection: it is sized for an editorial archive of a few thousand
// articles, not for an unbounded corpus. Past that point filtering has to move
// into store queries.
package dashboard

import (
	"strings"

	"herald/internal/domain/entity"
)

// AllCategories is the category criterion that disables category filtering.
const AllCategories = "all"

// Criteria narrows an article list. An empty Category behaves like AllCategories.
type Criteria struct {
	SearchTerm string
	Category   string
}

// Filter keeps articles whose title, author name or excerpt contains the search
// term (case-insensitive) and whose category equals the criterion. The input
// order is preserved and the input slice is not modified.
func Filter(articles []*entity.Article, c Criteria) []*entity.Article {
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))
	category := strings.ToLower(strings.TrimSpace(c.Category))
	if category == AllCategories {
		category = ""
	}

	out := make([]*entity.Article, 0, len(articles))
	for _, a := range articles {
		if term != "" && !matchesTerm(a, term) {
			continue
		}
		if category != "" && string(a.Category) != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesTerm(a *entity.Article, term string) bool {
	return strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Author.Name), term) ||
		strings.Contains(strings.ToLower(a.Excerpt), term)
}
