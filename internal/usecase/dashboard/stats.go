package dashboard

import "herald/internal/domain/entity"

// CategoryCounts is the per-category breakdown.
type CategoryCounts struct {
	Total     int
	Published int
	Draft     int
}

// Stats aggregates an article list.
type Stats struct {
	Total      int
	Featured   int
	Breaking   int
	Published  int
	Draft      int
	TotalViews int64
	// ByCategory has an entry for every category, including empty ones.
	ByCategory map[entity.Category]CategoryCounts
}

// ComputeStats recomputes every count from scratch.
func ComputeStats(articles []*entity.Article) Stats {
	s := Stats{ByCategory: make(map[entity.Category]CategoryCounts, len(entity.Categories()))}
	for _, c := range entity.Categories() {
		s.ByCategory[c] = CategoryCounts{}
	}

	for _, a := range articles {
		s.Total++
		if a.Featured {
			s.Featured++
		}
		if a.Breaking {
			s.Breaking++
		}
		if a.Published {
			s.Published++
		} else {
			s.Draft++
		}
		s.TotalViews += a.Views

		cc, ok := s.ByCategory[a.Category]
		if !ok {
			continue
		}
		cc.Total++
		if a.Published {
			cc.Published++
		} else {
			cc.Draft++
		}
		s.ByCategory[a.Category] = cc
	}
	return s
}
