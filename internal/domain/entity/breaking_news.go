package entity

import "time"

// DefaultBreakingNewsPriority is used when an item is added without a priority.
const DefaultBreakingNewsPriority = 1

// BreakingNewsItem is a short, priority-ordered alert shown in the site ticker.
type BreakingNewsItem struct {
	ID        string
	Text      string
	Priority  int
	Active    bool
	CreatedAt time.Time
}
