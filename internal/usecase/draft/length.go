package draft

import (
	"strings"

	"herald/internal/domain/entity"
)

// SummaryLength selects how long a generated summary should be.
type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

// ParseSummaryLength accepts short, medium or long. Empty means medium.
func ParseSummaryLength(raw string) (SummaryLength, error) {
	switch l := SummaryLength(strings.ToLower(strings.TrimSpace(raw))); l {
	case "":
		return SummaryMedium, nil
	case SummaryShort, SummaryMedium, SummaryLong:
		return l, nil
	}
	return "", &entity.ValidationError{Field: "length", Message: "must be one of short, medium, long"}
}

func (l SummaryLength) guide() string {
	switch l {
	case SummaryShort:
		return "1-2 sentences"
	case SummaryLong:
		return "1 paragraph"
	default:
		return "3-4 sentences"
	}
}

func (l SummaryLength) maxTokens() int {
	switch l {
	case SummaryShort:
		return 100
	case SummaryLong:
		return 300
	default:
		return 200
	}
}
