package textgen

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// NoOp echoes the user message back. Used in development without provider credentials.
type NoOp struct{}

// NewNoOp creates a NoOp completer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Complete returns the user message truncated to roughly four runes per token.
func (n *NoOp) Complete(_ context.Context, p Prompt) (string, error) {
	if p.User == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrGeneration)
	}
	limit := p.MaxTokens * 4
	if limit <= 0 || utf8.RuneCountInString(p.User) <= limit {
		return p.User, nil
	}
	return string([]rune(p.User)[:limit]) + "...", nil
}
