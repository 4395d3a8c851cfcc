package llm

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Generator is the text-generation dependency used by the resolvers and the
// dish description endpoint. Implementations must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// StripCodeFences removes markdown ```json fences the model sometimes wraps
// its JSON output in. Text without fences passes through trimmed.
func StripCodeFences(response string) string {
	cleaned := fenceRe.ReplaceAllString(response, "$1")

	return strings.TrimSpace(cleaned)
}
