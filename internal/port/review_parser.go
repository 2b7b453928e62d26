package port

import (
	"context"
	"encoding/json"
)

// ReviewInput carries the extracted contract text to be reviewed.
type ReviewInput struct {
	Text       string
	SourceName string
}

// ReviewOutput contains the raw JSON object returned by an LLM provider.
// Raw is always a valid JSON object; providers substitute "{}" when the
// model reply cannot be parsed.
type ReviewOutput struct {
	Raw        json.RawMessage
	ModelUsed  string
	PromptUsed string
}

// ReviewParser abstracts LLM-based contract review.
type ReviewParser interface {
	Review(ctx context.Context, input ReviewInput) (*ReviewOutput, error)
}
