package port

import "context"

// TextExtractor extracts plain text from a document's raw bytes.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}
