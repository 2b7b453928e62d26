package extractor

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/ralphreevencarandang/contract-reader/internal/domain"
	"github.com/ralphreevencarandang/contract-reader/internal/port"
)

// Dispatcher routes a document to the right text extractor based on file
// extension and magic-byte sniffing, falling back to trying each format in
// turn when the signals disagree.
type Dispatcher struct {
	pdf  port.TextExtractor
	docx port.TextExtractor
	rtf  port.TextExtractor
}

// NewDispatcher creates a Dispatcher over the given format extractors.
func NewDispatcher(pdf, docx, rtf port.TextExtractor) *Dispatcher {
	return &Dispatcher{pdf: pdf, docx: docx, rtf: rtf}
}

// Sniff determines the document format from content magic bytes, falling
// back to the declared extension type when the content is inconclusive.
func Sniff(data []byte, extType domain.FileType) domain.FileType {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return domain.FileTypePDF
	case bytes.HasPrefix(data, []byte("PK")):
		return domain.FileTypeDOCX
	case bytes.HasPrefix(data, []byte(`{\rtf`)):
		return domain.FileTypeRTF
	case bytes.HasPrefix(data, []byte{0xD0, 0xCF, 0x11, 0xE0}):
		return domain.FileTypeDOC
	}

	// http.DetectContentType covers a few cases the prefixes above miss
	// (e.g. PDF with a UTF-8 BOM).
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if http.DetectContentType(head) == "application/pdf" {
		return domain.FileTypePDF
	}

	return extType
}

// Extract sniffs the document format and extracts its text. When the sniffed
// format fails to parse, the remaining extractors are tried in order before
// giving up.
func (d *Dispatcher) Extract(ctx context.Context, data []byte, extType domain.FileType) (string, error) {
	sniffed := Sniff(data, extType)

	order := d.chain(sniffed)
	var lastErr error
	for _, entry := range order {
		text, err := entry.ext.Extract(ctx, data)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.Printf("extractor.Dispatcher: %s extraction failed: %v", entry.name, err)
		lastErr = err
	}

	return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, lastErr)
}

type chainEntry struct {
	name string
	ext  port.TextExtractor
}

// chain returns the extractors to try, sniffed format first.
func (d *Dispatcher) chain(sniffed domain.FileType) []chainEntry {
	pdf := chainEntry{"pdf", d.pdf}
	docx := chainEntry{"docx", d.docx}
	rtf := chainEntry{"rtf", d.rtf}

	switch sniffed {
	case domain.FileTypePDF:
		return []chainEntry{pdf, docx, rtf}
	case domain.FileTypeRTF:
		return []chainEntry{rtf, docx, pdf}
	default:
		// doc and docx both route to the word extractor first
		return []chainEntry{docx, pdf, rtf}
	}
}
