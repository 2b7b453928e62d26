package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ole2Magic is the compound-file signature used by legacy .doc files.
var ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Extractor extracts plain text from Word documents. DOCX files are read as
// a zip archive and the WordprocessingML is walked token by token; legacy
// OLE2 .doc files fall back to a visible-text scan. It implements
// port.TextExtractor.
type Extractor struct{}

// NewExtractor creates a Word document text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err == nil {
		return extractFromZip(zr)
	}

	if bytes.HasPrefix(data, ole2Magic) {
		return extractFromOLE2(data)
	}

	return "", fmt.Errorf("not a docx or legacy doc file: %w", err)
}

func extractFromZip(zr *zip.Reader) (string, error) {
	for _, file := range zr.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening document.xml: %w", err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading document.xml: %w", err)
		}
		text, err := parseWordML(content)
		if err != nil {
			return "", err
		}
		text = normalizeWhitespace(text)
		if text == "" {
			return "", fmt.Errorf("docx contains no extractable text")
		}
		return text, nil
	}
	return "", fmt.Errorf("word/document.xml not found in archive")
}

// parseWordML walks WordprocessingML tokens, emitting text runs, tabs, and
// paragraph/line breaks.
func parseWordML(content []byte) (string, error) {
	var sb strings.Builder
	decoder := xml.NewDecoder(bytes.NewReader(content))

	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding wordml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}

// extractFromOLE2 scans a legacy .doc compound file for runs of printable
// text. There is no WordprocessingML to walk, so this is a heuristic scan of
// visible ASCII sequences.
func extractFromOLE2(data []byte) (string, error) {
	var sb strings.Builder
	var run []byte

	flush := func() {
		if len(run) >= 10 {
			text := strings.TrimSpace(string(run))
			if text != "" {
				sb.WriteString(text)
				sb.WriteString(" ")
			}
		}
		run = nil
	}

	for _, b := range data {
		if (b >= 0x20 && b <= 0x7E) || b == '\t' || b == '\n' {
			run = append(run, b)
		} else {
			flush()
		}
	}
	flush()

	text := normalizeWhitespace(sb.String())
	if text == "" {
		return "", fmt.Errorf("legacy doc contains no extractable text")
	}
	return text, nil
}

var spaceRe = regexp.MustCompile(`[ \t]+`)

func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")

	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}
