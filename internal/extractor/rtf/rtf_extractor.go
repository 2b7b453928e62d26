package rtf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Extractor extracts plain text from RTF documents by stripping control
// words and groups. It implements port.TextExtractor.
type Extractor struct{}

// NewExtractor creates an RTF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if !strings.HasPrefix(string(data[:min(len(data), 5)]), `{\rtf`) {
		return "", fmt.Errorf("not an rtf file")
	}

	text := strip(string(data))
	if text == "" {
		return "", fmt.Errorf("rtf contains no extractable text")
	}
	return text, nil
}

// destinations whose group content is metadata rather than document text.
var skipDestinations = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"*":          true,
}

func strip(src string) string {
	var sb strings.Builder
	skipDepth := 0
	depth := 0

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '{':
			depth++
		case '}':
			if skipDepth > 0 && depth == skipDepth {
				skipDepth = 0
			}
			depth--
		case '\\':
			word, param, consumed := readControl(src[i+1:])
			i += consumed
			if skipDepth > 0 {
				continue
			}
			switch word {
			case "par", "line", "sect", "page":
				sb.WriteString("\n")
			case "tab":
				sb.WriteString("\t")
			case "'":
				// \'hh hex-escaped code-page byte; Word emits cp1252
				if b, err := strconv.ParseUint(param, 16, 8); err == nil {
					sb.WriteRune(charmap.Windows1252.DecodeByte(byte(b)))
				}
			case "u":
				// \uN unicode code point, signed 16-bit; the following
				// fallback (a plain char or an \'hh escape) is skipped
				if n, err := strconv.Atoi(param); err == nil {
					if n < 0 {
						n += 65536
					}
					sb.WriteRune(rune(n))
					i += fallbackLen(src[i+1:])
				}
			case "\\", "{", "}":
				sb.WriteString(word)
			default:
				if skipDestinations[word] {
					skipDepth = depth
				}
			}
		case '\r', '\n':
			// raw newlines in rtf source are not document text
		default:
			if skipDepth == 0 {
				sb.WriteByte(c)
			}
		}
	}

	text := sb.String()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}

// fallbackLen returns how many bytes the \uN fallback character occupies:
// 4 for an \'hh escape, 1 for a plain character, 0 when the next token is a
// control word or group delimiter.
func fallbackLen(src string) int {
	if src == "" {
		return 0
	}
	if src[0] == '\\' {
		if len(src) >= 4 && src[1] == '\'' {
			return 4
		}
		return 0
	}
	if src[0] == '{' || src[0] == '}' {
		return 0
	}
	return 1
}

// readControl reads a control word or symbol starting just after a backslash.
// It returns the word, its numeric/hex parameter, and the number of bytes
// consumed (not counting the backslash itself).
func readControl(src string) (word, param string, consumed int) {
	if src == "" {
		return "", "", 0
	}

	c := src[0]
	// Control symbols: a single non-alphabetic character.
	if !isAlpha(c) {
		if c == '\'' && len(src) >= 3 {
			return "'", src[1:3], 3
		}
		return string(c), "", 1
	}

	i := 0
	for i < len(src) && isAlpha(src[i]) {
		i++
	}
	word = src[:i]

	j := i
	if j < len(src) && (src[j] == '-' || isDigit(src[j])) {
		j++
		for j < len(src) && isDigit(src[j]) {
			j++
		}
		param = src[i:j]
	}

	// A single trailing space is part of the control word.
	if j < len(src) && src[j] == ' ' {
		j++
	}
	return word, param, j
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
