package docx_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralphreevencarandang/contract-reader/internal/extractor/docx"
)

// buildDocx assembles an in-memory .docx archive holding the given
// word/document.xml content.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types/>`))
	require.NoError(t, err)

	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Service Agreement</w:t></w:r></w:p>
    <w:p>
      <w:r><w:t>Client:</w:t></w:r>
      <w:r><w:tab/><w:t>Acme Corp</w:t></w:r>
    </w:p>
    <w:p><w:r><w:t>First line</w:t><w:br/><w:t>Second line</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestDocxExtractor_Extract(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := docx.NewExtractor().Extract(context.Background(), data)

	require.NoError(t, err)
	assert.Contains(t, text, "Service Agreement")
	assert.Contains(t, text, "Client:\tAcme Corp")
	assert.Contains(t, text, "First line\nSecond line")
}

func TestDocxExtractor_Extract_EmptyDocument(t *testing.T) {
	data := buildDocx(t, `<w:document xmlns:w="ns"><w:body></w:body></w:document>`)

	_, err := docx.NewExtractor().Extract(context.Background(), data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extractable text")
}

func TestDocxExtractor_Extract_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("some/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = docx.NewExtractor().Extract(context.Background(), buf.Bytes())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml not found")
}

func TestDocxExtractor_Extract_LegacyOLE2(t *testing.T) {
	ole2Magic := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

	var buf bytes.Buffer
	buf.Write(ole2Magic)
	buf.Write(bytes.Repeat([]byte{0x00}, 64))
	buf.WriteString("This agreement is made between Acme Corp and Jane Doe.")
	buf.Write(bytes.Repeat([]byte{0x01}, 16))
	buf.WriteString("short") // runs under 10 chars are dropped
	buf.Write(bytes.Repeat([]byte{0x00}, 16))

	text, err := docx.NewExtractor().Extract(context.Background(), buf.Bytes())

	require.NoError(t, err)
	assert.Contains(t, text, "This agreement is made between Acme Corp and Jane Doe.")
	assert.NotContains(t, text, "short")
}

func TestDocxExtractor_Extract_NotAWordFile(t *testing.T) {
	_, err := docx.NewExtractor().Extract(context.Background(), []byte("just plain text"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a docx or legacy doc file")
}

func TestDocxExtractor_Extract_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := docx.NewExtractor().Extract(ctx, buildDocx(t, sampleDocumentXML))

	assert.ErrorIs(t, err, context.Canceled)
}
