package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/shared/storage/object/local"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p>
<w:p><w:r><w:t>EXPERIENCE</w:t></w:r></w:p>
<w:p><w:r><w:t>Engineer</w:t></w:r><w:r><w:tab/><w:t>Acme</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func buildDocx(t *testing.T) []byte {
	return buildZip(t, map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	})
}

func TestExtractTextFromBytes_Docx(t *testing.T) {
	data := buildDocx(t)

	for _, mime := range []string{MimeDOCX, "application/zip", ""} {
		text, err := ExtractTextFromBytes(context.Background(), data, mime, "cv.docx")
		require.NoError(t, err, mime)
		assert.Equal(t, "Jane Smith\nEXPERIENCE\nEngineer\tAcme", text)
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
	data := buildZip(t, map[string]string{"notes.txt": "hello"})

	_, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "notes.zip")
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "application/zip")
}

func TestExtractTextFromBytes_PlainTextRejected(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("just text"), "text/plain", "cv.txt")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractTextFromBytes_CorruptPDF(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("%PDF-1.4 not really"), MimePDF, "cv.pdf")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractTextFromBytes_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExtractTextFromBytes(ctx, buildDocx(t), MimeDOCX, "cv.docx")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(MimePDF, "cv.pdf", nil))
	assert.True(t, Supported("application/octet-stream", "cv.docx", buildDocx(t)))
	assert.True(t, Supported("Application/PDF; charset=binary", "cv", nil))
	assert.False(t, Supported("image/png", "cv.png", nil))
	assert.False(t, Supported("", "cv.txt", []byte("plain words")))
}

func TestExtractTextPersistsDerivedText(t *testing.T) {
	ctx := context.Background()
	store := local.New(t.TempDir())

	stored, err := store.Save(ctx, "guest", "cv.docx", bytes.NewReader(buildDocx(t)))
	require.NoError(t, err)

	text, err := ExtractText(ctx, store, stored.Key, stored.ContentType, "cv.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Smith")

	rc, err := store.Open(ctx, stored.Key+".extracted.txt")
	require.NoError(t, err)
	defer rc.Close()
	saved, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, text, string(saved))
}

func TestExtractTextMissingObject(t *testing.T) {
	_, err := ExtractText(context.Background(), local.New(t.TempDir()), "nope/cv.pdf", MimePDF, "cv.pdf")
	assert.Error(t, err)
}
