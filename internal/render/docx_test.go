package render

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/muhammadolammi/jobfit/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestWriteDOCX_Structure(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteDOCX(Parse("**HEADING: NAME**\n• Built **ETL** pipelines\nR&D <lead>"), buf)
	require.NoError(t, err)

	body := readPart(t, buf.Bytes(), "word/document.xml")
	assert.Contains(t, body, `<w:pStyle w:val="Heading1"/>`)
	assert.Contains(t, body, `<w:pStyle w:val="ListBullet"/>`)
	assert.Contains(t, body, `<w:numId w:val="1"/>`)
	assert.Contains(t, body, `<w:b/>`)
	assert.Contains(t, body, `<w:sz w:val="32"/>`)
	assert.Contains(t, body, `R&amp;D &lt;lead&gt;`)

	assert.Contains(t, readPart(t, buf.Bytes(), "word/styles.xml"), `w:styleId="ListBullet"`)
	assert.Contains(t, readPart(t, buf.Bytes(), "word/numbering.xml"), `w:numFmt w:val="bullet"`)
}

func TestRender_RoundTripThroughExtractor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "improved_resume.docx")

	got, err := Render("**HEADING: NAME**\n\n• Built **ETL** pipelines\nPython, SQL", path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text, err := extract.Extract(extract.KindDOCX, data)
	require.NoError(t, err)
	assert.Equal(t, "NAME\nBuilt ETL pipelines\nPython, SQL\n", text)
}

func TestSaveDOCX_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.docx")

	err := SaveDOCX(Parse("text"), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRenderFailure))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCoverLetter_Layout(t *testing.T) {
	now := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	body := "Dear [HIRING_MANAGER],\n\nWritten on [DATE] for you.\n\n\n\nSincerely,\nJane"

	doc := CoverLetter(body, Letterhead{Name: "Jane Doe", Email: "jane@example.com"}, now)

	require.Len(t, doc.Paragraphs, 7)
	header := doc.Paragraphs[0]
	assert.Equal(t, Run{Text: "Jane Doe", Bold: true, Size: 14}, header.Runs[0])
	assert.Equal(t, "Jane Doe\njane@example.com\n", header.Text())
	assert.Empty(t, doc.Paragraphs[1].Runs)
	assert.Equal(t, "March 4, 2025", doc.Paragraphs[2].Text())
	assert.Equal(t, "Dear [HIRING_MANAGER],", doc.Paragraphs[4].Text())
	assert.Equal(t, "Written on March 4, 2025 for you.", doc.Paragraphs[5].Text())
	assert.Equal(t, "Sincerely,\nJane", doc.Paragraphs[6].Text())
	assert.Equal(t, float64(12), doc.Paragraphs[6].SpaceAfter)
}

func TestCoverLetter_DefaultName(t *testing.T) {
	doc := CoverLetter("Hello", Letterhead{}, time.Now())
	assert.Equal(t, "Your Name", doc.Paragraphs[0].Runs[0].Text)
}
