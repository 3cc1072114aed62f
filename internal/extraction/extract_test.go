package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	data := []byte("Jane Doe\r\nEngineer\r\n\r\n\r\n\r\nSKILLS\r\nGo,   Python\r\n")

	text, err := ExtractText(data, "resume.txt")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nEngineer\n\nSKILLS\nGo, Python", text)
}

func TestExtractText_HTML(t *testing.T) {
	html := []byte(`<html><head><style>body{color:red}</style></head><body>
		<h1>Jane Doe</h1>
		<h2>Experience</h2>
		<p>Software Engineer at Acme</p>
		<ul><li>Built services</li></ul>
		<script>alert("hi")</script>
	</body></html>`)

	text, err := ExtractText(html, "resume.html")
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Experience")
	assert.Contains(t, text, "Software Engineer at Acme")
	assert.Contains(t, text, "Built services")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	_, err := ExtractText([]byte("data"), "resume.xlsx")

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".xlsx", unsupported.Ext)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText([]byte("plain body"), "RESUME.TXT")
	require.NoError(t, err)
	assert.Equal(t, "plain body", text)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf"), "resume.pdf")
	assert.Error(t, err)
}

func TestExtractText_CorruptDOCX(t *testing.T) {
	_, err := ExtractText([]byte("not a docx"), "resume.docx")
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("cv.pdf"))
	assert.True(t, Supported("cv.DOCX"))
	assert.True(t, Supported("cv.md"))
	assert.False(t, Supported("cv.exe"))
	assert.False(t, Supported("cv"))
}

func TestFlattenDocxXML(t *testing.T) {
	xml := `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p>`

	text := flattenDocxXML(xml)

	assert.Equal(t, "Jane Doe\nEngineer\n", text)
}

func TestCleanText_PreservesBulletsAndIndent(t *testing.T) {
	text := CleanText("EXPERIENCE\n  • Built   things   \n\tmore")

	assert.Equal(t, "EXPERIENCE\n  • Built things\n more", text)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Empty(t, CleanText("   \n\t\n"))
}
