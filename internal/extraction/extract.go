// Package extraction converts uploaded resume documents into plain UTF-8
// text with preserved line breaks. PDF, DOCX, HTML and plain text are
// supported; the extracted text is normalized before it reaches the
// parsing heuristics.
package extraction

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedTypeError indicates an upload with a file extension the
// extractor cannot handle.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %q (supported: %s)",
		e.Ext, strings.Join(SupportedExtensions(), ", "))
}

// SupportedExtensions lists the file extensions ExtractText accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".html", ".htm", ".txt", ".md"}
}

// Supported reports whether a filename's extension is extractable.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}

// ExtractText converts a document's raw bytes into cleaned plain text.
// The format is chosen by the filename's extension, case-insensitively.
func ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".html", ".htm":
		text, err = extractHTML(data)
	case ".txt", ".md":
		text = string(data)
	default:
		return "", &UnsupportedTypeError{Ext: ext}
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return flattenDocxXML(content), nil
}

// flattenDocxXML turns the document body's WordprocessingML into plain
// text: paragraph and break tags become newlines, remaining tags are
// dropped.
func flattenDocxXML(content string) string {
	for _, tag := range []string{"</w:p>", "<w:br/>", "<w:br />", "<w:cr/>"} {
		content = strings.ReplaceAll(content, tag, tag+"\n")
	}

	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Emit block-level elements on their own lines so section headings
	// stay separable downstream. Nested containers are skipped to avoid
	// emitting the same text twice.
	var b strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		if s.Is("li") && s.Find("p").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	})

	if b.Len() == 0 {
		return doc.Text(), nil
	}
	return b.String(), nil
}
