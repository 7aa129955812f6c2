// Package extract converts uploaded resumes into plain text and recovers
// structured candidate facts from that text with best-effort heuristics.
// Every heuristic degrades to the "Not found" sentinel instead of failing.
package extract

import (
	"path/filepath"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"
)

// Text extracts plain text from a resume file based on its extension.
// PDF pages are concatenated in page order; DOC/DOCX paragraphs are joined
// with newlines. Returns UnreadableDocumentError for corrupt containers and
// EmptyDocumentError when the extracted text is blank after trimming.
func Text(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = pdfText(path)
	case ".doc", ".docx":
		text, err = docxText(path)
	default:
		return "", &UnreadableDocumentError{Path: path}
	}

	if err != nil {
		return "", &UnreadableDocumentError{Path: path, Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &EmptyDocumentError{Path: path}
	}
	return text, nil
}

func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip pages that fail to decode
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func docxText(path string) (string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
