package aiquiz

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionError signals that an uploaded document could not be turned
// into text. It is distinct from validation and generation failures so
// handlers can map it to its own status.
type ExtractionError struct {
	Filename string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract text from %q: %s", e.Filename, e.Reason)
}

// ExtractText converts an uploaded document into plain text. PDFs go
// through a text extractor; .txt and .md pass through as-is. Anything
// else is rejected rather than guessed at.
func ExtractText(filename string, data []byte) (string, *ExtractionError) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(filename, data)
	case ".txt", ".md":
		return string(data), nil
	default:
		return "", &ExtractionError{
			Filename: filename,
			Reason:   "unsupported file type, use .pdf, .txt or .md",
		}
	}
}

func extractPDF(filename string, data []byte) (string, *ExtractionError) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Filename: filename, Reason: err.Error()}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Filename: filename, Reason: err.Error()}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", &ExtractionError{Filename: filename, Reason: err.Error()}
	}
	if strings.TrimSpace(buf.String()) == "" {
		return "", &ExtractionError{Filename: filename, Reason: "document contains no extractable text"}
	}
	return buf.String(), nil
}
