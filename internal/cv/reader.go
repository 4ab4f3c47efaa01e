package cv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// SupportedExtensions lists the resume formats the scanner will read.
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// IsSupported reports whether filename has a readable resume extension.
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TextReader decodes a document on disk into plain text.
type TextReader interface {
	ReadText(path string) (string, error)
}

// DocReader extracts text from PDF/DOCX/DOC/TXT files.
type DocReader struct{}

func NewDocReader() *DocReader {
	return &DocReader{}
}

// ReadText returns the plain text of the document at path.
func (r *DocReader) ReadText(path string) (string, error) {
	fileType := strings.ToLower(filepath.Ext(path))

	switch fileType {
	case ".pdf", ".docx", ".doc":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("failed to parse document: %w", err)
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
}
