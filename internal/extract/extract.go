// Package extract turns uploaded résumé files into plain text.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for any document kind other than PDF or DOCX.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Kind identifies the layout family of a source document.
type Kind string

const (
	KindUnknown Kind = ""
	// KindDOCX is a flowing-text word processor document.
	KindDOCX Kind = "docx"
	// KindPDF is a fixed-layout, page structured document.
	KindPDF Kind = "pdf"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// KindFromFilename maps a file extension to a Kind.
func KindFromFilename(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	default:
		return KindUnknown
	}
}

// KindFromMIME maps a declared content type to a Kind. Parameters such as
// charset are ignored.
func KindFromMIME(mime string) Kind {
	mime, _, _ = strings.Cut(mime, ";")
	switch strings.TrimSpace(strings.ToLower(mime)) {
	case MimePDF:
		return KindPDF
	case MimeDOCX:
		return KindDOCX
	default:
		return KindUnknown
	}
}

// Extract returns the plain text of data interpreted as a document of the
// given kind. DOCX paragraphs are each followed by a newline; PDF pages are
// concatenated without a separator.
func Extract(kind Kind, data []byte) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDFText(data)
	case KindDOCX:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(kind))
	}
}
