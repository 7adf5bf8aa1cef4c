package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// ErrRenderFailure wraps any failure to produce the output document.
var ErrRenderFailure = errors.New("render failure")

const (
	styleListBullet = "ListBullet"
	bulletNumID     = 1
)

// WriteDOCX serialises doc as a DOCX package to w.
func WriteDOCX(doc Document, w io.Writer) error {
	base, err := loadBasePackage()
	if err != nil {
		return fmt.Errorf("%w: build base package: %v", ErrRenderFailure, err)
	}
	pkg, err := docx.ReadDocxFromMemory(bytes.NewReader(base), int64(len(base)))
	if err != nil {
		return fmt.Errorf("%w: open base package: %v", ErrRenderFailure, err)
	}
	defer pkg.Close()

	editable := pkg.Editable()
	editable.SetContent(documentXML(doc))
	if err := editable.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return nil
}

// SaveDOCX writes doc to path. A partially written file is removed.
func SaveDOCX(doc Document, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrRenderFailure, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return WriteDOCX(doc, f)
}

// Render parses marked-up text and saves it as a DOCX at path.
func Render(markedUp, path string) (string, error) {
	if err := SaveDOCX(Parse(markedUp), path); err != nil {
		return "", err
	}
	return path, nil
}

func documentXML(doc Document) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range doc.Paragraphs {
		writeParagraph(&b, p)
	}
	// US letter, one inch margins
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>`)
	b.WriteString(`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>`)
	b.WriteString(`</w:sectPr></w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, p Paragraph) {
	b.WriteString(`<w:p>`)

	var ppr strings.Builder
	switch p.Kind {
	case Heading:
		ppr.WriteString(`<w:pStyle w:val="` + headingStyle(p.Level) + `"/>`)
	case Bullet:
		ppr.WriteString(`<w:pStyle w:val="` + styleListBullet + `"/>`)
		ppr.WriteString(`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="` + strconv.Itoa(bulletNumID) + `"/></w:numPr>`)
	}
	if p.SpaceAfter > 0 {
		ppr.WriteString(`<w:spacing w:after="` + strconv.Itoa(int(p.SpaceAfter*20)) + `"/>`)
	}
	if ppr.Len() > 0 {
		b.WriteString(`<w:pPr>` + ppr.String() + `</w:pPr>`)
	}

	for _, r := range p.Runs {
		writeRun(b, r)
	}
	b.WriteString(`</w:p>`)
}

func headingStyle(level int) string {
	if level < 1 {
		level = 1
	}
	return "Heading" + strconv.Itoa(level)
}

func writeRun(b *strings.Builder, r Run) {
	b.WriteString(`<w:r>`)
	if r.Bold || r.Size > 0 {
		b.WriteString(`<w:rPr>`)
		if r.Bold {
			b.WriteString(`<w:b/><w:bCs/>`)
		}
		if r.Size > 0 {
			halfPoints := strconv.Itoa(int(r.Size * 2))
			b.WriteString(`<w:sz w:val="` + halfPoints + `"/><w:szCs w:val="` + halfPoints + `"/>`)
		}
		b.WriteString(`</w:rPr>`)
	}

	lines := strings.Split(r.Text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		for j, segment := range strings.Split(line, "\t") {
			if j > 0 {
				b.WriteString(`<w:tab/>`)
			}
			if segment == "" {
				continue
			}
			b.WriteString(`<w:t xml:space="preserve">`)
			xml.EscapeText(b, []byte(segment))
			b.WriteString(`</w:t>`)
		}
	}
	b.WriteString(`</w:r>`)
}
