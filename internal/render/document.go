// Package render turns marked-up AI replies into formatted DOCX documents.
package render

import "strings"

// ParagraphKind is the block type of a rendered paragraph.
type ParagraphKind int

const (
	Plain ParagraphKind = iota
	Heading
	Bullet
)

func (k ParagraphKind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	default:
		return "plain"
	}
}

// Run is a span of text sharing one character format. Size is in points;
// zero leaves the style default in place.
type Run struct {
	Text string
	Bold bool
	Size float64
}

type Paragraph struct {
	Kind ParagraphKind
	// Level is the heading level, only meaningful for Heading paragraphs.
	Level int
	Runs  []Run
	// SpaceAfter is extra spacing after the paragraph in points.
	SpaceAfter float64
}

// Text returns the concatenated run text.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

type Document struct {
	Paragraphs []Paragraph
}

func (d *Document) add(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}
