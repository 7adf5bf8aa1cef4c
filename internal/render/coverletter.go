package render

import (
	"strings"
	"time"
)

// Letterhead is the contact block printed above a cover letter.
type Letterhead struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
}

const (
	letterDateLayout = "January 2, 2006"
	letterNameSize   = 14
	letterSpacing    = 12
)

// CoverLetter lays out a generated cover letter body: the letterhead, the
// date, then one paragraph per blank-line separated block of body. [DATE]
// placeholders in body are replaced with the date.
func CoverLetter(body string, head Letterhead, now time.Time) Document {
	var doc Document
	date := now.Format(letterDateLayout)

	name := head.Name
	if strings.TrimSpace(name) == "" {
		name = "Your Name"
	}
	header := Paragraph{Kind: Plain, Runs: []Run{
		{Text: name, Bold: true, Size: letterNameSize},
		{Text: "\n"},
	}}
	for _, line := range []string{head.Email, head.Phone, head.LinkedIn} {
		if line != "" {
			header.Runs = append(header.Runs, Run{Text: line + "\n"})
		}
	}
	doc.add(header)
	doc.add(Paragraph{Kind: Plain})
	doc.add(Paragraph{Kind: Plain, Runs: []Run{{Text: date}}})
	doc.add(Paragraph{Kind: Plain})

	body = strings.ReplaceAll(body, "[DATE]", date)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		doc.add(Paragraph{
			Kind:       Plain,
			Runs:       []Run{{Text: block}},
			SpaceAfter: letterSpacing,
		})
	}
	return doc
}
