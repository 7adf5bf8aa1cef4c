package render

import "strings"

// Markers understood in AI replies.
const (
	HeadingMarker = "**HEADING:"
	BoldMarker    = "**"
	BulletPrefix  = "• "
)

const headingSize = 16

type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineBullet
	linePlain
)

// classifyLine trims line and reports its kind together with the text left
// once the line-level marker is removed.
func classifyLine(line string) (lineKind, string) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return lineBlank, ""
	case strings.HasPrefix(line, HeadingMarker):
		text := strings.ReplaceAll(line, HeadingMarker, "")
		text = strings.ReplaceAll(text, BoldMarker, "")
		return lineHeading, strings.TrimSpace(text)
	case strings.HasPrefix(line, BulletPrefix):
		return lineBullet, strings.TrimPrefix(line, BulletPrefix)
	default:
		return linePlain, line
	}
}

// splitBold partitions s on non-overlapping **…** pairs, matched left to
// right with the shortest span. Paired spans become bold runs without their
// markers; everything else, including a trailing unmatched marker, is kept
// verbatim as plain text.
func splitBold(s string) []Run {
	var runs []Run
	for s != "" {
		start := strings.Index(s, BoldMarker)
		if start < 0 {
			runs = append(runs, Run{Text: s})
			break
		}
		rest := s[start+len(BoldMarker):]
		end := strings.Index(rest, BoldMarker)
		if end < 0 {
			runs = append(runs, Run{Text: s})
			break
		}
		if start > 0 {
			runs = append(runs, Run{Text: s[:start]})
		}
		if inner := rest[:end]; inner != "" {
			runs = append(runs, Run{Text: inner, Bold: true})
		}
		s = rest[end+len(BoldMarker):]
	}
	return runs
}

// Parse converts marked-up text into a Document. Blank lines are dropped.
// Malformed markers never cause an error; they are rendered literally.
func Parse(markedUp string) Document {
	var doc Document
	for _, line := range strings.Split(markedUp, "\n") {
		kind, text := classifyLine(line)
		switch kind {
		case lineBlank:
			continue
		case lineHeading:
			if text == "" {
				continue
			}
			doc.add(Paragraph{
				Kind:  Heading,
				Level: 1,
				Runs:  []Run{{Text: text, Bold: true, Size: headingSize}},
			})
		case lineBullet:
			doc.add(Paragraph{Kind: Bullet, Runs: splitBold(text)})
		default:
			doc.add(Paragraph{Kind: Plain, Runs: splitBold(text)})
		}
	}
	return doc
}
