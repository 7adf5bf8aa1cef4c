package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_HeadingAndBullet(t *testing.T) {
	doc := Parse("**HEADING: NAME**\n• Built **ETL** pipelines")

	require.Len(t, doc.Paragraphs, 2)

	heading := doc.Paragraphs[0]
	assert.Equal(t, Heading, heading.Kind)
	assert.Equal(t, 1, heading.Level)
	require.Len(t, heading.Runs, 1)
	assert.Equal(t, Run{Text: "NAME", Bold: true, Size: 16}, heading.Runs[0])

	bullet := doc.Paragraphs[1]
	assert.Equal(t, Bullet, bullet.Kind)
	assert.Equal(t, []Run{
		{Text: "Built "},
		{Text: "ETL", Bold: true},
		{Text: " pipelines"},
	}, bullet.Runs)
}

func TestParse_DropsBlankLinesAndTrims(t *testing.T) {
	doc := Parse("\n   \n  first line  \n\n\tsecond\t\n")

	require.Len(t, doc.Paragraphs, 2)
	assert.Equal(t, "first line", doc.Paragraphs[0].Text())
	assert.Equal(t, "second", doc.Paragraphs[1].Text())
	assert.Equal(t, Plain, doc.Paragraphs[0].Kind)
}

func TestParse_HeadingStripsInnerBoldMarkers(t *testing.T) {
	doc := Parse("**HEADING: **PROFESSIONAL** SUMMARY**")

	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "PROFESSIONAL SUMMARY", doc.Paragraphs[0].Text())
}

func TestParse_EmptyHeadingIsSkipped(t *testing.T) {
	doc := Parse("**HEADING:**\nbody")

	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "body", doc.Paragraphs[0].Text())
}

func TestParse_BulletNeedsTrailingSpace(t *testing.T) {
	doc := Parse("•no space\n- dash item")

	require.Len(t, doc.Paragraphs, 2)
	assert.Equal(t, Plain, doc.Paragraphs[0].Kind)
	assert.Equal(t, "•no space", doc.Paragraphs[0].Text())
	assert.Equal(t, Plain, doc.Paragraphs[1].Kind)
}

func TestParse_UnterminatedBoldIsLiteral(t *testing.T) {
	doc := Parse("• Led **migration to cloud")

	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, []Run{{Text: "Led **migration to cloud"}}, doc.Paragraphs[0].Runs)
}

func TestSplitBold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Run
	}{
		{
			name: "no markers",
			in:   "plain text",
			want: []Run{{Text: "plain text"}},
		},
		{
			name: "whole line bold",
			in:   "**Data Engineer | Acme | 2021-Present**",
			want: []Run{{Text: "Data Engineer | Acme | 2021-Present", Bold: true}},
		},
		{
			name: "two spans",
			in:   "**Python** and **SQL** daily",
			want: []Run{
				{Text: "Python", Bold: true},
				{Text: " and "},
				{Text: "SQL", Bold: true},
				{Text: " daily"},
			},
		},
		{
			name: "pair then dangling marker",
			in:   "**AWS** certified ** pending",
			want: []Run{
				{Text: "AWS", Bold: true},
				{Text: " certified ** pending"},
			},
		},
		{
			name: "empty pair is dropped",
			in:   "a****b",
			want: []Run{{Text: "a"}, {Text: "b"}},
		},
		{
			name: "lone marker",
			in:   "**",
			want: []Run{{Text: "**"}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitBold(tt.in))
		})
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line     string
		wantKind lineKind
		wantText string
	}{
		{"", lineBlank, ""},
		{"   ", lineBlank, ""},
		{"**HEADING: EXPERIENCE**", lineHeading, "EXPERIENCE"},
		{"  • item  ", lineBullet, "item"},
		{"john@email.com | +1-555-1234", linePlain, "john@email.com | +1-555-1234"},
	}

	for _, tt := range tests {
		kind, text := classifyLine(tt.line)
		assert.Equal(t, tt.wantKind, kind, tt.line)
		assert.Equal(t, tt.wantText, text, tt.line)
	}
}
