// Package prompt renders the instructions sent to the completion service.
package prompt

import (
	"fmt"
	"strings"
)

// Analysis asks for a JSON match report of cvText against jobDescription.
func Analysis(cvText, jobDescription string) string {
	return fmt.Sprintf(`
You are a professional CV/Resume analyzer. Analyze how well this CV matches the job description.

JOB DESCRIPTION:
%s

CV/RESUME:
%s

Analyze the CV and return a JSON response with this exact structure:
{
    "match_score": <number from 0-100>,
    "matching_skills": ["skill1", "skill2"],
    "missing_skills": ["skill1", "skill2"],
    "suggestions": [
        "suggestion 1",
        "suggestion 2",
        "suggestion 3"
    ],
    "cover_letter_points": [
        "point to emphasize 1",
        "point to emphasize 2"
    ]
}

Base all reasoning only on the provided text. Do not assume experience that is not explicitly mentioned.
Return ONLY valid JSON, no other text.
`, jobDescription, cvText)
}

// Modification asks for cvText rewritten with every edit applied, using the
// heading, bold and bullet markers.
func Modification(cvText string, edits []string) string {
	var list strings.Builder
	for i, edit := range edits {
		if i > 0 {
			list.WriteByte('\n')
		}
		list.WriteString("- " + edit)
	}

	return fmt.Sprintf(`
You are a professional CV writer. I will give you a CV and a list of improvements to apply.

ORIGINAL CV:
%s

IMPROVEMENTS TO APPLY:
%s

Your task:
1. Read the CV carefully
2. Apply each improvement suggestion
3. Keep the person's original experience and facts - DO NOT make up information
4. Maintain a professional tone
5. Keep the same structure (sections like Experience, Education, Skills)

IMPORTANT - Use these formatting markers:
%s
- For contact info or smaller text: put on separate lines

Return the COMPLETE improved CV text with formatting markers.

Example format:
**HEADING: JOHN SMITH**
john@email.com | +1-555-1234

**HEADING: PROFESSIONAL SUMMARY**
Experienced data engineer with...

**HEADING: EXPERIENCE**
**Data Engineer | Company Name | 2021-Present**
• Built ETL pipelines processing 500GB daily
• Developed Python scripts for automation
• Optimized SQL queries

Make sure to use these markers throughout the CV!
`, cvText, list.String(), markerRules)
}

const markerRules = `- For headings (like name, section titles): **HEADING: text here**
- For bold text: **text**
- For bullet points: start line with "• "`
