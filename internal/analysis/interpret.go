// Package analysis scores a résumé against a job description.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrParse matches every *ParseError.
var ErrParse = errors.New("failed to parse AI response")

// ParseError reports a reply that was not the expected JSON object. Raw
// holds the reply exactly as received so it can be shown to the user.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

type Result struct {
	MatchScore        int      `json:"match_score"`
	MatchingSkills    []string `json:"matching_skills"`
	MissingSkills     []string `json:"missing_skills"`
	Suggestions       []string `json:"suggestions"`
	CoverLetterPoints []string `json:"cover_letter_points"`
}

type reply struct {
	MatchScore        float64  `json:"match_score"`
	MatchingSkills    []string `json:"matching_skills"`
	MissingSkills     []string `json:"missing_skills"`
	Suggestions       []string `json:"suggestions"`
	CoverLetterPoints []string `json:"cover_letter_points"`
}

// CleanJSON strips a surrounding markdown code fence, which models add even
// when told not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// Interpret decodes an analysis reply. Missing lists become empty slices and
// a missing score becomes 0; scores are rounded and clamped to 0..100.
func Interpret(raw string) (Result, error) {
	var r reply
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &r); err != nil {
		return Result{}, &ParseError{Raw: raw, Err: err}
	}

	return Result{
		MatchScore:        clampScore(r.MatchScore),
		MatchingSkills:    orEmpty(r.MatchingSkills),
		MissingSkills:     orEmpty(r.MissingSkills),
		Suggestions:       orEmpty(r.Suggestions),
		CoverLetterPoints: orEmpty(r.CoverLetterPoints),
	}, nil
}

func clampScore(score float64) int {
	score = math.Round(score)
	switch {
	case math.IsNaN(score) || score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score)
	}
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
