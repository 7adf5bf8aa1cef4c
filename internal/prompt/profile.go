package prompt

import (
	"fmt"
	"strings"
)

type Experience struct {
	Title            string `json:"title"`
	Company          string `json:"company"`
	Duration         string `json:"duration"`
	Responsibilities string `json:"responsibilities"`
}

type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Year       string `json:"year"`
}

// Profile is the structured input for building a résumé from scratch.
type Profile struct {
	Name       string       `json:"name" validate:"required"`
	Email      string       `json:"email" validate:"required,email"`
	Phone      string       `json:"phone"`
	LinkedIn   string       `json:"linkedin"`
	Summary    string       `json:"summary" validate:"required"`
	Skills     string       `json:"skills" validate:"required"`
	Experience []Experience `json:"experience"`
	Education  Education    `json:"education"`
}

// supplied reports whether a form value carries content. Forms send "N/A"
// for sections the user skipped.
func supplied(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "N/A")
}

func (e Experience) supplied() bool { return supplied(e.Title) }

func (e Education) supplied() bool { return supplied(e.Degree) }

// Generation asks for a complete résumé built from p. Experience and
// education blocks are left out entirely when not supplied.
func Generation(p Profile) string {
	var experience strings.Builder
	for _, exp := range p.Experience {
		if !exp.supplied() {
			continue
		}
		if experience.Len() == 0 {
			experience.WriteString("WORK EXPERIENCE:\n")
		}
		fmt.Fprintf(&experience, "%s | %s | %s\n%s\n", exp.Title, exp.Company, exp.Duration, exp.Responsibilities)
	}

	var education string
	if p.Education.supplied() {
		education = fmt.Sprintf("EDUCATION:\n%s\n%s | %s\n", p.Education.Degree, p.Education.University, p.Education.Year)
	}

	var b strings.Builder
	b.WriteString("\nYou are a professional resume writer. Create a polished, professional resume based on the following information:\n\n")
	fmt.Fprintf(&b, "NAME: %s\nEMAIL: %s\nPHONE: %s\nLINKEDIN: %s\n\n", p.Name, p.Email, p.Phone, p.LinkedIn)
	fmt.Fprintf(&b, "PROFESSIONAL SUMMARY:\n%s\n\n", p.Summary)
	if experience.Len() > 0 {
		b.WriteString(experience.String() + "\n")
	}
	if education != "" {
		b.WriteString(education + "\n")
	}
	fmt.Fprintf(&b, "SKILLS:\n%s\n\n", p.Skills)
	b.WriteString("Format the resume professionally using these markers:\n")
	b.WriteString(markerRules + "\n\n")
	b.WriteString("Create a complete, professional resume. If there is no work experience or education provided, " +
		"focus on skills, summary, and potential. Make it compelling for entry-level positions.\n")
	return b.String()
}

// Contact identifies the applicant in a cover letter.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// CoverLetter asks for a cover letter tailored to jobDescription. The reply
// is plain prose using bracketed placeholders for details the model cannot know.
func CoverLetter(cvText, jobDescription string, c Contact) string {
	name := c.Name
	if name == "" {
		name = "John Doe"
	}
	email := c.Email
	if email == "" {
		email = "email@example.com"
	}

	return fmt.Sprintf(`
You are a professional career coach and expert cover letter writer. Create a compelling, personalized cover letter based on the following information:

CANDIDATE'S RESUME:
%s

JOB DESCRIPTION:
%s

CANDIDATE INFO:
Name: %s
Email: %s
Phone: %s

INSTRUCTIONS:
1. Write a professional cover letter that:
   - Opens with a strong, attention-grabbing introduction
   - Clearly states the position being applied for
   - Highlights 2-3 key achievements from the resume that match the job requirements
   - Shows enthusiasm and cultural fit
   - Explains why the candidate is perfect for this role
   - Includes a call to action
   - Closes professionally

2. Tone: Professional yet personable, confident but not arrogant
3. Length: 3-4 paragraphs, approximately 250-350 words
4. Focus on value proposition: what the candidate can bring to the company
5. Separate paragraphs with a blank line

Format the letter with these markers:
- Use [DATE] for today's date placeholder
- Use [COMPANY_NAME] as placeholder for company name
- Use [HIRING_MANAGER] as placeholder for hiring manager's name
- Use [POSITION] for the job title

Create a compelling cover letter that will make the hiring manager want to interview this candidate.
`, cvText, jobDescription, name, email, c.Phone)
}
