package analysis

import "regexp"

const (
	msgTailorKeywords = "Tailor your resume by including keywords from the job description."
	msgAddContact     = "Add contact information (email, phone)."
	msgAddMetrics     = "Add measurable achievements (metrics, % improvements)."
	msgLooksGood      = "Looks good — consider quantifying achievements for stronger impact."
)

var (
	phoneRe   = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	metricsRe = regexp.MustCompile(`(?i)\b(\d+%|\bimproved\b|\breduced\b|\bincreased\b)\b`)
)

// HasPhone reports whether text contains a phone-number-like pattern.
func HasPhone(text string) bool { return phoneRe.MatchString(text) }

// HasQuantifiedAchievement reports whether text contains a percentage or an
// improvement cue.
func HasQuantifiedAchievement(text string) bool { return metricsRe.MatchString(text) }

// Suggestions builds actionable feedback from the raw resume text and the
// missing-keyword list. The rules run in priority order and the result is
// never empty: a generic message fills in when no rule fires.
func Suggestions(resumeText string, missing []string) []string {
	out := make([]string, 0, 3)
	if len(missing) > 0 {
		out = append(out, msgTailorKeywords)
	}
	if !HasPhone(resumeText) && !HasEmail(resumeText) {
		out = append(out, msgAddContact)
	}
	if !HasQuantifiedAchievement(resumeText) {
		out = append(out, msgAddMetrics)
	}
	if len(out) == 0 {
		out = append(out, msgLooksGood)
	}
	return out
}

// ATSTips returns the static applicant-tracking-system advice shown with
// every analysis.
func ATSTips() []string {
	return []string{
		"Use standard headings (Experience, Education, Skills).",
		"Avoid images and complex tables — prefer plain text or simple layouts.",
		"Include important keywords from the job description.",
	}
}
