package analysis

import (
	"math"
	"regexp"
	"strings"
)

// Resume-quality detectors. Each runs against the raw resume text and
// contributes its weight at most once; order is irrelevant.
var (
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	experienceRe = regexp.MustCompile(`(?i)\b(\d{1,2}\+?\s*years|\d+\s+years|experienced|senior)\b`)
	actionVerbRe = regexp.MustCompile(`(?i)\b(responsible|led|managed|developed|designed|implemented)\b`)
)

const (
	emailWeight      = 0.4
	experienceWeight = 0.3
	actionVerbWeight = 0.3

	skillsWeight       = 0.7
	completenessWeight = 0.3
)

// HasEmail reports whether text contains an email-like pattern.
func HasEmail(text string) bool { return emailRe.MatchString(text) }

// HasExperienceCue reports whether text mentions experience duration or seniority.
func HasExperienceCue(text string) bool { return experienceRe.MatchString(text) }

// HasActionVerb reports whether text contains a common resume action verb.
func HasActionVerb(text string) bool { return actionVerbRe.MatchString(text) }

// Completeness derives a resume-quality signal in [0, 1] from the raw text.
func Completeness(resumeText string) float64 {
	var c float64
	if HasEmail(resumeText) {
		c += emailWeight
	}
	if HasExperienceCue(resumeText) {
		c += experienceWeight
	}
	if HasActionVerb(resumeText) {
		c += actionVerbWeight
	}
	return c
}

// Score compares a resume against a job description. Keyword presence is
// substring containment against the normalized resume, so partial-word hits
// count (e.g. "java" inside "javascript"); that matches the frontend the
// API was built for and is kept deliberately. skillsMatch is 0 when the job
// description yields no keywords. missing is never nil.
func Score(resumeText, jobDescription string) (score, skillsMatch int, missing []string) {
	jdKeywords := ExtractKeywords(jobDescription)
	normalized := Normalize(resumeText)

	matched := 0
	missing = make([]string, 0, len(jdKeywords))
	for _, k := range jdKeywords {
		if strings.Contains(normalized, k) {
			matched++
		} else {
			missing = append(missing, k)
		}
	}

	if len(jdKeywords) > 0 {
		skillsMatch = int(math.Round(100 * float64(matched) / float64(len(jdKeywords))))
	}

	completeness := Completeness(resumeText)
	raw := math.Round(float64(skillsMatch)*skillsWeight + completeness*100*completenessWeight)
	score = int(math.Min(100, raw))
	return score, skillsMatch, missing
}
