package analysis

// Result is the complete outcome of one resume evaluation. Instances are
// created fresh per request and owned by the caller; nothing is shared.
type Result struct {
	Score       int      `json:"score"`
	SkillsMatch int      `json:"skillsMatch"`
	Missing     []string `json:"missing"`
	Suggestions []string `json:"suggestions"`
	ATSTips     []string `json:"atsTips"`
}

// Evaluate runs the full analysis: keyword match scoring, completeness
// heuristics, suggestions, and static tips. Pure and deterministic: the
// HTTP handler and the pipeline's local fallback both call this exact
// function, so remote and local evaluation agree for identical inputs.
// Empty inputs degrade gracefully; Evaluate never fails.
func Evaluate(resumeText, jobDescription string) Result {
	score, skillsMatch, missing := Score(resumeText, jobDescription)
	return Result{
		Score:       score,
		SkillsMatch: skillsMatch,
		Missing:     missing,
		Suggestions: Suggestions(resumeText, missing),
		ATSTips:     ATSTips(),
	}
}
