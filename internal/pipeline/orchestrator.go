package pipeline

import (
	"context"
	"strings"
	"time"

	"resume-checker/internal/analysis"
	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/telemetry"
	"resume-checker/internal/shared/util"
)

const (
	defaultParseTimeout    = 6 * time.Second
	defaultEvaluateTimeout = 2500 * time.Millisecond
)

// Input is what a caller hands the pipeline: pasted text, an uploaded
// file, or both. Pasted text wins over the file.
type Input struct {
	ResumeText     string
	JobDescription string
	FileName       string
	FileBytes      []byte
}

// Orchestrator drives the two-stage analysis flow: obtain resume text,
// then evaluate it. Each stage prefers the remote collaborator and falls
// back locally on timeout or failure, so Run always produces a complete
// result. Stages run strictly in sequence and share no state across
// concurrent calls.
type Orchestrator struct {
	Parser    RemoteParser
	Evaluator RemoteEvaluator

	ParseTimeout    time.Duration
	EvaluateTimeout time.Duration

	// Optional pacing for interactive callers; zero disables.
	PreDelay  time.Duration
	PostDelay time.Duration
}

// New constructs an Orchestrator with the standard stage timeouts.
func New(parser RemoteParser, evaluator RemoteEvaluator) *Orchestrator {
	return &Orchestrator{
		Parser:          parser,
		Evaluator:       evaluator,
		ParseTimeout:    defaultParseTimeout,
		EvaluateTimeout: defaultEvaluateTimeout,
	}
}

// Run executes both stages and never fails: remote trouble degrades to
// local work, absent input degrades to the demo sample.
func (o *Orchestrator) Run(ctx context.Context, in Input) analysis.Result {
	pause(ctx, o.PreDelay)

	resume := o.resumeText(ctx, in)
	if resume == "" {
		resume = SampleResume
	}
	jobDescription := in.JobDescription

	result := withTimeoutFallback(ctx, o.evaluateTimeout(),
		func(ctx context.Context) (analysis.Result, error) {
			if o.Evaluator == nil {
				return analysis.Result{}, errNoPrimary
			}
			return o.Evaluator.Evaluate(ctx, resume, jobDescription)
		},
		func(reason error) analysis.Result {
			metrics.IncEvaluateFallback()
			telemetry.Warn("pipeline.evaluate.fallback", map[string]any{
				"reason": reason.Error(),
			})
			return analysis.Evaluate(resume, jobDescription)
		})

	pause(ctx, o.PostDelay)
	return result
}

// resumeText implements stage A. Pasted text is used as-is; .txt uploads
// decode locally without a network hop; everything else goes through the
// remote parser with a placeholder substituted on failure so stage B
// always has input.
func (o *Orchestrator) resumeText(ctx context.Context, in Input) string {
	if text := strings.TrimSpace(in.ResumeText); text != "" {
		return text
	}
	if len(in.FileBytes) == 0 {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(in.FileName), ".txt") {
		return string(in.FileBytes)
	}

	return withTimeoutFallback(ctx, o.parseTimeout(),
		func(ctx context.Context) (string, error) {
			if o.Parser == nil {
				return "", errNoPrimary
			}
			parsed, err := o.Parser.Parse(ctx, in.FileName, in.FileBytes)
			if err != nil {
				return "", err
			}
			// A scanned PDF comes back OK with empty text; the demo
			// sample keeps the evaluation meaningful.
			if parsed.Text == "" {
				return SampleResume, nil
			}
			return parsed.Text, nil
		},
		func(reason error) string {
			metrics.IncParseFallback()
			telemetry.Warn("pipeline.parse.fallback", map[string]any{
				"file_name": in.FileName,
				"reason":    reason.Error(),
			})
			return placeholderText(in.FileName)
		})
}

// placeholderText builds the deterministic stand-in used when remote
// parsing is unavailable.
func placeholderText(fileName string) string {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		name = "resume"
	}
	return name + " (parsed fallback)\n" + SampleResume
}

func (o *Orchestrator) parseTimeout() time.Duration {
	if o.ParseTimeout > 0 {
		return o.ParseTimeout
	}
	return defaultParseTimeout
}

func (o *Orchestrator) evaluateTimeout() time.Duration {
	if o.EvaluateTimeout > 0 {
		return o.EvaluateTimeout
	}
	return defaultEvaluateTimeout
}
