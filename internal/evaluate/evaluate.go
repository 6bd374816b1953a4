// Package evaluate orchestrates the analyzer pipeline: it fans work out to
// the rule-based, AI semantic, and rubric analyzers, tolerates external
// analyzer failure, and merges the surviving results into one evaluation.
package evaluate

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-evaluator/internal/analyzer"
	"github.com/jonathan/resume-evaluator/internal/ingestion"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// DefaultAnalyzerTimeout bounds each external analyzer call.
const DefaultAnalyzerTimeout = 60 * time.Second

// Evaluator runs the full evaluation pipeline over normalized resume text.
type Evaluator struct {
	standard *analyzer.Standard
	ai       analyzer.Analyzer
	rubric   analyzer.Analyzer
	timeout  time.Duration
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithAI attaches the AI semantic analyzer.
func WithAI(a analyzer.Analyzer) Option {
	return func(e *Evaluator) { e.ai = a }
}

// WithRubric attaches the evidence-based rubric analyzer.
func WithRubric(a analyzer.Analyzer) Option {
	return func(e *Evaluator) { e.rubric = a }
}

// WithTimeout overrides the per-analyzer timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) { e.timeout = d }
}

// New creates an Evaluator. The rule-based analyzer is always present;
// external analyzers are optional.
func New(standard *analyzer.Standard, opts ...Option) *Evaluator {
	e := &Evaluator{
		standard: standard,
		timeout:  DefaultAnalyzerTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// outcome holds one analyzer's result alongside its availability.
type outcome struct {
	result *types.AnalyzerResult
	err    error
}

func (o outcome) available() bool {
	return o.err == nil && o.result != nil
}

// Evaluate normalizes the raw resume text, runs every configured analyzer,
// and merges the available results. External analyzer failures degrade the
// evaluation instead of failing it; a validation error on the input itself
// is returned to the caller.
func (e *Evaluator) Evaluate(ctx context.Context, rawText string) (*types.Evaluation, error) {
	// Short input is scored with a parsability penalty rather than rejected;
	// only empty input aborts the run.
	resume, err := ingestion.Normalize(rawText)
	if err != nil && strings.TrimSpace(resume.Raw) == "" {
		return nil, err
	}

	var aiOut, rubricOut outcome

	g, gctx := errgroup.WithContext(ctx)
	if e.ai != nil {
		g.Go(func() error {
			aiOut.result, aiOut.err = e.runExternal(gctx, e.ai, resume.Raw)
			return nil
		})
	}
	if e.rubric != nil {
		g.Go(func() error {
			rubricOut.result, rubricOut.err = e.runExternal(gctx, e.rubric, resume.Raw)
			return nil
		})
	}

	// The rule-based analyzer is deterministic and cheap; run it on the
	// calling goroutine while the external calls are in flight.
	standardResult, _ := e.standard.AnalyzeDetailed(resume.Raw)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return e.assemble(standardResult, aiOut, rubricOut), nil
}

// runExternal invokes an external analyzer under the configured timeout.
func (e *Evaluator) runExternal(ctx context.Context, a analyzer.Analyzer, resumeText string) (*types.AnalyzerResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := a.Analyze(callCtx, resumeText)
	if err != nil {
		var unavailable *analyzer.UnavailableError
		if errors.As(err, &unavailable) {
			return nil, err
		}
		return nil, &analyzer.UnavailableError{Analyzer: a.Name(), Message: "analysis failed", Cause: err}
	}
	return result, nil
}

// assemble merges the per-analyzer outputs into the final evaluation.
func (e *Evaluator) assemble(standard *types.AnalyzerResult, ai, rubric outcome) *types.Evaluation {
	eval := &types.Evaluation{
		StandardScore: standard.Score,
	}

	scores := []int{standard.Score}
	results := []*types.AnalyzerResult{standard}

	if ai.available() {
		score := ai.result.Score
		eval.AIScore = &score
		scores = append(scores, score)
		results = append(results, ai.result)
	}
	if rubric.available() {
		score := rubric.result.Score
		eval.RubricScore = &score
		scores = append(scores, score)
		results = append(results, rubric.result)

		if rubric.result.ShortlistDecision != "" {
			decision := rubric.result.ShortlistDecision
			eval.ShortlistDecision = &decision
		}
		eval.RubricFeedback = rubric.result.RubricFeedback
	}

	eval.FinalScore = meanScore(scores)
	eval.AnalysisSummary = mergeSummary(results)
	eval.ResumeImprovements = mergeImprovements(results)

	return eval
}

// meanScore averages the available scores, rounding half away from zero.
func meanScore(scores []int) int {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}
