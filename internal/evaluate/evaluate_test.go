package evaluate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/analyzer"
	"github.com/jonathan/resume-evaluator/internal/ingestion"
	"github.com/jonathan/resume-evaluator/internal/types"
)

const sampleResume = `John Smith
CONTACT
Email: john.smith@example.com
Phone: 555-123-4567
linkedin.com/in/johnsmith
Location: Seattle, WA

SUMMARY
Software engineer focused on building reliable backend platforms.

SKILLS
Python, Java, JavaScript, SQL, React, AWS, Docker, Kubernetes, Git, Linux, PostgreSQL, MongoDB, Microservices, REST API

EXPERIENCE
Senior Software Engineer, Acme Corp, 2021 - 2023
• Developed a payment microservices platform using Python and AWS, improved throughput by 40%
• Led a team of 5 members to deliver a React dashboard, reduced support tickets by 30%
• Optimized PostgreSQL queries, achieved 2x faster reporting

PROJECTS
Inventory Tracker
• Designed a Python inventory service with PostgreSQL, improved stock accuracy by 25%

EDUCATION
B.S. Computer Science, State University, 2014 - 2018

CERTIFICATIONS
AWS Certified Solutions Architect`

// stubAnalyzer returns a fixed result or error.
type stubAnalyzer struct {
	name   string
	result *types.AnalyzerResult
	err    error
	delay  time.Duration
}

func (s *stubAnalyzer) Name() string { return s.name }

func (s *stubAnalyzer) Analyze(ctx context.Context, _ string) (*types.AnalyzerResult, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, &analyzer.UnavailableError{Analyzer: s.name, Message: "timed out", Cause: ctx.Err()}
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func stubResult(score int) *types.AnalyzerResult {
	return &types.AnalyzerResult{
		Score:        score,
		Improvements: types.NewImprovementMap(),
	}
}

func TestEvaluate_StandardOnly(t *testing.T) {
	e := New(analyzer.NewStandard(nil))

	eval, err := e.Evaluate(context.Background(), sampleResume)

	require.NoError(t, err)
	assert.Nil(t, eval.AIScore)
	assert.Nil(t, eval.RubricScore)
	assert.Nil(t, eval.ShortlistDecision)
	assert.Nil(t, eval.RubricFeedback)
	assert.Equal(t, eval.StandardScore, eval.FinalScore)
}

func TestEvaluate_AllThreeAnalyzers(t *testing.T) {
	rubricResult := stubResult(70)
	rubricResult.ShortlistDecision = "Yes"
	rubricResult.RubricFeedback = &types.RubricFeedback{TrustedSignals: []string{"metrics"}}

	e := New(analyzer.NewStandard(nil),
		WithAI(&stubAnalyzer{name: analyzer.NameAI, result: stubResult(90)}),
		WithRubric(&stubAnalyzer{name: analyzer.NameRubric, result: rubricResult}),
	)

	eval, err := e.Evaluate(context.Background(), sampleResume)
	require.NoError(t, err)

	require.NotNil(t, eval.AIScore)
	assert.Equal(t, 90, *eval.AIScore)
	require.NotNil(t, eval.RubricScore)
	assert.Equal(t, 70, *eval.RubricScore)
	require.NotNil(t, eval.ShortlistDecision)
	assert.Equal(t, "Yes", *eval.ShortlistDecision)
	require.NotNil(t, eval.RubricFeedback)

	expected := meanScore([]int{eval.StandardScore, 90, 70})
	assert.Equal(t, expected, eval.FinalScore)
}

func TestEvaluate_UnavailableAnalyzerDropped(t *testing.T) {
	e := New(analyzer.NewStandard(nil),
		WithAI(&stubAnalyzer{name: analyzer.NameAI, result: stubResult(90)}),
		WithRubric(&stubAnalyzer{
			name: analyzer.NameRubric,
			err:  &analyzer.UnavailableError{Analyzer: analyzer.NameRubric, Message: "model down"},
		}),
	)

	eval, err := e.Evaluate(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Nil(t, eval.RubricScore)
	assert.Nil(t, eval.ShortlistDecision)
	require.NotNil(t, eval.AIScore)
	assert.Equal(t, meanScore([]int{eval.StandardScore, 90}), eval.FinalScore)
}

func TestEvaluate_TimeoutDropsAnalyzer(t *testing.T) {
	e := New(analyzer.NewStandard(nil),
		WithAI(&stubAnalyzer{name: analyzer.NameAI, result: stubResult(90), delay: time.Second}),
		WithTimeout(5*time.Millisecond),
	)

	eval, err := e.Evaluate(context.Background(), sampleResume)

	require.NoError(t, err)
	assert.Nil(t, eval.AIScore)
	assert.Equal(t, eval.StandardScore, eval.FinalScore)
}

func TestEvaluate_PlainErrorWrappedAsUnavailable(t *testing.T) {
	// An analyzer failing with a non-Unavailable error still degrades the
	// evaluation instead of failing it.
	e := New(analyzer.NewStandard(nil),
		WithAI(&stubAnalyzer{name: analyzer.NameAI, err: assert.AnError}),
	)

	eval, err := e.Evaluate(context.Background(), sampleResume)

	require.NoError(t, err)
	assert.Nil(t, eval.AIScore)
}

func TestEvaluate_EmptyInputRejected(t *testing.T) {
	e := New(analyzer.NewStandard(nil))

	_, err := e.Evaluate(context.Background(), "   \n\t ")

	var ve *ingestion.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestEvaluate_ShortInputStillScored(t *testing.T) {
	e := New(analyzer.NewStandard(nil))

	eval, err := e.Evaluate(context.Background(), "John Smith, developer, john@example.com")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, eval.FinalScore, 0)
	assert.LessOrEqual(t, eval.FinalScore, 100)
}

func TestEvaluate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(analyzer.NewStandard(nil),
		WithAI(&stubAnalyzer{name: analyzer.NameAI, result: stubResult(90)}),
	)

	_, err := e.Evaluate(ctx, sampleResume)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := New(analyzer.NewStandard(nil),
		WithAI(&stubAnalyzer{name: analyzer.NameAI, result: stubResult(84)}),
	)

	first, err := e.Evaluate(context.Background(), sampleResume)
	require.NoError(t, err)
	second, err := e.Evaluate(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMeanScore_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 80, meanScore([]int{80, 90, 70}))
	assert.Equal(t, 75, meanScore([]int{80, 70}))
	assert.Equal(t, 86, meanScore([]int{85, 86, 86})) // 85.67 rounds up
	assert.Equal(t, 84, meanScore([]int{83, 84}))     // 83.5 rounds up
	assert.Equal(t, 42, meanScore([]int{42}))
}
