package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-evaluator/internal/analyzer"
	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/observability"
	"github.com/jonathan/resume-evaluator/internal/scoring"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a resume text file and report ATS scores",
	Long: `Runs the resume text through the rule-based analyzer, the AI semantic analyzer, and the evidence-based rubric reviewer, then prints the merged evaluation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runEvaluate,
}

var (
	evalConfigPath string
	evalInput      string
	evalVocabPath  string
	evalJSON       bool
	evalSkipAI     bool
	evalSkipRubric bool
	evalVerbose    bool
	evalTimeout    int
)

func init() {
	evaluateCmd.Flags().StringVar(&evalConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	evaluateCmd.Flags().StringVarP(&evalInput, "input", "i", "", "Path to resume text file (required)")
	evaluateCmd.Flags().StringVar(&evalVocabPath, "vocab", "", "Path to keyword vocabulary JSON file")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "Print the raw evaluation JSON instead of formatted output")
	evaluateCmd.Flags().BoolVar(&evalSkipAI, "skip-ai", false, "Skip the AI semantic analyzer")
	evaluateCmd.Flags().BoolVar(&evalSkipRubric, "skip-rubric", false, "Skip the rubric analyzer")
	evaluateCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print category breakdowns and penalties")
	evaluateCmd.Flags().IntVar(&evalTimeout, "timeout", 0, "Per-analyzer timeout in seconds")

	_ = evaluateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if evalConfigPath != "" {
		loadedCfg, err := config.LoadConfig(evalConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("vocab") {
		cfg.VocabPath = evalVocabPath
	}
	if cmd.Flags().Changed("timeout") {
		cfg.AnalyzerTimeout = evalTimeout
	}
	if evalSkipAI {
		cfg.DisableAI = true
	}
	if evalSkipRubric {
		cfg.DisableRubric = true
	}
	if evalVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(evalInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", evalInput, err)
	}

	evaluator, cleanup, err := buildEvaluator(ctx, &cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	eval, err := evaluator.Evaluate(ctx, string(data))
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if evalJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(eval)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScores(eval)
	printer.PrintSummary(eval.AnalysisSummary)
	printer.PrintImprovements(eval.ResumeImprovements)

	if cfg.Verbose {
		if result := detailedBreakdown(&cfg, string(data)); result != nil {
			printer.PrintCategoryBreakdown(result)
		}
	}

	return nil
}

// detailedBreakdown reruns the rule-based analyzer to expose per-category
// penalties for verbose output. The rule engine is deterministic, so this
// matches the score already reported.
func detailedBreakdown(cfg *config.Config, rawText string) *scoring.Result {
	vocab := scoring.DefaultVocabulary()
	if cfg.VocabPath != "" {
		if loaded, err := scoring.LoadVocabulary(cfg.VocabPath); err == nil {
			vocab = loaded
		}
	}

	_, result := analyzer.NewStandard(vocab).AnalyzeDetailed(rawText)
	return result
}
