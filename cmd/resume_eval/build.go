package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-evaluator/internal/analyzer"
	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/evaluate"
	"github.com/jonathan/resume-evaluator/internal/llm"
	"github.com/jonathan/resume-evaluator/internal/rubric"
	"github.com/jonathan/resume-evaluator/internal/scoring"
	"github.com/jonathan/resume-evaluator/internal/semantic"
)

// buildEvaluator assembles the evaluation pipeline from configuration.
// External analyzers are attached only when a key is available and the
// analyzer is not disabled; the returned cleanup closes any LLM clients.
func buildEvaluator(ctx context.Context, cfg *config.Config) (*evaluate.Evaluator, func(), error) {
	vocab := scoring.DefaultVocabulary()
	if cfg.VocabPath != "" {
		loaded, err := scoring.LoadVocabulary(cfg.VocabPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
	}

	standard := analyzer.NewStandard(vocab)

	var opts []evaluate.Option
	var clients []llm.Client

	if !cfg.DisableAI {
		if key := cfg.ResolveAIKey(); key != "" {
			client, err := llm.NewGeminiClient(ctx, nil, key)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create AI analyzer client: %w", err)
			}
			clients = append(clients, client)
			opts = append(opts, evaluate.WithAI(semantic.New(client)))
		} else {
			log.Println("No API key for AI analyzer; running without it")
		}
	}

	if !cfg.DisableRubric {
		if key := cfg.ResolveRubricKey(); key != "" {
			client, err := llm.NewGeminiClient(ctx, nil, key)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create rubric analyzer client: %w", err)
			}
			clients = append(clients, client)
			opts = append(opts, evaluate.WithRubric(rubric.New(client)))
		} else {
			log.Println("No API key for rubric analyzer; running without it")
		}
	}

	if cfg.Timeout() > 0 {
		opts = append(opts, evaluate.WithTimeout(cfg.Timeout()))
	}

	cleanup := func() {
		for _, client := range clients {
			_ = client.Close()
		}
	}

	return evaluate.New(standard, opts...), cleanup, nil
}
