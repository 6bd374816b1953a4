// Package main provides the entry point for the resume evaluator CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_eval",
	Short: "Rule-based and AI-assisted resume ATS evaluation",
	Long:  "Resume Evaluator scores resume text against ATS criteria using a deterministic rule engine, an AI semantic analyzer, and an evidence-based rubric reviewer, then merges the results into one report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
