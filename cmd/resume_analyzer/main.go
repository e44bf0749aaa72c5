// Package main provides the entry point for the Resume Analyzer service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume Analyzer API Server",
	Long:  "Resume Analyzer classifies free-text resumes into job-role categories and produces structured analyses (skills, experience level, readability metrics, sections) with persisted history.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
