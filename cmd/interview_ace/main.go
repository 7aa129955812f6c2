// Package main provides the entry point for the Interview Ace HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_ace",
	Short: "Interview Ace HTTP API Server",
	Long:  "Interview Ace extracts candidate info from uploaded resumes, selects interview questions for the detected role and level, and generates model answers via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
