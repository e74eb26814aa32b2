// Package main provides the entry point for the resume relevance CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relevance",
	Short: "Resume relevance scoring engine",
	Long:  "Relevance scores parsed resumes against parsed job descriptions deterministically: skill matching, weighted criterion scoring, verdict classification, and improvement feedback.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
