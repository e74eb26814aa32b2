package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-relevance/internal/skills"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("relevance version: %s (synonym table %s)\n", version, skills.SynonymTableVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
