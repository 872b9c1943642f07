// Package main provides the entry point for the NFL depth chart compiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "depth_compiler",
	Short: "NFL depth chart compiler",
	Long:  "Compiles NFL depth charts for all 32 teams from public ESPN pages, validates the dataset against roster bounds, and exports it as CSV and JSON.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
