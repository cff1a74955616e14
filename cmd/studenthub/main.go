// Package main provides the entry point for the Student Hub HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/studenthub/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "studenthub",
	Short: "Student Hub HTTP API Server",
	Long:  "Student Hub manages student profiles, skills, goals, interests, and uploaded files, with resume parsing that auto-populates profiles via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger.Init()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
