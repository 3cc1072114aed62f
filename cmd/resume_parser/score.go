package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a structured resume record for completeness",
	Long:  "Score a structured resume JSON record for completeness on a 0-100 scale with a letter grade and improvement suggestions. Reads from stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScore,
}

var (
	scoreValidate   bool
	scoreVerbose    bool
	scoreOutputFile string
)

func init() {
	scoreCmd.Flags().BoolVar(&scoreValidate, "validate", false, "Validate the input against the JSON schema before scoring")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	if scoreValidate {
		if err := schemas.ValidateStructuredResume(data); err != nil {
			return fmt.Errorf("input does not validate against schema: %w", err)
		}
	}

	var resume types.StructuredResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	result := scoring.Score(&resume)

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintScore(result)
	}

	return writeJSON(result, scoreOutputFile)
}
