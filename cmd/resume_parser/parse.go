package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ner"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a resume document into a structured JSON record",
	Long:  "Parse a resume document (txt, md, pdf, docx or html) into a structured JSON record. Reads plain text from stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var (
	parseScore          bool
	parseIncludeRawText bool
	parseValidate       bool
	parseVerbose        bool
	parseOutputFile     string
	parseConfigFile     string
)

func init() {
	parseCmd.Flags().BoolVar(&parseScore, "score", false, "Score the parsed record for completeness")
	parseCmd.Flags().BoolVar(&parseIncludeRawText, "include-raw-text", false, "Include the cleaned raw text in the record")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the output against the JSON schema")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig(parseConfigFile)
	if err != nil {
		return err
	}

	text, err := readResumeText(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var opts []parser.Option
	if cfg.GeminiAPIKey != "" {
		recognizer, err := ner.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create recognizer: %w", err)
		}
		opts = append(opts, parser.WithRecognizer(recognizer))
	}

	resume, err := parser.New(opts...).Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	var score *types.ScoreResult
	if parseScore {
		score = scoring.Score(resume)
	}
	if parseIncludeRawText {
		resume.RawText = text
	}

	if parseValidate {
		if err := validateOutputs(resume, score); err != nil {
			return err
		}
	}

	if parseVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResume(resume)
		if score != nil {
			printer.PrintScore(score)
		}
	}

	var output any = resume
	if score != nil {
		output = types.ParseResponse{Success: true, Data: resume, Score: score}
	}

	return writeJSON(output, parseOutputFile)
}

// readResumeText loads resume text from a file argument, extracting by
// document type, or reads plain text from stdin when no file is given.
func readResumeText(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		text, err := extraction.ExtractText(data, args[0])
		if err != nil {
			return "", fmt.Errorf("failed to extract text: %w", err)
		}
		return text, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return extraction.CleanText(string(data)), nil
}

// validateOutputs checks the resume record, and the score when present,
// against their embedded JSON schemas.
func validateOutputs(resume *types.StructuredResume, score *types.ScoreResult) error {
	doc, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := schemas.ValidateStructuredResume(doc); err != nil {
		return fmt.Errorf("parsed record does not validate against schema: %w", err)
	}

	if score != nil {
		doc, err := json.Marshal(score)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := schemas.ValidateScoreResult(doc); err != nil {
			return fmt.Errorf("score result does not validate against schema: %w", err)
		}
	}
	return nil
}

// writeJSON writes v as indented JSON to the given path, or to stdout
// when the path is empty.
func writeJSON(v any, path string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", path)
	return nil
}
