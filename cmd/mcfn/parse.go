package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcfn/internal/diag"
	"mcfn/internal/diagfmt"
	"mcfn/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.mcfunction|directory>",
	Short: "Parse a command function file or directory and output the AST",
	Long:  `Parse analyzes a command function file, or every *.mcfunction file in a directory, and outputs the syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(path)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		return renderParseResult(result, format, prettyOpts)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	_, results, err := driver.ParseDir(cmd.Context(), path, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := 0
	for _, result := range results {
		if err := renderParseResult(result, format, prettyOpts); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to parse", failed)
	}
	return nil
}

func renderParseResult(result *driver.ParseResult, format string, opts diagfmt.PrettyOpts) error {
	if result.Err != nil {
		diagfmt.Pretty(os.Stderr, diag.FromError(result.Err), result.File, opts)
		return result.Err
	}

	switch format {
	case "json":
		return diagfmt.FormatProgramJSON(os.Stdout, result.Program)
	default:
		return diagfmt.FormatProgramTree(os.Stdout, result.Program)
	}
}
