package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcfn/internal/diag"
	"mcfn/internal/diagfmt"
	"mcfn/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.mcfunction|directory>",
	Short: "Parse without output, reporting only failures",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var results []*driver.ParseResult
	if st.IsDir() {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return err
		}
		_, results, err = driver.ParseDir(cmd.Context(), path, jobs)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	} else {
		result, err := driver.Parse(path)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		results = append(results, result)
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			diagfmt.Pretty(os.Stderr, diag.FromError(result.Err), result.File, prettyOpts)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(results))
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d file(s)\n", len(results))
	}
	return nil
}
