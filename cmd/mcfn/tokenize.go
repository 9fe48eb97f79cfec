package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcfn/internal/diag"
	"mcfn/internal/diagfmt"
	"mcfn/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mcfunction",
	Short: "Tokenize a command function file",
	Long:  `Tokenize breaks a command function file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	opts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}
	for _, lexErr := range result.Errs {
		diagfmt.Pretty(os.Stderr, diag.FromError(lexErr), result.File, opts)
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.File); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, result.Tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if n := len(result.Errs); n > 0 {
		return fmt.Errorf("%d lexical error(s)", n)
	}
	return nil
}
