// Package cmd implements the hlslparser command-line tool: lex, parse,
// and check subcommands over the shading-language front end.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hlslparser",
	Short: "Shading-language front end: lexer, parser, and tree transforms",
	Long: `hlslparser is a standalone front end for an HLSL-family shading
language: a hand-written lexer and recursive-descent parser that build a
typed AST, plus a handful of tree transforms (prune, sort, group,
flatten, alpha-test emulation) used to prepare a shader for a codegen
backend.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
