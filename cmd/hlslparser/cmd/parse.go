package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/errors"
	"github.com/laurentdupin/hlslparser/internal/lexer"
	"github.com/laurentdupin/hlslparser/internal/parser"
	"github.com/laurentdupin/hlslparser/internal/visitor"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse FILENAME",
	Short: "Parse a source file and report success or the first diagnostic",
	Long: `Parse a shading-language source file into its AST.

Prints "ok" and exits 0 on success. On failure, prints every recorded
diagnostic to the error stream and exits 1. With --dump-ast, a success
prints the tree structure via a depth-first visitor walk instead of "ok".`,
	Args: cobra.ExactArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "print the parsed tree structure")
}

func runParseCmd(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	lex := lexer.New(filename, source)
	p, err := parser.New(lex)
	if err != nil {
		return err
	}

	if !p.Parse() {
		compilerErrors := errors.FromStringErrors(p.Errors(), source)
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if parseDumpAST {
		visitor.Walk(&dumpVisitor{}, p.Tree().Root)
	} else {
		fmt.Println("ok")
	}
	return nil
}

// dumpVisitor prints one indented line per visited node, the indent
// depth tracked by handing each recursion level a fresh visitor.
type dumpVisitor struct {
	depth int
}

func (d *dumpVisitor) Visit(n ast.Node) visitor.Visitor {
	if n == nil {
		return nil
	}
	fmt.Printf("%s%T\n", strings.Repeat("  ", d.depth), n)
	return &dumpVisitor{depth: d.depth + 1}
}
