package cmd

import (
	"fmt"
	"os"

	"github.com/laurentdupin/hlslparser/internal/lexer"
	"github.com/laurentdupin/hlslparser/internal/token"
	"github.com/spf13/cobra"
)

var lexShowLine bool

var lexCmd = &cobra.Command{
	Use:   "lex FILENAME",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a shading-language source file and print one line per
token: its kind name, and (for identifiers and literals) its value.

Useful for debugging the lexer in isolation from the parser.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowLine, "show-line", false, "prefix each token with its source line number")
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	lex := lexer.New(filename, string(content))
	count := 0
	for lex.Kind() != token.EOF {
		printToken(lex)
		count++
		lex.Next()
	}

	if lex.Errored() {
		for _, e := range lex.Errors() {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(lex.Errors()))
	}

	fmt.Fprintf(os.Stderr, "%d token(s)\n", count)
	return nil
}

func printToken(lex *lexer.Lexer) {
	var out string
	if lexShowLine {
		out += fmt.Sprintf("%4d | ", lex.Line())
	}
	out += token.GetName(lex.Kind())

	switch lex.Kind() {
	case token.Identifier:
		out += fmt.Sprintf(" %q", lex.Identifier())
	case token.IntLiteral:
		out += fmt.Sprintf(" %d", lex.IntValue())
	case token.FloatLiteral, token.HalfLiteral:
		out += fmt.Sprintf(" %g", lex.FloatValue())
	}

	fmt.Println(out)
}
