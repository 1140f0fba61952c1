// Package parser implements the recursive-descent parser: one token of
// lookahead, semantic analysis interleaved with recognition, and a scope
// stack with sentinel markers delimiting nested blocks.
package parser

import (
	"fmt"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/intern"
	"github.com/laurentdupin/hlslparser/internal/lexer"
	"github.com/laurentdupin/hlslparser/internal/token"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// scopeEntry is one binding on the variable stack, or a sentinel marking a
// scope boundary.
type scopeEntry struct {
	name     intern.Symbol
	typ      types.Type
	sentinel bool
}

// Parser recognizes the grammar and builds an ast.Tree, resolving
// identifiers and overloads as it goes.
type Parser struct {
	lex  *lexer.Lexer
	tree *ast.Tree

	curFile intern.Symbol

	variables  []scopeEntry
	numGlobals int

	errored bool
	errors  []string

	lastStatement ast.Statement // tail of the top-level statement chain
}

// New creates a Parser reading from lex, building nodes into a fresh Tree.
func New(lex *lexer.Lexer) (*Parser, error) {
	tree := ast.NewTree()
	file, err := tree.InternFile(lex.File())
	if err != nil {
		return nil, err
	}
	p := &Parser{lex: lex, tree: tree, curFile: file}
	return p, nil
}

// Tree returns the tree being built. Valid to call at any point, including
// after a failed parse (though the tree is then incomplete).
func (p *Parser) Tree() *ast.Tree { return p.tree }

// Errored reports whether any error (lexical, syntactic, or semantic) has
// been recorded.
func (p *Parser) Errored() bool { return p.errored || p.lex.Errored() }

// Errors returns every recorded diagnostic, in order. Lexer errors are
// interleaved at the front since they happen first in a sticky-error
// pipeline.
func (p *Parser) Errors() []string {
	all := append([]string{}, p.lex.Errors()...)
	return append(all, p.errors...)
}

func (p *Parser) errorf(format string, args ...any) {
	p.errored = true
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%s(%d) : %s", p.lex.File(), p.lex.Line(), msg))
}

// line/file helpers used by AST node constructors.
func (p *Parser) line() int { return p.lex.Line() }

func (p *Parser) file() (intern.Symbol, error) {
	if p.lex.File() == p.tree.Interner.String(p.curFile) {
		return p.curFile, nil
	}
	sym, err := p.tree.InternFile(p.lex.File())
	if err != nil {
		return 0, err
	}
	p.curFile = sym
	return sym, nil
}

// accept consumes the current token if it matches kind, returning true.
func (p *Parser) accept(kind token.Kind) bool {
	if p.errored || p.lex.Kind() != kind {
		return false
	}
	p.lex.Next()
	return true
}

// acceptIdentifier consumes the current token if it is the identifier
// name.
func (p *Parser) acceptIdentifier(name string) bool {
	if p.errored || p.lex.Kind() != token.Identifier || p.lex.Identifier() != name {
		return false
	}
	p.lex.Next()
	return true
}

// expect consumes the current token if it matches kind, else records an
// error and returns false.
func (p *Parser) expect(kind token.Kind) bool {
	if p.accept(kind) {
		return true
	}
	if !p.errored {
		p.errorf("expected %s near %s", token.GetName(kind), p.currentText())
	}
	return false
}

// expectIdentifierValue consumes and returns the current identifier's
// text, or records an error and returns "".
func (p *Parser) expectIdentifierValue() (string, bool) {
	if p.lex.Kind() != token.Identifier {
		p.errorf("expected identifier near %s", p.currentText())
		return "", false
	}
	name := p.lex.Identifier()
	p.lex.Next()
	return name, true
}

func (p *Parser) currentText() string {
	switch p.lex.Kind() {
	case token.EOF:
		return "<eof>"
	case token.Identifier:
		return p.lex.Identifier()
	default:
		return token.GetName(p.lex.Kind())
	}
}

func (p *Parser) intern(s string) intern.Symbol {
	sym, err := p.tree.Interner.Add(s)
	if err != nil {
		p.errorf("%s", err)
		return intern.NoSymbol
	}
	return sym
}

// BeginScope pushes a sentinel marking the start of a nested scope.
func (p *Parser) BeginScope() {
	p.variables = append(p.variables, scopeEntry{sentinel: true})
}

// EndScope pops every binding back to (and including) the last sentinel.
func (p *Parser) EndScope() {
	for len(p.variables) > 0 {
		last := p.variables[len(p.variables)-1]
		p.variables = p.variables[:len(p.variables)-1]
		if last.sentinel {
			return
		}
	}
}

// DeclareVariable appends a new binding to the innermost scope. Globals
// (declared before any BeginScope) are counted by numGlobals.
func (p *Parser) DeclareVariable(name intern.Symbol, typ types.Type) {
	p.variables = append(p.variables, scopeEntry{name: name, typ: typ})
	if len(p.variables) == 1 || !p.inScope() {
		p.numGlobals++
	}
}

func (p *Parser) inScope() bool {
	for _, e := range p.variables {
		if e.sentinel {
			return true
		}
	}
	return false
}

// FindVariable scans tail-to-head for the innermost binding of name,
// reporting whether it is global (declared at scope depth 0).
func (p *Parser) FindVariable(name intern.Symbol) (types.Type, bool, bool) {
	for i := len(p.variables) - 1; i >= 0; i-- {
		e := p.variables[i]
		if e.sentinel {
			continue
		}
		if e.name == name {
			return e.typ, true, i < p.numGlobals
		}
	}
	return types.Type{}, false, false
}

// appendStatement links s onto the tail of the root's top-level chain. A
// multi-variable declaration group counts as one slot in this chain (its
// generic Next stays nil; members are reached through
// Declaration.NextDeclaration), but a flattened namespace body returns
// several genuine sibling statements already linked by generic Next, so
// the new tail is found by following it to its end rather than assumed
// to be s itself.
func (p *Parser) appendStatement(s ast.Statement) {
	if p.tree.Root.Statement == nil {
		p.tree.Root.Statement = s
	} else {
		p.lastStatement.SetNext(s)
	}
	tail := s
	for tail.Next() != nil {
		tail = tail.Next()
	}
	p.lastStatement = tail
}

// Parse parses an entire source file into the tree's root. Returns false
// if any error was recorded; the caller must not trust the resulting tree
// on failure (per the no-partial-AST-on-failure rule).
func (p *Parser) Parse() bool {
	file, err := p.file()
	if err != nil {
		return false
	}
	root, err := p.tree.NewRoot(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return false
	}
	p.tree.Root = root

	for p.lex.Kind() != token.EOF && !p.errored {
		stmt := p.parseTopLevel()
		if stmt == nil {
			break
		}
		p.appendStatement(stmt)
	}

	return !p.Errored() && !p.inScope()
}
