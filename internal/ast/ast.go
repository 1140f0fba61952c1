// Package ast defines the abstract syntax tree produced by the parser: a
// closed set of statement and expression node variants owned uniformly by
// a Tree, plus the tree-query surface consumers (the transform passes, the
// CLI) need.
package ast

import (
	"github.com/laurentdupin/hlslparser/internal/arena"
	"github.com/laurentdupin/hlslparser/internal/intern"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// NodeKind tags every concrete node type in the closed variant set.
type NodeKind int

const (
	KindRoot NodeKind = iota

	KindDeclaration
	KindStruct
	KindStructField
	KindBuffer
	KindFunction
	KindArgument
	KindExpressionStatement
	KindReturn
	KindDiscard
	KindBreak
	KindContinue
	KindIf
	KindFor
	KindBlock
	KindTechnique
	KindPass
	KindPipeline
	KindStage
	KindAttribute

	KindUnary
	KindBinary
	KindConditional
	KindCasting
	KindLiteral
	KindIdentifier
	KindConstructor
	KindMemberAccess
	KindArrayAccess
	KindFunctionCall
	KindSamplerState
	KindStateAssignment
)

// BaseNode is embedded in every concrete node type. It carries the fields
// every node carries: its variant tag, interned source file, and line
// number.
type BaseNode struct {
	kind NodeKind
	file intern.Symbol
	line int
}

// Kind returns the node's variant tag.
func (b BaseNode) Kind() NodeKind { return b.kind }

// Line returns the 1-based source line the node was parsed from.
func (b BaseNode) Line() int { return b.line }

// File returns the interned source file name the node was parsed from.
func (b BaseNode) File() intern.Symbol { return b.file }

// Node is the interface every AST node -- statement or expression --
// implements.
type Node interface {
	Kind() NodeKind
	Line() int
	File() intern.Symbol
}

// Statement is any node that performs an action but produces no value.
// Every statement has a possible next-statement sibling link, an optional
// attribute-block head, and a Hidden bit set by the prune pass.
type Statement interface {
	Node
	statementNode()
	Next() Statement
	SetNext(Statement)
	Attributes() *Attribute
	SetAttributes(*Attribute)
	Hidden() bool
	SetHidden(bool)
}

// Expression is any node that produces a value. Every expression carries
// its resolved type (assigned by the semantic resolver) and a possible
// next-expression sibling link (used for argument/initializer lists).
type Expression interface {
	Node
	expressionNode()
	Type() Type
	SetType(Type)
	NextExpr() Expression
	SetNextExpr(Expression)
}

// Type is the type-system's descriptor, used by every typed expression
// node.
type Type = types.Type

// StmtHeader is embedded by every concrete Statement, implementing the
// sibling-link, attribute-block, and hidden-bit fields Statement requires.
type StmtHeader struct {
	BaseNode
	next       Statement
	attributes *Attribute
	hidden     bool
}

func (h *StmtHeader) statementNode()               {}
func (h *StmtHeader) Next() Statement               { return h.next }
func (h *StmtHeader) SetNext(s Statement)            { h.next = s }
func (h *StmtHeader) Attributes() *Attribute         { return h.attributes }
func (h *StmtHeader) SetAttributes(a *Attribute)     { h.attributes = a }
func (h *StmtHeader) Hidden() bool                   { return h.hidden }
func (h *StmtHeader) SetHidden(v bool)               { h.hidden = v }

// ExprHeader is embedded by every concrete Expression.
type ExprHeader struct {
	BaseNode
	typ  Type
	next Expression
}

func (h *ExprHeader) expressionNode()          {}
func (h *ExprHeader) Type() Type                { return h.typ }
func (h *ExprHeader) SetType(t Type)             { h.typ = t }
func (h *ExprHeader) NextExpr() Expression       { return h.next }
func (h *ExprHeader) SetNextExpr(e Expression)   { h.next = e }

// Root is the AST root: a pointer to the first top-level statement.
type Root struct {
	BaseNode
	Statement Statement
}

func (r *Root) Kind() NodeKind { return KindRoot }

// Tree owns every node created during one parse: the arena page budget,
// the string interner, and the root. Nodes are plain GC'd Go values
// reachable only through the Tree that created them; dropping the Tree
// (letting nothing reference it) frees the whole tree at once. See
// internal/arena's doc comment for why this uses a byte-accounting Tracker
// rather than one generic Arena[T] per node type.
type Tree struct {
	arena    *arena.Tracker
	Interner *intern.Interner
	Root     *Root
}

// NewTree creates an empty Tree with the default page budget.
func NewTree() *Tree {
	return &Tree{
		arena:    arena.NewTracker(arena.DefaultPageBytes, arena.DefaultMaxPages),
		Interner: intern.New(),
	}
}

// charge accounts for a newly allocated node's size against the page
// budget, returning arena.ErrExhausted if the tree has grown too large.
func (t *Tree) charge(size uintptr) error {
	return t.arena.Charge(int(size))
}

func (t *Tree) base(kind NodeKind, file intern.Symbol, line int) BaseNode {
	return BaseNode{kind: kind, file: file, line: line}
}

// Pages reports how many arena pages the tree's nodes have consumed.
func (t *Tree) Pages() int { return t.arena.Pages() }

// InternFile interns a source file name for attribution on nodes created
// from it.
func (t *Tree) InternFile(name string) (intern.Symbol, error) {
	return t.Interner.Add(name)
}
