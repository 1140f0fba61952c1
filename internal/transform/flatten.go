package transform

import (
	"fmt"

	"github.com/laurentdupin/hlslparser/internal/ast"
)

// Flatten rewrites every function body into three-address form wherever
// a nested subexpression is a call to a function with an out/inout
// argument: evaluating such a call as a side effect of its enclosing
// expression would let the rewriter (or a codegen backend) reorder it
// relative to sibling subexpressions, so it is hoisted into a temporary
// declared immediately before the statement that used it, preserving
// source evaluation order. A call that already stands alone as an
// entire statement's expression, or as the right-hand side of an
// assignment, needs no hoisting -- there is nothing left to reorder it
// against. The left-hand side of an assignment is never rewritten.
func Flatten(tree *ast.Tree) error {
	if tree.Root == nil {
		return fmt.Errorf("transform: flatten: tree has no root")
	}
	root := tree.Root

	for s := root.Statement; s != nil; s = s.Next() {
		fn, ok := s.(*ast.Function)
		if !ok || fn.Statement == nil {
			continue
		}
		f := &flattener{tree: tree, fn: fn}
		fn.Statement = f.flattenList(fn.Statement)
		if f.err != nil {
			return f.err
		}
	}
	return nil
}

type flattener struct {
	tree     *ast.Tree
	fn       *ast.Function
	tmpCount int
	pending  []ast.Statement
	err      error
}

// flattenList rewrites every statement in the generic-Next chain headed
// by head, splicing any temporaries a statement needed in immediately
// before it, and returns the new chain head.
func (f *flattener) flattenList(head ast.Statement) ast.Statement {
	var newHead, newTail ast.Statement
	link := func(s ast.Statement) {
		s.SetNext(nil)
		if newHead == nil {
			newHead = s
		} else {
			newTail.SetNext(s)
		}
		newTail = s
	}

	for s := head; s != nil; {
		next := s.Next()
		s.SetNext(nil)

		saved := f.pending
		f.pending = nil
		f.flattenStatement(s)
		for _, p := range f.pending {
			link(p)
		}
		f.pending = saved
		link(s)

		s = next
	}
	return newHead
}

func (f *flattener) flattenStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.Declaration:
		n.Assignment = f.processRHS(n.Assignment)
		for d := n.NextDeclaration; d != nil; d = d.NextDeclaration {
			d.Assignment = f.processRHS(d.Assignment)
		}
	case *ast.ExpressionStatement:
		n.Expression = f.processRHS(n.Expression)
	case *ast.Return:
		n.Expression = f.processRHS(n.Expression)
	case *ast.If:
		n.Condition = f.processRHS(n.Condition)
		n.Statement = f.flattenList(n.Statement)
		n.ElseStatement = f.flattenList(n.ElseStatement)
	case *ast.For:
		if n.Initialization != nil {
			n.Initialization.Assignment = f.processRHS(n.Initialization.Assignment)
		}
		n.Condition = f.processRHS(n.Condition)
		n.Increment = f.processRHS(n.Increment)
		n.Statement = f.flattenList(n.Statement)
	case *ast.Block:
		n.Statement = f.flattenList(n.Statement)
	}
}

// processRHS handles one statement-level expression slot, leaving an
// assignment's left-hand side untouched.
func (f *flattener) processRHS(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	if b, ok := e.(*ast.Binary); ok && isAssignOp(b.Op) {
		b.Rhs = f.process(b.Rhs, true)
		return b
	}
	return f.process(e, true)
}

// process rewrites e's operands, extracting a temporary for e itself
// when it is a nested (non-top-level) call to a function with an
// out/inout argument.
func (f *flattener) process(e ast.Expression, topLevel bool) ast.Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.FunctionCall:
		f.flattenChain(&n.Argument)
		if !topLevel && hasOutOrInoutArgument(n.Function) {
			return f.extractTemp(n)
		}
		return n
	case *ast.Unary:
		n.Expression = f.process(n.Expression, false)
		return n
	case *ast.Binary:
		n.Lhs = f.process(n.Lhs, false)
		n.Rhs = f.process(n.Rhs, false)
		return n
	case *ast.Conditional:
		n.Condition = f.process(n.Condition, false)
		n.True = f.process(n.True, false)
		n.False = f.process(n.False, false)
		return n
	case *ast.Casting:
		n.Expression = f.process(n.Expression, false)
		return n
	case *ast.Constructor:
		f.flattenChain(&n.Argument)
		return n
	case *ast.MemberAccess:
		n.Object = f.process(n.Object, false)
		return n
	case *ast.ArrayAccess:
		n.Array = f.process(n.Array, false)
		n.Index = f.process(n.Index, false)
		return n
	default:
		// Literal, Identifier, SamplerState: leaves.
		return n
	}
}

// flattenChain rewrites each element of an argument list in source
// order, so a temporary extracted for an earlier argument is declared
// before one extracted for a later one.
func (f *flattener) flattenChain(head *ast.Expression) {
	var prev ast.Expression
	for cur := *head; cur != nil; {
		next := cur.NextExpr()
		cur.SetNextExpr(nil)
		replaced := f.process(cur, false)
		if prev == nil {
			*head = replaced
		} else {
			prev.SetNextExpr(replaced)
		}
		prev = replaced
		cur = next
	}
}

func (f *flattener) extractTemp(call *ast.FunctionCall) ast.Expression {
	if f.err != nil {
		return call
	}
	name := fmt.Sprintf("tmp%d", f.tmpCount)
	f.tmpCount++

	sym, err := f.tree.Interner.Add(name)
	if err != nil {
		f.err = err
		return call
	}
	decl, err := f.tree.NewDeclaration(call.File(), call.Line())
	if err != nil {
		f.err = err
		return call
	}
	decl.Name = sym
	decl.Type = call.Type()
	decl.Assignment = call
	f.pending = append(f.pending, decl)

	id, err := f.tree.NewIdentifier(call.File(), call.Line())
	if err != nil {
		f.err = err
		return call
	}
	id.Name = sym
	id.SetType(call.Type())
	return id
}

func hasOutOrInoutArgument(fn *ast.Function) bool {
	if fn == nil {
		return false
	}
	for a := fn.Argument; a != nil; a = a.NextArgument {
		if a.Modifier == ast.ModifierOut || a.Modifier == ast.ModifierInOut {
			return true
		}
	}
	return false
}

func isAssignOp(op ast.BinaryOp) bool {
	switch op {
	case ast.BinaryAssign, ast.BinaryAddAssign, ast.BinarySubAssign, ast.BinaryMulAssign, ast.BinaryDivAssign:
		return true
	}
	return false
}
