// Package visitor implements the double-dispatch tree-walk over
// internal/ast: a Visitor interface plus a Walk function that recurses
// into every child of a node, in the style of go/ast's Walk/Inspect.
package visitor

import (
	"reflect"

	"github.com/laurentdupin/hlslparser/internal/ast"
)

// Visitor's Visit method is invoked for each node encountered by Walk. If
// Visit returns a non-nil Visitor w, Walk visits each of node's children
// with w; if it returns nil, that subtree is not descended into.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses the tree rooted at node, calling v.Visit for node and
// every descendant, depth-first, in declaration order. A nil node is a
// no-op.
func Walk(v Visitor, node ast.Node) {
	if node == nil || isNilStatement(node) || isNilExpression(node) {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *ast.Root:
		walkStatement(v, n.Statement)

	case *ast.Declaration:
		walkExpression(v, n.Assignment)
		walkAttributes(v, n.Attributes())
		for d := n.NextDeclaration; d != nil; d = d.NextDeclaration {
			Walk(v, d)
		}
	case *ast.Struct:
		Walk(v, n.Field)
		walkAttributes(v, n.Attributes())
	case *ast.StructField:
		for f := n.NextField; f != nil; f = f.NextField {
			Walk(v, f)
		}
	case *ast.Buffer:
		Walk(v, n.Field)
	case *ast.Function:
		Walk(v, n.Argument)
		walkStatement(v, n.Statement)
		walkAttributes(v, n.Attributes())
	case *ast.Argument:
		walkExpression(v, n.DefaultValue)
		for a := n.NextArgument; a != nil; a = a.NextArgument {
			Walk(v, a)
		}
	case *ast.ExpressionStatement:
		walkExpression(v, n.Expression)
	case *ast.Return:
		walkExpression(v, n.Expression)
	case *ast.Discard, *ast.Break, *ast.Continue:
		// leaf statements
	case *ast.If:
		walkExpression(v, n.Condition)
		walkStatement(v, n.Statement)
		walkStatement(v, n.ElseStatement)
		walkAttributes(v, n.Attributes())
	case *ast.For:
		walkStatement(v, n.Initialization)
		walkExpression(v, n.Condition)
		walkExpression(v, n.Increment)
		walkStatement(v, n.Statement)
		walkAttributes(v, n.Attributes())
	case *ast.Block:
		walkStatement(v, n.Statement)
	case *ast.Technique:
		for p := n.Passes; p != nil; p = p.NextPass {
			Walk(v, p)
		}
	case *ast.Pass:
		walkStateAssignments(v, n.StateAssignments)
	case *ast.Pipeline:
		walkStateAssignments(v, n.StateAssignments)
	case *ast.Stage:
		walkStatement(v, n.Statement)
		walkStatement(v, n.Inputs)
		walkStatement(v, n.Outputs)
	case *ast.Attribute:
		walkExpression(v, n.Argument)

	case *ast.Unary:
		walkExpression(v, n.Expression)
	case *ast.Binary:
		walkExpression(v, n.Lhs)
		walkExpression(v, n.Rhs)
	case *ast.Conditional:
		walkExpression(v, n.Condition)
		walkExpression(v, n.True)
		walkExpression(v, n.False)
	case *ast.Casting:
		walkExpression(v, n.Expression)
	case *ast.Literal, *ast.Identifier:
		// leaf expressions
	case *ast.Constructor:
		walkExpression(v, n.Argument)
	case *ast.MemberAccess:
		walkExpression(v, n.Object)
	case *ast.ArrayAccess:
		walkExpression(v, n.Array)
		walkExpression(v, n.Index)
	case *ast.FunctionCall:
		walkExpression(v, n.Argument)
	case *ast.SamplerState:
		walkStateAssignments(v, n.StateAssignments)
	}

	v.Visit(nil)
}

func walkStatement(v Visitor, s ast.Statement) {
	for ; s != nil && !isNilInterface(s); s = s.Next() {
		Walk(v, s)
	}
}

func walkExpression(v Visitor, e ast.Expression) {
	for ; e != nil; e = e.NextExpr() {
		Walk(v, e)
	}
}

func walkAttributes(v Visitor, a *ast.Attribute) {
	for ; a != nil; a = a.NextAttribute {
		Walk(v, a)
	}
}

func walkStateAssignments(v Visitor, s *ast.StateAssignment) {
	for ; s != nil; s = s.NextStateAssignment {
		Walk(v, s)
	}
}

// isNilStatement/isNilExpression guard against typed-nil interface values
// (e.g. a nil *ast.Declaration stored in a Statement variable), which are
// non-nil as an interface but must not be dereferenced.
func isNilStatement(node ast.Node) bool {
	s, ok := node.(ast.Statement)
	return ok && isNilInterface(s)
}

func isNilExpression(node ast.Node) bool {
	e, ok := node.(ast.Expression)
	return ok && isNilInterface(e)
}

func isNilInterface(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
