package transform

import (
	"fmt"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// DefaultAlphaThreshold is the alpha-test cutoff used when the caller
// does not supply one.
const DefaultAlphaThreshold = 0.5

// AlphaTest rewrites every `return` inside the named entry function so
// the pixel is discarded when its alpha channel falls below threshold,
// emulating fixed-function alpha testing on hardware whose pipeline
// dropped it. A float4/half4 return tests the .a component; a
// float/half return (already a scalar alpha) is tested directly; any
// other return type cannot carry an alpha channel and is an error.
func AlphaTest(tree *ast.Tree, entryName string, threshold float64) error {
	if tree.Root == nil {
		return fmt.Errorf("transform: alphatest: tree has no root")
	}
	root := tree.Root

	sym, err := tree.Interner.Add(entryName)
	if err != nil {
		return err
	}
	var fn *ast.Function
	for _, cand := range root.FindFunctionsByName(sym) {
		if cand.Statement != nil {
			fn = cand
		}
	}
	if fn == nil {
		return fmt.Errorf("transform: alphatest: entry function %q not found", entryName)
	}

	switch fn.ReturnType.Base {
	case types.Float4, types.Half4, types.Float, types.Half:
	default:
		return fmt.Errorf("transform: alphatest: entry function %q returns %v, which carries no alpha channel", entryName, fn.ReturnType.Base)
	}

	a := &alphaTester{tree: tree, fn: fn, threshold: threshold}
	fn.Statement = a.rewriteList(fn.Statement)
	return a.err
}

type alphaTester struct {
	tree      *ast.Tree
	fn        *ast.Function
	threshold float64
	tmpCount  int
	err       error
}

func (a *alphaTester) rewriteList(head ast.Statement) ast.Statement {
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

		switch n := s.(type) {
		case *ast.Return:
			for _, repl := range a.expandReturn(n) {
				link(repl)
			}
		case *ast.If:
			n.Statement = a.rewriteList(n.Statement)
			n.ElseStatement = a.rewriteList(n.ElseStatement)
			link(n)
		case *ast.For:
			n.Statement = a.rewriteList(n.Statement)
			link(n)
		case *ast.Block:
			n.Statement = a.rewriteList(n.Statement)
			link(n)
		default:
			link(s)
		}

		s = next
	}
	return newHead
}

// expandReturn replaces a single `return expr;` with a [declare tmp =
// expr; if (alpha(tmp) < threshold) discard; return tmp;] sequence, so
// expr's side effects run exactly once regardless of the alpha test.
func (a *alphaTester) expandReturn(ret *ast.Return) []ast.Statement {
	if a.err != nil {
		return []ast.Statement{ret}
	}
	if ret.Expression == nil {
		return []ast.Statement{ret}
	}

	file, line := ret.File(), ret.Line()
	name := fmt.Sprintf("alpha%d", a.tmpCount)
	a.tmpCount++

	sym, err := a.tree.Interner.Add(name)
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}
	decl, err := a.tree.NewDeclaration(file, line)
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}
	decl.Name = sym
	decl.Type = a.fn.ReturnType
	decl.Assignment = ret.Expression

	tmpRef := func() (*ast.Identifier, error) {
		id, err := a.tree.NewIdentifier(file, line)
		if err != nil {
			return nil, err
		}
		id.Name = sym
		id.SetType(a.fn.ReturnType)
		return id, nil
	}

	condRef, err := tmpRef()
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}

	var alpha ast.Expression = condRef
	if a.fn.ReturnType.Base == types.Float4 || a.fn.ReturnType.Base == types.Half4 {
		ma, err := a.tree.NewMemberAccess(file, line)
		if err != nil {
			a.err = err
			return []ast.Statement{ret}
		}
		fieldSym, err := a.tree.Interner.Add("a")
		if err != nil {
			a.err = err
			return []ast.Statement{ret}
		}
		ma.Object = condRef
		ma.Field = fieldSym
		ma.Swizzle = true
		scalarBase := types.Float
		if a.fn.ReturnType.Base == types.Half4 {
			scalarBase = types.Half
		}
		ma.SetType(types.Type{Base: scalarBase})
		alpha = ma
	}

	threshold, err := a.tree.NewLiteral(file, line)
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}
	threshold.FloatValue = a.threshold
	threshold.SetType(types.Type{Base: alpha.Type().Base})

	cond, err := a.tree.NewBinary(file, line)
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}
	cond.Op = ast.BinaryLess
	cond.Lhs = alpha
	cond.Rhs = threshold
	cond.SetType(types.Type{Base: types.Bool})

	discard, err := a.tree.NewDiscard(file, line)
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}

	ifStmt, err := a.tree.NewIf(file, line)
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}
	ifStmt.Condition = cond
	ifStmt.Statement = discard

	retRef, err := tmpRef()
	if err != nil {
		a.err = err
		return []ast.Statement{ret}
	}
	ret.Expression = retRef

	return []ast.Statement{decl, ifStmt, ret}
}
