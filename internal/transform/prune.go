package transform

import (
	"fmt"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// Prune hides every top-level statement and buffer field unreachable
// from the named entry-point functions (typically one or two: a vertex
// stage and a pixel stage). Reachability follows function calls,
// referenced global declarations, and user-defined types appearing in
// any reached type -- mirroring the reachability scan ast.NeedsFunction
// performs for a single function, generalized to a fixed point over the
// whole entry set and extended to also cover globals and structs.
func Prune(tree *ast.Tree, entryNames ...string) error {
	if tree.Root == nil {
		return fmt.Errorf("transform: prune: tree has no root")
	}
	root := tree.Root

	for s := root.Statement; s != nil; s = s.Next() {
		s.SetHidden(true)
		if buf, ok := s.(*ast.Buffer); ok {
			for f := buf.Field; f != nil; f = f.NextDeclaration {
				f.SetHidden(true)
			}
		}
	}

	p := &pruner{
		root:    root,
		funcs:   make(map[*ast.Function]bool),
		structs: make(map[*ast.Struct]bool),
		globals: make(map[*ast.Declaration]bool),
	}

	found := false
	for _, name := range entryNames {
		sym, err := tree.Interner.Add(name)
		if err != nil {
			return err
		}
		for _, fn := range root.FindFunctionsByName(sym) {
			found = true
			p.markFunction(fn)
		}
	}
	if !found {
		return fmt.Errorf("transform: prune: no entry function found among %v", entryNames)
	}

	// A buffer is visible iff any of its fields survived.
	for s := root.Statement; s != nil; s = s.Next() {
		buf, ok := s.(*ast.Buffer)
		if !ok {
			continue
		}
		for f := buf.Field; f != nil; f = f.NextDeclaration {
			if !f.Hidden() {
				buf.SetHidden(false)
				break
			}
		}
	}

	return nil
}

type pruner struct {
	root    *ast.Root
	funcs   map[*ast.Function]bool
	structs map[*ast.Struct]bool
	globals map[*ast.Declaration]bool
}

func (p *pruner) markFunction(fn *ast.Function) {
	if fn == nil || p.funcs[fn] {
		return
	}
	p.funcs[fn] = true
	fn.SetHidden(false)
	if fn.Forward != nil {
		p.markFunction(fn.Forward)
	}

	p.markType(fn.ReturnType)
	for a := fn.Argument; a != nil; a = a.NextArgument {
		p.markType(a.Type)
		p.markExpression(a.DefaultValue)
	}
	p.markStatement(fn.Statement)
}

// markType follows a user-defined type to its Struct declaration and
// marks every field's type in turn, and follows an array's size
// expression if present.
func (p *pruner) markType(t types.Type) {
	if t.Base == types.UserDefined {
		p.markStruct(p.root.FindGlobalStruct(t.TypeName))
	}
	if expr, ok := t.ArraySize.(ast.Expression); ok {
		p.markExpression(expr)
	}
}

func (p *pruner) markStruct(st *ast.Struct) {
	if st == nil || p.structs[st] {
		return
	}
	p.structs[st] = true
	st.SetHidden(false)
	for f := st.Field; f != nil; f = f.NextField {
		p.markType(f.Type)
	}
}

func (p *pruner) markStatement(s ast.Statement) {
	for ; s != nil; s = s.Next() {
		switch n := s.(type) {
		case *ast.Declaration:
			p.markType(n.Type)
			p.markExpression(n.Assignment)
		case *ast.ExpressionStatement:
			p.markExpression(n.Expression)
		case *ast.Return:
			p.markExpression(n.Expression)
		case *ast.Discard, *ast.Break, *ast.Continue:
		case *ast.If:
			p.markExpression(n.Condition)
			p.markStatement(n.Statement)
			p.markStatement(n.ElseStatement)
		case *ast.For:
			p.markStatement(n.Initialization)
			p.markExpression(n.Condition)
			p.markExpression(n.Increment)
			p.markStatement(n.Statement)
		case *ast.Block:
			p.markStatement(n.Statement)
		}
	}
}

func (p *pruner) markExpression(e ast.Expression) {
	for ; e != nil; e = e.NextExpr() {
		p.markType(e.Type())
		switch n := e.(type) {
		case *ast.FunctionCall:
			p.markFunction(n.Function)
			p.markExpression(n.Argument)
		case *ast.Identifier:
			p.markIdentifier(n)
		case *ast.Unary:
			p.markExpression(n.Expression)
		case *ast.Binary:
			p.markExpression(n.Lhs)
			p.markExpression(n.Rhs)
		case *ast.Conditional:
			p.markExpression(n.Condition)
			p.markExpression(n.True)
			p.markExpression(n.False)
		case *ast.Casting:
			p.markExpression(n.Expression)
		case *ast.Constructor:
			p.markExpression(n.Argument)
		case *ast.MemberAccess:
			p.markExpression(n.Object)
		case *ast.ArrayAccess:
			p.markExpression(n.Array)
			p.markExpression(n.Index)
		}
	}
}

// markIdentifier marks the global declaration an identifier resolves to,
// if any (locals aren't top-level statements and need no marking).
func (p *pruner) markIdentifier(id *ast.Identifier) {
	if !id.Global {
		return
	}
	decl := p.root.FindGlobalDeclaration(id.Name)
	if decl == nil {
		return
	}
	if p.globals[decl] {
		return
	}
	p.globals[decl] = true
	// Each variable in a comma-declared group carries its own Hidden bit,
	// so unhiding decl does not implicitly unhide its siblings.
	decl.SetHidden(false)
	if decl.Buffer != nil {
		// handled by the buffer-visibility pass after markFunction returns.
		return
	}
	p.markType(decl.Type)
	p.markExpression(decl.Assignment)
}
