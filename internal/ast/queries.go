package ast

import "github.com/laurentdupin/hlslparser/internal/intern"

// Statements walks the Root's top-level statement chain.
func (r *Root) Statements() []Statement {
	var out []Statement
	for s := r.Statement; s != nil; s = s.Next() {
		out = append(out, s)
	}
	return out
}

// FindFunction returns the last Function statement named name whose
// argument count matches numArguments, or nil. Matching the last one
// mirrors declaration-order overload scanning: later redeclarations (a
// forward declaration followed by its definition) take precedence.
func (r *Root) FindFunction(name intern.Symbol, numArguments int) *Function {
	var found *Function
	for s := r.Statement; s != nil; s = s.Next() {
		if fn, ok := s.(*Function); ok && fn.Name == name && fn.NumArguments == numArguments {
			found = fn
		}
	}
	return found
}

// FindFunctionsByName returns every Function statement named name, in
// declaration order, regardless of arity -- used by overload resolution
// to build the candidate set before ranking by conversion cost.
func (r *Root) FindFunctionsByName(name intern.Symbol) []*Function {
	var out []*Function
	for s := r.Statement; s != nil; s = s.Next() {
		if fn, ok := s.(*Function); ok && fn.Name == name {
			out = append(out, fn)
		}
	}
	return out
}

// FindGlobalDeclaration returns the global Declaration named name, or
// nil. Top-level multi-variable declarations are searched via
// NextDeclaration, and cbuffer/tbuffer fields are searched too; a field
// found this way has Buffer set to the buffer that contains it.
func (r *Root) FindGlobalDeclaration(name intern.Symbol) *Declaration {
	for s := r.Statement; s != nil; s = s.Next() {
		var head *Declaration
		switch n := s.(type) {
		case *Declaration:
			head = n
		case *Buffer:
			head = n.Field
		}
		for d := head; d != nil; d = d.NextDeclaration {
			if d.Name == name {
				return d
			}
		}
	}
	return nil
}

// FindGlobalStruct returns the top-level Struct named name, or nil.
func (r *Root) FindGlobalStruct(name intern.Symbol) *Struct {
	for s := r.Statement; s != nil; s = s.Next() {
		if st, ok := s.(*Struct); ok && st.Name == name {
			return st
		}
	}
	return nil
}

// FindBuffer returns the top-level Buffer named name, or nil.
func (r *Root) FindBuffer(name intern.Symbol) *Buffer {
	for s := r.Statement; s != nil; s = s.Next() {
		if buf, ok := s.(*Buffer); ok && buf.Name == name {
			return buf
		}
	}
	return nil
}

// FindTechnique returns the top-level Technique named name, or nil.
func (r *Root) FindTechnique(name intern.Symbol) *Technique {
	for s := r.Statement; s != nil; s = s.Next() {
		if tq, ok := s.(*Technique); ok && tq.Name == name {
			return tq
		}
	}
	return nil
}

// FindPipeline returns the top-level Pipeline named name, or nil.
func (r *Root) FindPipeline(name intern.Symbol) *Pipeline {
	for s := r.Statement; s != nil; s = s.Next() {
		if pl, ok := s.(*Pipeline); ok && pl.Name == name {
			return pl
		}
	}
	return nil
}

// FindStage returns the top-level Stage named name, or nil.
func (r *Root) FindStage(name intern.Symbol) *Stage {
	for s := r.Statement; s != nil; s = s.Next() {
		if st, ok := s.(*Stage); ok && st.Name == name {
			return st
		}
	}
	return nil
}

// NeedsFunction reports whether any call reachable from a non-hidden
// top-level statement invokes fn. The scan is rooted at the bodies of
// non-hidden functions and the initializers of non-hidden global
// declarations, and follows FunctionCall nodes transitively into the
// called functions' bodies.
func (r *Root) NeedsFunction(fn *Function) bool {
	visited := make(map[*Function]bool)
	var visitStatement func(Statement) bool
	var visitExpression func(Expression) bool

	visitExpression = func(e Expression) bool {
		for ; e != nil; e = e.NextExpr() {
			switch n := e.(type) {
			case *FunctionCall:
				if n.Function == fn {
					return true
				}
				if n.Function != nil && !visited[n.Function] {
					visited[n.Function] = true
					if visitStatement(n.Function.Statement) {
						return true
					}
				}
				if visitExpression(n.Argument) {
					return true
				}
			case *Unary:
				if visitExpression(n.Expression) {
					return true
				}
			case *Binary:
				if visitExpression(n.Lhs) || visitExpression(n.Rhs) {
					return true
				}
			case *Conditional:
				if visitExpression(n.Condition) || visitExpression(n.True) || visitExpression(n.False) {
					return true
				}
			case *Casting:
				if visitExpression(n.Expression) {
					return true
				}
			case *Constructor:
				if visitExpression(n.Argument) {
					return true
				}
			case *MemberAccess:
				if visitExpression(n.Object) {
					return true
				}
			case *ArrayAccess:
				if visitExpression(n.Array) || visitExpression(n.Index) {
					return true
				}
			}
		}
		return false
	}

	visitStatement = func(s Statement) bool {
		for ; s != nil; s = s.Next() {
			switch n := s.(type) {
			case *Declaration:
				if visitExpression(n.Assignment) {
					return true
				}
			case *ExpressionStatement:
				if visitExpression(n.Expression) {
					return true
				}
			case *Return:
				if visitExpression(n.Expression) {
					return true
				}
			case *If:
				if visitExpression(n.Condition) {
					return true
				}
				if visitStatement(n.Statement) || visitStatement(n.ElseStatement) {
					return true
				}
			case *For:
				if visitExpression(n.Condition) || visitExpression(n.Increment) {
					return true
				}
				if visitStatement(n.Statement) {
					return true
				}
			case *Block:
				if visitStatement(n.Statement) {
					return true
				}
			}
		}
		return false
	}

	for s := r.Statement; s != nil; s = s.Next() {
		if s.Hidden() {
			continue
		}
		switch n := s.(type) {
		case *Function:
			if visitStatement(n.Statement) {
				return true
			}
		case *Declaration:
			for d := n; d != nil; d = d.NextDeclaration {
				if visitExpression(d.Assignment) {
					return true
				}
			}
		}
	}
	return false
}

// GetExpressionValueInt attempts to read an already-constant-folded
// expression as an integer, returning ok=false if expr is not a Literal.
// A true BoolValue reads as 1; any other Literal yields its IntValue,
// whatever its type.
func GetExpressionValueInt(expr Expression) (int64, bool) {
	lit, ok := expr.(*Literal)
	if !ok {
		return 0, false
	}
	if lit.BoolValue {
		return 1, true
	}
	return lit.IntValue, true
}

// GetExpressionValueFloat4 attempts to read an already-constant-folded
// expression as a 4-component float vector: a Literal broadcasts to all
// four components; a Constructor broadcasts its argument list, repeating
// the last value to fill remaining components (HLSL constructor padding).
func GetExpressionValueFloat4(expr Expression) (x, y, z, w float64, ok bool) {
	switch n := expr.(type) {
	case *Literal:
		v := n.FloatValue
		if n.BoolValue {
			v = 1
		} else if n.IntValue != 0 && n.FloatValue == 0 {
			v = float64(n.IntValue)
		}
		return v, v, v, v, true
	case *Constructor:
		values := make([]float64, 0, 4)
		for arg := n.Argument; arg != nil; arg = arg.NextExpr() {
			lit, isLit := arg.(*Literal)
			if !isLit {
				return 0, 0, 0, 0, false
			}
			v := lit.FloatValue
			if lit.BoolValue {
				v = 1
			} else if lit.IntValue != 0 && lit.FloatValue == 0 {
				v = float64(lit.IntValue)
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			return 0, 0, 0, 0, false
		}
		for len(values) < 4 {
			values = append(values, values[len(values)-1])
		}
		return values[0], values[1], values[2], values[3], true
	}
	return 0, 0, 0, 0, false
}
