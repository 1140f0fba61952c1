package parser

import (
	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/intern"
	"github.com/laurentdupin/hlslparser/internal/token"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// binaryOpInfo describes one binary-operator token's priority and the
// ast.BinaryOp it produces.
type binaryOpInfo struct {
	op       ast.BinaryOp
	priority int
}

var binaryOps = map[token.Kind]binaryOpInfo{
	token.Kind('*'): {ast.BinaryMul, 9},
	token.Kind('/'): {ast.BinaryDiv, 9},
	token.Kind('+'): {ast.BinaryAdd, 8},
	token.Kind('-'): {ast.BinarySub, 8},
	token.Kind('<'): {ast.BinaryLess, 7},
	token.Kind('>'): {ast.BinaryGreater, 7},
	token.LessEqual:    {ast.BinaryLessEqual, 7},
	token.GreaterEqual: {ast.BinaryGreaterEqual, 7},
	token.EqualEqual: {ast.BinaryEqual, 6},
	token.NotEqual:   {ast.BinaryNotEqual, 6},
	token.Kind('&'): {ast.BinaryBitAnd, 5},
	token.Kind('^'): {ast.BinaryBitXor, 4},
	token.Kind('|'): {ast.BinaryBitOr, 3},
	token.AndAnd: {ast.BinaryAnd, 2},
	token.BarBar: {ast.BinaryOr, 1},
}

var assignOps = map[token.Kind]ast.BinaryOp{
	token.Kind('='):  ast.BinaryAssign,
	token.PlusEqual:  ast.BinaryAddAssign,
	token.MinusEqual: ast.BinarySubAssign,
	token.TimesEqual: ast.BinaryMulAssign,
	token.DivideEqual: ast.BinaryDivAssign,
}

// ParseExpression parses a full expression: a binary-expression tree, then
// an optional right-associative assignment tail.
func (p *Parser) ParseExpression() ast.Expression {
	lhs := p.parseBinaryExpression(1)
	if lhs == nil {
		return nil
	}
	if op, ok := assignOps[p.lex.Kind()]; ok {
		p.lex.Next()
		rhs := p.ParseExpression()
		if rhs == nil {
			return nil
		}
		return p.makeBinary(op, lhs, rhs)
	}
	return lhs
}

func (p *Parser) parseBinaryExpression(minPriority int) ast.Expression {
	lhs := p.parseUnaryExpression()
	if lhs == nil {
		return nil
	}
	for {
		if minPriority <= 1 && p.lex.Kind() == token.Kind('?') {
			lhs = p.parseConditional(lhs)
			if lhs == nil {
				return nil
			}
			continue
		}
		info, ok := binaryOps[p.lex.Kind()]
		if !ok || info.priority < minPriority {
			return lhs
		}
		p.lex.Next()
		rhs := p.parseBinaryExpression(info.priority + 1)
		if rhs == nil {
			return nil
		}
		lhs = p.makeBinary(info.op, lhs, rhs)
		if lhs == nil {
			return nil
		}
	}
}

func (p *Parser) parseConditional(cond ast.Expression) ast.Expression {
	p.lex.Next() // consume '?'
	trueExpr := p.ParseExpression()
	if trueExpr == nil {
		return nil
	}
	if !p.expect(token.Kind(':')) {
		return nil
	}
	falseExpr := p.parseBinaryExpression(1)
	if falseExpr == nil {
		return nil
	}
	file, _ := p.file()
	node, err := p.tree.NewConditional(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.Condition, node.True, node.False = cond, trueExpr, falseExpr
	resultType := trueExpr.Type()
	if !typesEqual(trueExpr.Type(), falseExpr.Type()) {
		if result, ok := types.BinaryOpResult(trueExpr.Type().Base, falseExpr.Type().Base); ok {
			resultType = types.Type{Base: result}
		}
	}
	node.SetType(resultType)
	return node
}

func typesEqual(a, b types.Type) bool {
	return a.Base == b.Base && a.Array == b.Array && a.TypeName == b.TypeName
}

// makeBinary builds a Binary node, typing it via the binary-op result
// matrix (or, for assignment forms, as the lhs's own type).
func (p *Parser) makeBinary(op ast.BinaryOp, lhs, rhs ast.Expression) ast.Expression {
	file, _ := p.file()
	node, err := p.tree.NewBinary(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.Op, node.Lhs, node.Rhs = op, lhs, rhs

	switch op {
	case ast.BinaryAssign, ast.BinaryAddAssign, ast.BinarySubAssign, ast.BinaryMulAssign, ast.BinaryDivAssign:
		node.SetType(lhs.Type())
		return node
	}

	if !types.IsNumeric(lhs.Type().Base) || !types.IsNumeric(rhs.Type().Base) {
		p.errorf("invalid operand types for binary operator")
		return nil
	}

	switch op {
	case ast.BinaryLess, ast.BinaryGreater, ast.BinaryLessEqual, ast.BinaryGreaterEqual,
		ast.BinaryEqual, ast.BinaryNotEqual, ast.BinaryAnd, ast.BinaryOr:
		width := types.Width(lhs.Type().Base)
		if rw := types.Width(rhs.Type().Base); rw > width {
			width = rw
		}
		node.SetType(types.Type{Base: types.VectorOfWidth(types.ClassBool, width)})
	default:
		result, ok := types.BinaryOpResult(lhs.Type().Base, rhs.Type().Base)
		if !ok {
			p.errorf("no matching binary operator for operand types")
			return nil
		}
		node.SetType(types.Type{Base: result})
	}
	return p.foldConstantBinary(node)
}

// literalAsFloat reads a Literal's value as a float64 regardless of which
// field actually holds it, for use by constant folding.
func literalAsFloat(lit *ast.Literal) float64 {
	if lit.BoolValue {
		return 1
	}
	switch lit.Type().Base {
	case types.Int, types.Uint:
		return float64(lit.IntValue)
	}
	return lit.FloatValue
}

// foldConstantBinary collapses a Binary node whose operands are both
// Literal scalars into a single Literal, when the operator has a constant
// value. Non-scalar, non-literal, or division-by-zero cases are left
// unfolded for the backend to emit as an expression.
func (p *Parser) foldConstantBinary(n *ast.Binary) ast.Expression {
	lhsLit, ok1 := n.Lhs.(*ast.Literal)
	rhsLit, ok2 := n.Rhs.(*ast.Literal)
	if !ok1 || !ok2 || !types.IsScalar(n.Lhs.Type().Base) || !types.IsScalar(n.Rhs.Type().Base) {
		return n
	}

	lf := literalAsFloat(lhsLit)
	rf := literalAsFloat(rhsLit)

	var fold float64
	var isBool, boolVal bool
	switch n.Op {
	case ast.BinaryAdd:
		fold = lf + rf
	case ast.BinarySub:
		fold = lf - rf
	case ast.BinaryMul:
		fold = lf * rf
	case ast.BinaryDiv:
		if rf == 0 {
			return n
		}
		fold = lf / rf
	case ast.BinaryLess:
		isBool, boolVal = true, lf < rf
	case ast.BinaryGreater:
		isBool, boolVal = true, lf > rf
	case ast.BinaryLessEqual:
		isBool, boolVal = true, lf <= rf
	case ast.BinaryGreaterEqual:
		isBool, boolVal = true, lf >= rf
	case ast.BinaryEqual:
		isBool, boolVal = true, lf == rf
	case ast.BinaryNotEqual:
		isBool, boolVal = true, lf != rf
	case ast.BinaryAnd:
		isBool, boolVal = true, lf != 0 && rf != 0
	case ast.BinaryOr:
		isBool, boolVal = true, lf != 0 || rf != 0
	default:
		return n
	}

	file, _ := p.file()
	lit, err := p.tree.NewLiteral(file, n.Line())
	if err != nil {
		return n
	}
	lit.SetType(n.Type())
	if isBool {
		lit.BoolValue = boolVal
	} else {
		switch n.Type().Base {
		case types.Int, types.Uint:
			lit.IntValue = int64(fold)
		default:
			lit.FloatValue = fold
		}
	}
	return lit
}

// foldConstantUnary collapses a Unary node over a Literal scalar operand
// into a single Literal, for the negate/plus/not operators.
func (p *Parser) foldConstantUnary(n *ast.Unary) ast.Expression {
	lit, ok := n.Expression.(*ast.Literal)
	if !ok || !types.IsScalar(n.Type().Base) {
		return n
	}
	switch n.Op {
	case ast.UnaryNegative, ast.UnaryPositive, ast.UnaryNot:
	default:
		return n
	}

	file, _ := p.file()
	out, err := p.tree.NewLiteral(file, n.Line())
	if err != nil {
		return n
	}
	out.SetType(n.Type())

	isIntFamily := n.Type().Base == types.Int || n.Type().Base == types.Uint
	switch n.Op {
	case ast.UnaryNegative:
		v := -literalAsFloat(lit)
		if isIntFamily {
			out.IntValue = int64(v)
		} else {
			out.FloatValue = v
		}
	case ast.UnaryPositive:
		if isIntFamily {
			out.IntValue = lit.IntValue
		} else {
			out.FloatValue = lit.FloatValue
		}
	case ast.UnaryNot:
		out.BoolValue = literalAsFloat(lit) == 0
	}
	return out
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	var op ast.UnaryOp
	hasOp := true
	switch p.lex.Kind() {
	case token.Kind('-'):
		op = ast.UnaryNegative
	case token.Kind('+'):
		op = ast.UnaryPositive
	case token.Kind('!'):
		op = ast.UnaryNot
	case token.Kind('~'):
		op = ast.UnaryBitNot
	case token.PlusPlus:
		op = ast.UnaryPreIncrement
	case token.MinusMinus:
		op = ast.UnaryPreDecrement
	default:
		hasOp = false
	}
	if hasOp {
		p.lex.Next()
		inner := p.parseUnaryExpression()
		if inner == nil {
			return nil
		}
		file, _ := p.file()
		node, err := p.tree.NewUnary(file, p.line())
		if err != nil {
			p.errorf("%s", err)
			return nil
		}
		node.Op, node.Expression = op, inner
		node.SetType(inner.Type())
		return p.foldConstantUnary(node)
	}
	return p.parsePostfixExpression()
}

func (p *Parser) parsePostfixExpression() ast.Expression {
	expr := p.parseTerminalExpression()
	if expr == nil {
		return nil
	}
	for {
		switch p.lex.Kind() {
		case token.PlusPlus, token.MinusMinus:
			op := ast.UnaryPostIncrement
			if p.lex.Kind() == token.MinusMinus {
				op = ast.UnaryPostDecrement
			}
			p.lex.Next()
			file, _ := p.file()
			node, err := p.tree.NewUnary(file, p.line())
			if err != nil {
				p.errorf("%s", err)
				return nil
			}
			node.Op, node.Expression = op, expr
			node.SetType(expr.Type())
			expr = node
		case token.Kind('.'):
			p.lex.Next()
			expr = p.parseMemberAccess(expr)
			if expr == nil {
				return nil
			}
		case token.Kind('['):
			p.lex.Next()
			expr = p.parseArrayAccess(expr)
			if expr == nil {
				return nil
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parseMemberAccess(object ast.Expression) ast.Expression {
	fieldName, ok := p.expectIdentifierValue()
	if !ok {
		return nil
	}
	file, _ := p.file()
	node, err := p.tree.NewMemberAccess(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.Object = object
	node.Field = p.intern(fieldName)

	objType := object.Type()
	if types.IsScalar(objType.Base) || types.IsVector(objType.Base) {
		if swizzleType, ok := swizzleResultType(objType.Base, fieldName); ok {
			node.Swizzle = true
			node.SetType(swizzleType)
			return node
		}
		p.errorf("invalid swizzle %q", fieldName)
		return nil
	}

	if objType.Base == types.UserDefined {
		if st := p.tree.Root.FindGlobalStruct(objType.TypeName); st != nil {
			for f := st.Field; f != nil; f = f.NextField {
				if f.Name == node.Field {
					node.SetType(f.Type)
					return node
				}
			}
		}
		p.errorf("unknown field %q", fieldName)
		return nil
	}

	p.errorf("member access on non-struct, non-vector type")
	return nil
}

var swizzleComponents = map[byte]int{'x': 0, 'y': 1, 'z': 2, 'w': 3, 'r': 0, 'g': 1, 'b': 2, 'a': 3}

func swizzleResultType(base types.BaseType, field string) (types.Type, bool) {
	if len(field) == 0 || len(field) > 4 {
		return types.Type{}, false
	}
	maxComponents := types.Width(base)
	if maxComponents == 0 {
		maxComponents = 1
	}
	for i := 0; i < len(field); i++ {
		idx, ok := swizzleComponents[field[i]]
		if !ok || idx >= maxComponents {
			return types.Type{}, false
		}
	}
	class, ok := types.ClassOf(types.ScalarBaseType[base])
	if !ok {
		return types.Type{}, false
	}
	result := types.VectorOfWidth(class, len(field))
	if result == types.Unknown {
		return types.Type{}, false
	}
	return types.Type{Base: result}, true
}

func (p *Parser) parseArrayAccess(array ast.Expression) ast.Expression {
	index := p.ParseExpression()
	if index == nil {
		return nil
	}
	if !p.expect(token.Kind(']')) {
		return nil
	}
	file, _ := p.file()
	node, err := p.tree.NewArrayAccess(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.Array, node.Index = array, index

	elemType := array.Type()
	if elemType.Array {
		elemType.Array = false
		elemType.ArraySize = nil
	} else if types.IsVector(elemType.Base) || types.IsMatrix(elemType.Base) {
		elemType = types.Type{Base: types.ScalarBaseType[elemType.Base]}
	}
	node.SetType(elemType)
	return node
}

func (p *Parser) parseTerminalExpression() ast.Expression {
	switch p.lex.Kind() {
	case token.IntLiteral:
		return p.parseIntLiteral()
	case token.FloatLiteral, token.HalfLiteral:
		return p.parseFloatLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBoolLiteral()
	case token.Kind('('):
		return p.parseParenOrCast()
	case token.SAMPLER_STATE:
		return p.parseSamplerStateExpr()
	}
	if isIdentifierLike(p.lex.Kind()) {
		return p.parseIdentifierOrCall()
	}
	p.errorf("unexpected token %s in expression", p.currentText())
	return nil
}

func (p *Parser) parseIntLiteral() ast.Expression {
	val := p.lex.IntValue()
	p.lex.Next()
	file, _ := p.file()
	node, err := p.tree.NewLiteral(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.IntValue = val
	node.SetType(types.Type{Base: types.Int, Flags: types.FlagConst})
	return node
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	val := p.lex.FloatValue()
	base := types.Float
	if p.lex.Kind() == token.HalfLiteral {
		base = types.Half
	}
	p.lex.Next()
	file, _ := p.file()
	node, err := p.tree.NewLiteral(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.FloatValue = val
	node.SetType(types.Type{Base: base, Flags: types.FlagConst})
	return node
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	val := p.lex.Kind() == token.TRUE
	p.lex.Next()
	file, _ := p.file()
	node, err := p.tree.NewLiteral(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.BoolValue = val
	node.SetType(types.Type{Base: types.Bool, Flags: types.FlagConst})
	return node
}

// parseParenOrCast disambiguates `(expr)` from `(type)expr`: if the
// parenthesized content is a type-name immediately followed by `)`, and
// what follows can start an expression, it's a cast.
func (p *Parser) parseParenOrCast() ast.Expression {
	p.lex.Next() // consume '('
	if p.looksLikeTypeStart() {
		save := p.lex.Save()
		if typ, ok := p.parseType(); ok && p.lex.Kind() == token.Kind(')') {
			p.lex.Next()
			inner := p.parseUnaryExpression()
			if inner != nil {
				file, _ := p.file()
				node, err := p.tree.NewCasting(file, p.line())
				if err != nil {
					p.errorf("%s", err)
					return nil
				}
				node.Expression = inner
				node.SetType(typ)
				return node
			}
		}
		p.lex.Restore(save)
	}
	inner := p.ParseExpression()
	if inner == nil {
		return nil
	}
	if !p.expect(token.Kind(')')) {
		return nil
	}
	return inner
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	name := p.lex.Identifier()

	if base, ok := baseTypeKeywords[name]; ok {
		save := p.lex.Save()
		p.lex.Next()
		if p.lex.Kind() == token.Kind('(') {
			return p.parseConstructor(base)
		}
		p.lex.Restore(save)
	}

	sym := p.intern(name)
	p.lex.Next()

	if p.lex.Kind() == token.Kind('(') {
		return p.parseFunctionCall(sym, name)
	}

	if typ, found, global := p.FindVariable(sym); found {
		file, _ := p.file()
		node, err := p.tree.NewIdentifier(file, p.line())
		if err != nil {
			p.errorf("%s", err)
			return nil
		}
		node.Name, node.Global = sym, global
		node.SetType(typ)
		return node
	}

	p.errorf("undeclared identifier %q", name)
	return nil
}

func (p *Parser) parseConstructor(base types.BaseType) ast.Expression {
	if !p.expect(token.Kind('(')) {
		return nil
	}
	file, _ := p.file()
	node, err := p.tree.NewConstructor(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	head, _ := p.parseExpressionList(token.Kind(')'))
	if !p.expect(token.Kind(')')) {
		return nil
	}
	node.Argument = head
	node.SetType(types.Type{Base: base})
	return node
}

// parseExpressionList parses a comma-separated list of expressions up to
// (not consuming) terminator, returning the head of the argument chain and
// the count.
func (p *Parser) parseExpressionList(terminator token.Kind) (ast.Expression, int) {
	if p.lex.Kind() == terminator {
		return nil, 0
	}
	var head, tail ast.Expression
	count := 0
	for {
		arg := p.ParseExpression()
		if arg == nil {
			return head, count
		}
		if head == nil {
			head = arg
		} else {
			tail.SetNextExpr(arg)
		}
		tail = arg
		count++
		if !p.accept(token.Kind(',')) {
			break
		}
	}
	return head, count
}

func (p *Parser) parseFunctionCall(sym intern.Symbol, name string) ast.Expression {
	if !p.expect(token.Kind('(')) {
		return nil
	}
	args, count := p.parseExpressionList(token.Kind(')'))
	if !p.expect(token.Kind(')')) {
		return nil
	}

	fn, retType, found := p.resolveOverload(sym, name, args)
	if !found {
		if !p.errored {
			p.errorf("no matching overload for %q", name)
		}
		return nil
	}

	file, _ := p.file()
	node, err := p.tree.NewFunctionCall(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	node.Function = fn
	node.Argument = args
	node.NumArguments = count
	node.SetType(retType)
	return node
}

// overloadCandidate is one ranked candidate in a call's overload set: a
// user function (isUser true) or an intrinsic signature.
type overloadCandidate struct {
	fn     *ast.Function
	sig    types.Signature
	isUser bool
	rank   int
}

// resolveOverload ranks every user-defined and intrinsic overload of name
// against the already-typed argument list, picking the single lowest-rank
// candidate. found is false on no match or a tie (ambiguous call); the
// latter also records an error since the caller cannot itself distinguish
// the two failure modes.
func (p *Parser) resolveOverload(sym intern.Symbol, name string, args ast.Expression) (*ast.Function, types.Type, bool) {
	argTypes := exprListTypes(args)

	var candidates []overloadCandidate
	for _, fn := range p.tree.Root.FindFunctionsByName(sym) {
		if fn.NumArguments != len(argTypes) {
			continue
		}
		if rank, ok := rankArguments(fn.Argument, argTypes); ok {
			candidates = append(candidates, overloadCandidate{fn: fn, isUser: true, rank: rank})
		}
	}
	for _, sig := range types.LookupIntrinsics(name) {
		if len(sig.ArgTypes) != len(argTypes) {
			continue
		}
		if rank, ok := rankSigArguments(sig.ArgTypes, argTypes); ok {
			candidates = append(candidates, overloadCandidate{sig: sig, rank: rank})
		}
	}

	if len(candidates) == 0 {
		return nil, types.Type{}, false
	}

	best := candidates[0]
	ambiguous := false
	for _, c := range candidates[1:] {
		switch {
		case c.rank < best.rank:
			best, ambiguous = c, false
		case c.rank == best.rank:
			ambiguous = true
		}
	}
	if ambiguous {
		p.errorf("ambiguous call to %q", name)
		return nil, types.Type{}, false
	}
	if best.isUser {
		return best.fn, best.fn.ReturnType, true
	}
	return nil, best.sig.ReturnType, true
}

func exprListTypes(head ast.Expression) []types.Type {
	var out []types.Type
	for e := head; e != nil; e = e.NextExpr() {
		out = append(out, e.Type())
	}
	return out
}

func rankArguments(head *ast.Argument, argTypes []types.Type) (int, bool) {
	total, i := 0, 0
	for a := head; a != nil; a = a.NextArgument {
		if i >= len(argTypes) {
			return 0, false
		}
		r, ok := types.ConversionRank(argTypes[i], a.Type, nil)
		if !ok {
			return 0, false
		}
		total += r
		i++
	}
	return total, true
}

func rankSigArguments(paramTypes, argTypes []types.Type) (int, bool) {
	total := 0
	for i, pt := range paramTypes {
		r, ok := types.ConversionRank(argTypes[i], pt, nil)
		if !ok {
			return 0, false
		}
		total += r
	}
	return total, true
}
