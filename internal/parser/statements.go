package parser

import (
	"strings"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/intern"
	"github.com/laurentdupin/hlslparser/internal/token"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// parseTopLevel recognizes one top-level construct: a struct, a
// cbuffer/tbuffer block, a technique, a pipeline, a stage, a namespace
// (flattened -- the language has no runtime notion of namespaces), or a
// function declaration/definition or a global variable declaration, which
// share a type-then-name prefix.
func (p *Parser) parseTopLevel() ast.Statement {
	attrs := p.parseAttributes()

	var s ast.Statement
	switch p.lex.Kind() {
	case token.EOF:
		return nil
	case token.STRUCT:
		s = p.parseStruct()
	case token.CBUFFER, token.TBUFFER:
		s = p.parseBuffer()
	case token.TECHNIQUE:
		s = p.parseTechnique()
	case token.PIPELINE:
		s = p.parsePipeline()
	case token.STAGE:
		s = p.parseStage()
	case token.NAMESPACE:
		s = p.parseNamespace()
	default:
		if !p.looksLikeTypeStart() {
			p.errorf("expected declaration near %s", p.currentText())
			return nil
		}
		s = p.parseFunctionOrDeclaration()
	}
	if s != nil {
		s.SetAttributes(attrs)
	}
	return s
}

// parseAttributes parses zero or more `[name]` / `[name(arg)]` annotation
// blocks preceding a statement or function.
func (p *Parser) parseAttributes() *ast.Attribute {
	var head, tail *ast.Attribute
	for p.lex.Kind() == token.Kind('[') {
		p.lex.Next()
		name, ok := p.expectIdentifierValue()
		if !ok {
			return head
		}
		file, _ := p.file()
		attr, err := p.tree.NewAttribute(file, p.line())
		if err != nil {
			p.errorf("%s", err)
			return head
		}
		attr.AttributeType = attributeTypeOf(name)
		if p.accept(token.Kind('(')) {
			attr.Argument = p.ParseExpression()
			p.expect(token.Kind(')'))
		}
		p.expect(token.Kind(']'))
		if head == nil {
			head = attr
		} else {
			tail.NextAttribute = attr
		}
		tail = attr
	}
	return head
}

func attributeTypeOf(name string) ast.AttributeType {
	switch strings.ToLower(name) {
	case "unroll":
		return ast.AttributeUnroll
	case "flatten":
		return ast.AttributeFlatten
	case "branch":
		return ast.AttributeBranch
	case "fastopt", "nofastmath":
		return ast.AttributeNoFastMath
	default:
		return ast.AttributeUnknown
	}
}

// parseSuffix parses a trailing `: semantic` or `: register(rN[, spaceN])`
// chain shared by declarations, struct fields, arguments, and function
// return values. A semantic spelled with a leading "SV_" (case
// insensitive) is classified as a system-value semantic.
func (p *Parser) parseSuffix() (semantic, svSemantic, register, space intern.Symbol) {
	for p.lex.Kind() == token.Kind(':') {
		p.lex.Next()
		if p.lex.Kind() == token.REGISTER {
			p.lex.Next()
			p.expect(token.Kind('('))
			if isIdentifierLike(p.lex.Kind()) {
				register = p.intern(p.lex.Identifier())
				p.lex.Next()
			}
			if p.accept(token.Kind(',')) {
				if isIdentifierLike(p.lex.Kind()) {
					space = p.intern(p.lex.Identifier())
					p.lex.Next()
				}
			}
			p.expect(token.Kind(')'))
			continue
		}
		if isIdentifierLike(p.lex.Kind()) {
			name := p.lex.Identifier()
			sym := p.intern(name)
			if strings.HasPrefix(strings.ToUpper(name), "SV_") {
				svSemantic = sym
			} else {
				semantic = sym
			}
			p.lex.Next()
			continue
		}
		p.errorf("expected semantic or register near %s", p.currentText())
		break
	}
	return
}

// parseStruct parses `struct Name { type field [, field]* ; ... }`.
func (p *Parser) parseStruct() ast.Statement {
	p.lex.Next() // 'struct'
	name, ok := p.expectIdentifierValue()
	if !ok {
		return nil
	}
	file, _ := p.file()
	st, err := p.tree.NewStruct(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	st.Name = p.intern(name)

	if !p.expect(token.Kind('{')) {
		return st
	}

	var head, tail *ast.StructField
	for p.lex.Kind() != token.Kind('}') && p.lex.Kind() != token.EOF && !p.errored {
		typ, ok := p.parseType()
		if !ok {
			p.errorf("expected type near %s", p.currentText())
			break
		}
		for {
			fname, ok := p.expectIdentifierValue()
			if !ok {
				break
			}
			ffile, _ := p.file()
			field, err := p.tree.NewStructField(ffile, p.line())
			if err != nil {
				p.errorf("%s", err)
				break
			}
			field.Name = p.intern(fname)
			field.Type = typ
			if p.accept(token.Kind('[')) {
				field.Type.Array = true
				if p.lex.Kind() != token.Kind(']') {
					field.Type.ArraySize = p.ParseExpression()
				} else {
					p.errorf("unsized array only allowed in argument position")
				}
				p.expect(token.Kind(']'))
			}
			field.Semantic, field.SVSemantic, _, _ = p.parseSuffix()
			if head == nil {
				head = field
			} else {
				tail.NextField = field
			}
			tail = field
			if !p.accept(token.Kind(',')) {
				break
			}
		}
		p.expect(token.Kind(';'))
	}
	st.Field = head
	p.expect(token.Kind('}'))
	p.accept(token.Kind(';'))
	return st
}

// parseBuffer parses a `cbuffer`/`tbuffer` block: a named group of
// uniform declarations, optionally bound to a register.
func (p *Parser) parseBuffer() ast.Statement {
	isTexture := p.lex.Kind() == token.TBUFFER
	p.lex.Next()
	name, ok := p.expectIdentifierValue()
	if !ok {
		return nil
	}
	file, _ := p.file()
	buf, err := p.tree.NewBuffer(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	buf.Name = p.intern(name)
	buf.IsTextureBuffer = isTexture
	_, _, buf.RegisterName, buf.SpaceName = p.parseSuffix()

	if !p.expect(token.Kind('{')) {
		return buf
	}

	var head, tail *ast.Declaration
	for p.lex.Kind() != token.Kind('}') && p.lex.Kind() != token.EOF && !p.errored {
		line := p.parseBufferField()
		if line == nil {
			break
		}
		for cur := line; cur != nil; cur = cur.NextDeclaration {
			cur.Buffer = buf
		}
		if head == nil {
			head = line
		} else {
			tail.NextDeclaration = line
		}
		tail = line
		for tail.NextDeclaration != nil {
			tail = tail.NextDeclaration
		}
	}
	buf.Field = head
	p.expect(token.Kind('}'))
	p.accept(token.Kind(';'))
	return buf
}

func (p *Parser) parseBufferField() *ast.Declaration {
	typ, ok := p.parseType()
	if !ok {
		p.errorf("expected declaration near %s", p.currentText())
		return nil
	}
	name, ok := p.expectIdentifierValue()
	if !ok {
		return nil
	}
	head := p.parseDeclaratorList(typ, p.intern(name))
	p.expect(token.Kind(';'))
	return head
}

// parseDeclarator parses one variable name's array suffix, semantic, and
// initializer, given its already-parsed type; it also registers the
// binding in the current scope.
func (p *Parser) parseDeclarator(typ types.Type, name intern.Symbol) *ast.Declaration {
	file, _ := p.file()
	d, err := p.tree.NewDeclaration(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	d.Name = name
	d.Type = typ

	if p.accept(token.Kind('[')) {
		d.Type.Array = true
		if p.lex.Kind() != token.Kind(']') {
			d.Type.ArraySize = p.ParseExpression()
		} else {
			p.errorf("unsized array only allowed in argument position")
		}
		p.expect(token.Kind(']'))
	}

	sem, svSem, reg, space := p.parseSuffix()
	if svSem != intern.NoSymbol {
		sem = svSem
	}
	d.Semantic, d.RegisterName, d.SpaceName = sem, reg, space

	if p.accept(token.Kind('=')) {
		d.Assignment = p.ParseExpression()
	}

	p.DeclareVariable(d.Name, d.Type)
	return d
}

// parseDeclaratorList parses the comma-separated tail of one declaration
// statement, given the first name already consumed.
func (p *Parser) parseDeclaratorList(typ types.Type, firstName intern.Symbol) *ast.Declaration {
	head := p.parseDeclarator(typ, firstName)
	if head == nil {
		return nil
	}
	tail := head
	for p.accept(token.Kind(',')) {
		name, ok := p.expectIdentifierValue()
		if !ok {
			break
		}
		d := p.parseDeclarator(typ, p.intern(name))
		if d == nil {
			break
		}
		tail.NextDeclaration = d
		tail = d
	}
	return head
}

// parseFunctionOrDeclaration parses the shared `type name` prefix, then
// dispatches on whether `(` follows to a function or a global variable
// declaration.
func (p *Parser) parseFunctionOrDeclaration() ast.Statement {
	typ, ok := p.parseType()
	if !ok {
		p.errorf("expected declaration near %s", p.currentText())
		return nil
	}
	name, ok := p.expectIdentifierValue()
	if !ok {
		return nil
	}
	sym := p.intern(name)

	if p.lex.Kind() == token.Kind('(') {
		return p.parseFunctionTail(typ, sym, name)
	}

	head := p.parseDeclaratorList(typ, sym)
	p.expect(token.Kind(';'))
	return head
}

// parseFunctionTail parses a function's parameter list, semantic,
// forward/definition linkage, and body (or terminating `;` for a forward
// declaration).
func (p *Parser) parseFunctionTail(retType types.Type, sym intern.Symbol, name string) ast.Statement {
	file, _ := p.file()
	fn, err := p.tree.NewFunction(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	fn.Name = sym
	fn.ReturnType = retType

	p.BeginScope()
	fn.Argument = p.parseArgumentList()

	for a := fn.Argument; a != nil; a = a.NextArgument {
		fn.NumArguments++
		if a.Modifier == ast.ModifierOut || a.Modifier == ast.ModifierInOut {
			fn.NumOutputArguments++
		}
	}

	fn.Semantic, fn.SVSemantic, _, _ = p.parseSuffix()

	hasBody := p.lex.Kind() != token.Kind(';')
	if existing := p.tree.Root.FindFunction(sym, fn.NumArguments); existing != nil {
		switch {
		case !hasBody:
			// A repeated forward declaration; leave as its own prototype.
		case existing.Statement != nil:
			p.errorf("redefinition of function %q", name)
		default:
			fn.Forward = existing
		}
	}

	if !hasBody {
		p.accept(token.Kind(';'))
		p.EndScope()
		return fn
	}

	fn.Statement = p.parseBlockBody()
	p.EndScope()
	return fn
}

// parseArgumentList parses a parenthesized, comma-separated parameter
// list.
func (p *Parser) parseArgumentList() *ast.Argument {
	if !p.expect(token.Kind('(')) {
		return nil
	}
	var head, tail *ast.Argument
	for p.lex.Kind() != token.Kind(')') && p.lex.Kind() != token.EOF && !p.errored {
		modifier := ast.ModifierNone
		for {
			switch p.lex.Kind() {
			case token.IN:
				modifier = ast.ModifierIn
			case token.OUT:
				modifier = ast.ModifierOut
			case token.INOUT:
				modifier = ast.ModifierInOut
			case token.UNIFORM:
				modifier = ast.ModifierUniform
			default:
				goto doneModifiers
			}
			p.lex.Next()
		}
	doneModifiers:

		typ, ok := p.parseType()
		if !ok {
			p.errorf("expected parameter type near %s", p.currentText())
			break
		}
		name, ok := p.expectIdentifierValue()
		if !ok {
			break
		}
		file, _ := p.file()
		arg, err := p.tree.NewArgument(file, p.line())
		if err != nil {
			p.errorf("%s", err)
			break
		}
		arg.Name = p.intern(name)
		arg.Modifier = modifier
		arg.Type = typ

		if p.accept(token.Kind('[')) {
			arg.Type.Array = true
			if p.lex.Kind() != token.Kind(']') {
				arg.Type.ArraySize = p.ParseExpression()
			} // unsized array: allowed here, left nil.
			p.expect(token.Kind(']'))
		}

		arg.Semantic, arg.SVSemantic, _, _ = p.parseSuffix()
		if p.accept(token.Kind('=')) {
			arg.DefaultValue = p.ParseExpression()
		}

		p.DeclareVariable(arg.Name, arg.Type)

		if head == nil {
			head = arg
		} else {
			tail.NextArgument = arg
		}
		tail = arg

		if !p.accept(token.Kind(',')) {
			break
		}
	}
	p.expect(token.Kind(')'))
	return head
}

// parseBlockBody parses a brace-delimited statement list, consuming both
// braces.
func (p *Parser) parseBlockBody() ast.Statement {
	if !p.expect(token.Kind('{')) {
		return nil
	}
	stmts := p.parseStatementList(token.Kind('}'))
	p.expect(token.Kind('}'))
	return stmts
}

// parseStatementList parses statements until term is reached, chaining
// them via the generic sibling link. A multi-variable local declaration
// counts as one slot in this chain, exactly like a top-level declaration
// group (see appendStatement) -- its members are reached through
// Declaration.NextDeclaration.
func (p *Parser) parseStatementList(term token.Kind) ast.Statement {
	var head, tail ast.Statement
	for p.lex.Kind() != term && p.lex.Kind() != token.EOF && !p.errored {
		if p.accept(token.Kind(';')) {
			continue // empty statement
		}
		s := p.parseStatement()
		if s == nil {
			break
		}
		if head == nil {
			head = s
		} else {
			tail.SetNext(s)
		}
		tail = s
	}
	return head
}

// parseStatement parses one block-level statement.
func (p *Parser) parseStatement() ast.Statement {
	attrs := p.parseAttributes()

	var s ast.Statement
	switch p.lex.Kind() {
	case token.Kind('{'):
		s = p.parseBlockStatement()
	case token.IF:
		s = p.parseIfStatement()
	case token.FOR:
		s = p.parseForStatement()
	case token.RETURN:
		s = p.parseReturnStatement()
	case token.DISCARD:
		s = p.parseDiscardStatement()
	case token.BREAK:
		s = p.parseBreakStatement()
	case token.CONTINUE:
		s = p.parseContinueStatement()
	default:
		if p.looksLikeTypeStart() {
			s = p.parseLocalDeclarationStatement()
		} else {
			s = p.parseExpressionStatement()
		}
	}
	if s != nil {
		s.SetAttributes(attrs)
	}
	return s
}

func (p *Parser) parseBlockStatement() ast.Statement {
	file, _ := p.file()
	blk, err := p.tree.NewBlock(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	p.BeginScope()
	blk.Statement = p.parseBlockBody()
	p.EndScope()
	return blk
}

func (p *Parser) parseIfStatement() ast.Statement {
	file, _ := p.file()
	n, err := p.tree.NewIf(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	p.lex.Next() // 'if'
	p.expect(token.Kind('('))
	n.Condition = p.ParseExpression()
	p.expect(token.Kind(')'))
	n.Statement = p.parseStatement()
	if p.lex.Kind() == token.ELSE {
		p.lex.Next()
		n.ElseStatement = p.parseStatement()
	}
	return n
}

func (p *Parser) parseForStatement() ast.Statement {
	file, _ := p.file()
	n, err := p.tree.NewFor(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	p.lex.Next() // 'for'
	p.expect(token.Kind('('))
	p.BeginScope()

	if p.looksLikeTypeStart() {
		typ, ok := p.parseType()
		if ok {
			name, ok2 := p.expectIdentifierValue()
			if ok2 {
				n.Initialization = p.parseDeclaratorList(typ, p.intern(name))
			}
		}
	}
	p.expect(token.Kind(';'))

	if p.lex.Kind() != token.Kind(';') {
		n.Condition = p.ParseExpression()
	}
	p.expect(token.Kind(';'))

	if p.lex.Kind() != token.Kind(')') {
		n.Increment = p.ParseExpression()
	}
	p.expect(token.Kind(')'))

	n.Statement = p.parseStatement()
	p.EndScope()
	return n
}

func (p *Parser) parseReturnStatement() ast.Statement {
	file, _ := p.file()
	n, err := p.tree.NewReturn(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	p.lex.Next() // 'return'
	if p.lex.Kind() != token.Kind(';') {
		n.Expression = p.ParseExpression()
	}
	p.expect(token.Kind(';'))
	return n
}

func (p *Parser) parseDiscardStatement() ast.Statement {
	file, _ := p.file()
	n, err := p.tree.NewDiscard(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	p.lex.Next()
	p.expect(token.Kind(';'))
	return n
}

func (p *Parser) parseBreakStatement() ast.Statement {
	file, _ := p.file()
	n, err := p.tree.NewBreak(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	p.lex.Next()
	p.expect(token.Kind(';'))
	return n
}

func (p *Parser) parseContinueStatement() ast.Statement {
	file, _ := p.file()
	n, err := p.tree.NewContinue(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	p.lex.Next()
	p.expect(token.Kind(';'))
	return n
}

func (p *Parser) parseLocalDeclarationStatement() ast.Statement {
	typ, ok := p.parseType()
	if !ok {
		p.errorf("expected declaration near %s", p.currentText())
		return nil
	}
	name, ok := p.expectIdentifierValue()
	if !ok {
		return nil
	}
	head := p.parseDeclaratorList(typ, p.intern(name))
	p.expect(token.Kind(';'))
	return head
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.ParseExpression()
	p.expect(token.Kind(';'))
	if expr == nil {
		return nil
	}
	file, _ := p.file()
	s, err := p.tree.NewExpressionStatement(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	s.Expression = expr
	return s
}

// parseStateAssignments parses `name = value;` lines until term, used by
// both effect-framework blocks (pass/pipeline) and the `sampler_state`
// expression form.
func (p *Parser) parseStateAssignments(term token.Kind) *ast.StateAssignment {
	var head, tail *ast.StateAssignment
	for p.lex.Kind() != term && p.lex.Kind() != token.EOF && !p.errored {
		name, ok := p.expectIdentifierValue()
		if !ok {
			break
		}
		if p.accept(token.Kind('[')) {
			if p.lex.Kind() == token.IntLiteral {
				p.lex.Next()
			}
			p.expect(token.Kind(']'))
		}
		if !p.expect(token.Kind('=')) {
			break
		}
		file, _ := p.file()
		sa, err := p.tree.NewStateAssignment(file, p.line())
		if err != nil {
			p.errorf("%s", err)
			break
		}
		sa.StateName = p.intern(name)

		switch p.lex.Kind() {
		case token.IntLiteral:
			sa.IntValue = p.lex.IntValue()
			p.lex.Next()
		case token.FloatLiteral, token.HalfLiteral:
			sa.FloatValue = p.lex.FloatValue()
			p.lex.Next()
		case token.TRUE:
			sa.IntValue = 1
			p.lex.Next()
		case token.FALSE:
			sa.IntValue = 0
			p.lex.Next()
		default:
			if isIdentifierLike(p.lex.Kind()) {
				sa.StringValue = p.intern(p.lex.Identifier())
				p.lex.Next()
				if p.accept(token.Kind('(')) {
					// `Name(args)`-style call value: skip to the
					// matching close paren.
					depth := 1
					for depth > 0 && p.lex.Kind() != token.EOF {
						switch p.lex.Kind() {
						case token.Kind('('):
							depth++
						case token.Kind(')'):
							depth--
						}
						p.lex.Next()
					}
				}
			} else {
				p.errorf("expected state value near %s", p.currentText())
			}
		}
		p.expect(token.Kind(';'))

		if head == nil {
			head = sa
		} else {
			tail.NextStateAssignment = sa
		}
		tail = sa
	}
	return head
}

func (p *Parser) parsePass() *ast.Pass {
	p.lex.Next() // 'pass'
	file, _ := p.file()
	pass, err := p.tree.NewPass(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	if p.lex.Kind() == token.Identifier {
		pass.Name = p.intern(p.lex.Identifier())
		p.lex.Next()
	}
	if !p.expect(token.Kind('{')) {
		return pass
	}
	pass.StateAssignments = p.parseStateAssignments(token.Kind('}'))
	for sa := pass.StateAssignments; sa != nil; sa = sa.NextStateAssignment {
		pass.NumStateAssignments++
	}
	p.expect(token.Kind('}'))
	return pass
}

func (p *Parser) parseTechnique() ast.Statement {
	p.lex.Next() // 'technique'
	file, _ := p.file()
	tq, err := p.tree.NewTechnique(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	if p.lex.Kind() == token.Identifier {
		tq.Name = p.intern(p.lex.Identifier())
		p.lex.Next()
	}
	if !p.expect(token.Kind('{')) {
		return tq
	}

	var head, tail *ast.Pass
	for p.lex.Kind() == token.PASS {
		pass := p.parsePass()
		if pass == nil {
			break
		}
		if head == nil {
			head = pass
		} else {
			tail.NextPass = pass
		}
		tail = pass
		tq.NumPasses++
	}
	tq.Passes = head
	p.expect(token.Kind('}'))
	p.accept(token.Kind(';'))
	return tq
}

func (p *Parser) parsePipeline() ast.Statement {
	p.lex.Next() // 'pipeline'
	file, _ := p.file()
	pl, err := p.tree.NewPipeline(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	if p.lex.Kind() == token.Identifier {
		pl.Name = p.intern(p.lex.Identifier())
		p.lex.Next()
	}
	if !p.expect(token.Kind('{')) {
		return pl
	}
	pl.StateAssignments = p.parseStateAssignments(token.Kind('}'))
	for sa := pl.StateAssignments; sa != nil; sa = sa.NextStateAssignment {
		pl.NumStateAssignments++
	}
	p.expect(token.Kind('}'))
	p.accept(token.Kind(';'))
	return pl
}

// parseStage parses a standalone `stage name { ... }` shader entry body.
// Distinct declared inputs/outputs blocks are not part of this grammar;
// a stage's body is its statement list, matched by name via
// ast.Root.FindStage.
func (p *Parser) parseStage() ast.Statement {
	p.lex.Next() // 'stage'
	file, _ := p.file()
	st, err := p.tree.NewStage(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	if p.lex.Kind() == token.Identifier {
		st.Name = p.intern(p.lex.Identifier())
		p.lex.Next()
	}
	p.BeginScope()
	st.Statement = p.parseBlockBody()
	p.EndScope()
	return st
}

// parseNamespace flattens a `namespace Name { ... }` block: the language
// has no runtime representation for namespaces, so its body's top-level
// statements are spliced directly into the enclosing scope.
func (p *Parser) parseNamespace() ast.Statement {
	p.lex.Next() // 'namespace'
	for isIdentifierLike(p.lex.Kind()) {
		p.lex.Next()
		if p.lex.Kind() == token.Kind('.') {
			p.lex.Next()
			continue
		}
		break
	}
	if !p.expect(token.Kind('{')) {
		return nil
	}

	var head, tail ast.Statement
	for p.lex.Kind() != token.Kind('}') && p.lex.Kind() != token.EOF && !p.errored {
		s := p.parseTopLevel()
		if s == nil {
			break
		}
		if head == nil {
			head = s
		} else {
			tail.SetNext(s)
		}
		tail = s
	}
	p.expect(token.Kind('}'))
	p.accept(token.Kind(';'))
	return head
}

// parseSamplerStateExpr parses the `sampler_state { ... }` inline
// initializer expression.
func (p *Parser) parseSamplerStateExpr() ast.Expression {
	p.lex.Next() // 'sampler_state'
	file, _ := p.file()
	ss, err := p.tree.NewSamplerState(file, p.line())
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	if !p.expect(token.Kind('{')) {
		return ss
	}
	ss.StateAssignments = p.parseStateAssignments(token.Kind('}'))
	for sa := ss.StateAssignments; sa != nil; sa = sa.NextStateAssignment {
		ss.NumStateAssignments++
	}
	p.expect(token.Kind('}'))
	ss.SetType(types.Type{Base: types.SamplerStateType})
	return ss
}
