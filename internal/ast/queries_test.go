package ast_test

import (
	"testing"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/lexer"
	"github.com/laurentdupin/hlslparser/internal/parser"
)

const queriesSource = `
struct Light {
	float3 direction;
	float3 color;
};

cbuffer PerFrame : register(b0) {
	float4x4 viewProj;
};

technique Main {
	pass P0 { SrcBlend = 1; }
};

pipeline Forward {
	VertexShader = 1;
};

float helper(float x) {
	return x * 2.0;
}

float4 VS(float3 pos) : SV_POSITION {
	return float4(pos, helper(1.0));
}
`

func parseQueriesFixture(t *testing.T) *ast.Tree {
	t.Helper()
	lex := lexer.New("queries.fx", queriesSource)
	p, err := parser.New(lex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Parse() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	return p.Tree()
}

func TestFindFunctionMatchesByArity(t *testing.T) {
	tree := parseQueriesFixture(t)
	name, err := tree.Interner.Add("helper")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	fn := tree.Root.FindFunction(name, 1)
	if fn == nil {
		t.Fatalf("expected to find helper/1")
	}
	if tree.Root.FindFunction(name, 2) != nil {
		t.Fatalf("expected no match for helper/2")
	}
}

func TestFindGlobalStructBufferTechniquePipeline(t *testing.T) {
	tree := parseQueriesFixture(t)

	lightName, _ := tree.Interner.Add("Light")
	if tree.Root.FindGlobalStruct(lightName) == nil {
		t.Fatalf("expected to find struct Light")
	}

	bufferName, _ := tree.Interner.Add("PerFrame")
	if tree.Root.FindBuffer(bufferName) == nil {
		t.Fatalf("expected to find buffer PerFrame")
	}

	techName, _ := tree.Interner.Add("Main")
	if tree.Root.FindTechnique(techName) == nil {
		t.Fatalf("expected to find technique Main")
	}

	pipelineName, _ := tree.Interner.Add("Forward")
	if tree.Root.FindPipeline(pipelineName) == nil {
		t.Fatalf("expected to find pipeline Forward")
	}
}

func TestFindGlobalDeclarationSearchesBufferFields(t *testing.T) {
	tree := parseQueriesFixture(t)
	name, _ := tree.Interner.Add("viewProj")
	decl := tree.Root.FindGlobalDeclaration(name)
	if decl == nil {
		t.Fatalf("expected to find viewProj among the PerFrame buffer's fields")
	}
	if decl.Buffer == nil {
		t.Fatalf("expected viewProj to report its containing buffer")
	}
}

func TestNeedsFunctionFindsTransitiveCalls(t *testing.T) {
	tree := parseQueriesFixture(t)

	var helper, vs *ast.Function
	for s := tree.Root.Statement; s != nil; s = s.Next() {
		if fn, ok := s.(*ast.Function); ok {
			switch tree.Interner.String(fn.Name) {
			case "helper":
				helper = fn
			case "VS":
				vs = fn
			}
		}
	}
	if helper == nil || vs == nil {
		t.Fatalf("expected to find both helper and VS functions")
	}

	if !tree.Root.NeedsFunction(helper) {
		t.Fatalf("expected helper to be reachable via VS's call to it")
	}
}

func TestStatementsReturnsTopLevelChainInOrder(t *testing.T) {
	tree := parseQueriesFixture(t)
	stmts := tree.Root.Statements()
	if len(stmts) == 0 {
		t.Fatalf("expected a non-empty top-level statement list")
	}
	if _, ok := stmts[0].(*ast.Struct); !ok {
		t.Fatalf("expected the first top-level statement to be the Light struct, got %T", stmts[0])
	}
}

func TestGetExpressionValueIntFromLiteral(t *testing.T) {
	lit := &ast.Literal{IntValue: 5}
	v, ok := ast.GetExpressionValueInt(lit)
	if !ok || v != 5 {
		t.Fatalf("GetExpressionValueInt = (%d, %v), want (5, true)", v, ok)
	}
}

func TestGetExpressionValueIntRejectsNonLiteral(t *testing.T) {
	_, ok := ast.GetExpressionValueInt(&ast.Identifier{})
	if ok {
		t.Fatalf("expected a non-literal expression to be rejected")
	}
}

func TestGetExpressionValueFloat4BroadcastsScalar(t *testing.T) {
	lit := &ast.Literal{FloatValue: 2.5}
	x, y, z, w, ok := ast.GetExpressionValueFloat4(lit)
	if !ok || x != 2.5 || y != 2.5 || z != 2.5 || w != 2.5 {
		t.Fatalf("expected a scalar literal to broadcast to all 4 components, got (%v,%v,%v,%v,%v)", x, y, z, w, ok)
	}
}

func TestGetExpressionValueFloat4PadsConstructorArguments(t *testing.T) {
	a := &ast.Literal{FloatValue: 1}
	b := &ast.Literal{FloatValue: 2}
	a.SetNextExpr(b)
	ctor := &ast.Constructor{Argument: a}

	x, y, z, w, ok := ast.GetExpressionValueFloat4(ctor)
	if !ok {
		t.Fatalf("expected a constructor of literals to be foldable")
	}
	if x != 1 || y != 2 || z != 2 || w != 2 {
		t.Fatalf("expected the last component to repeat to fill the vector, got (%v,%v,%v,%v)", x, y, z, w)
	}
}
