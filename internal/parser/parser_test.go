package parser

import (
	"strings"
	"testing"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/lexer"
)

func mustParse(t *testing.T, src string) *Parser {
	t.Helper()
	lex := lexer.New("test.fx", src)
	p, err := New(lex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Parse() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	return p
}

func TestParseValidPrograms(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"global declaration", "float x;"},
		{"multi-variable declaration", "float a, b, c;"},
		{"const declaration with initializer", "static const float kGamma = 2.2;"},
		{"struct", "struct VSInput { float3 pos : POSITION; float2 uv : TEXCOORD0; };"},
		{"cbuffer with register", "cbuffer PerFrame : register(b0) { float4x4 viewProj; float time; };"},
		{"sampler declaration", "sampler2D diffuseSampler : register(s0);"},
		{"forward declaration then definition", "float square(float x); float square(float x) { return x * x; }"},
		{"if/else", "float f(float x) { if (x > 0.0) { return x; } else { return -x; } }"},
		{"for loop", "float sum(float n) { float s = 0.0; for (float i = 0.0; i < n; i = i + 1.0) { s = s + i; } return s; }"},
		{"out parameter", "void unpack(float packed, out float lo, out float hi) { lo = packed; hi = packed; }"},
		{"technique with pass", "technique Main { pass P0 { SrcBlend = 1; AlphaBlendEnable = true; } }"},
		{"pipeline", "pipeline Main { VertexShader = 1; }"},
		{"stage", "stage VS { return; }"},
		{"namespace flattening", "namespace Lighting { float Attenuate(float d) { return 1.0 / (d * d); } }"},
		{"attribute on statement", "void f() { [unroll] for (int i = 0; i < 4; i = i + 1) { discard; } }"},
		{"sampler_state expression", "sampler2D s = sampler_state { Filter = 1; };"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mustParse(t, c.src)
		})
	}
}

func TestParseRejectsInvalidPrograms(t *testing.T) {
	cases := []struct {
		name      string
		src       string
		substring string
	}{
		{"unsized global array", "float x[];", "unsized array"},
		{"redefinition", "float f() { return 0.0; } float f() { return 1.0; }", "redefinition"},
		{"garbage top level", "123;", "expected declaration"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lex := lexer.New("test.fx", c.src)
			p, err := New(lex)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if p.Parse() {
				t.Fatalf("expected parse failure")
			}
			joined := strings.Join(p.Errors(), "\n")
			if !strings.Contains(joined, c.substring) {
				t.Fatalf("expected error containing %q, got: %s", c.substring, joined)
			}
		})
	}
}

// A multi-variable declaration group must occupy exactly one slot in the
// top-level statement chain; its members are reached only through
// Declaration.NextDeclaration.
func TestMultiVariableDeclarationIsOneTopLevelSlot(t *testing.T) {
	p := mustParse(t, "float a, b, c; float d;")

	root := p.Tree().Root
	first, ok := root.Statement.(*ast.Declaration)
	if !ok {
		t.Fatalf("expected first top-level statement to be a Declaration, got %T", root.Statement)
	}
	count := 0
	for d := first; d != nil; d = d.NextDeclaration {
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 chained declarations (a, b, c), got %d", count)
	}

	second := first.Next()
	if second == nil {
		t.Fatalf("expected a second top-level statement for 'd'")
	}
	if second.Next() != nil {
		t.Fatalf("expected exactly two top-level statements")
	}
}

func TestForwardDeclarationLinksToDefinition(t *testing.T) {
	p := mustParse(t, "float square(float x); float square(float x) { return x * x; }")

	root := p.Tree().Root
	var def *ast.Function
	for s := root.Statement; s != nil; s = s.Next() {
		if fn, ok := s.(*ast.Function); ok && fn.Statement != nil {
			def = fn
		}
	}
	if def == nil {
		t.Fatalf("expected to find the function definition")
	}
	if def.Forward == nil {
		t.Fatalf("expected definition's Forward to point at the prototype")
	}
}
