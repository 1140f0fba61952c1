package transform

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/lexer"
	"github.com/laurentdupin/hlslparser/internal/parser"
)

const shaderSource = `
struct VSOutput {
	float4 position : SV_POSITION;
	float2 uv : TEXCOORD0;
};

float4x4 worldViewProj;
float time;
float4 tintColor : PER_ITEM;
float3 lightDir : PER_MATERIAL;
sampler2D diffuseSampler : register(s0);
float unusedGlobal;
float4 fogColor : PER_PASS;

float helper(float x) {
	return x * 2.0;
}

float unreachable(float x) {
	return x + 1.0;
}

VSOutput VS(float3 pos : POSITION, float2 uv : TEXCOORD0) {
	VSOutput o;
	o.position = float4(pos, 1.0);
	o.uv = uv;
	return o;
}

float4 PS(VSOutput i) : SV_TARGET {
	return float4(i.uv, helper(time), 1.0);
}
`

func parseShader(t *testing.T) *ast.Tree {
	t.Helper()
	lex := lexer.New("shader.fx", shaderSource)
	p, err := parser.New(lex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Parse() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	return p.Tree()
}

// statementSummary lists, in order, one line per visible top-level
// statement naming its kind and (if it has one) its name.
func statementSummary(tree *ast.Tree) []string {
	var lines []string
	for s := tree.Root.Statement; s != nil; s = s.Next() {
		if s.Hidden() {
			continue
		}
		lines = append(lines, describeTopLevel(tree, s))
	}
	return lines
}

func describeTopLevel(tree *ast.Tree, s ast.Statement) string {
	switch n := s.(type) {
	case *ast.Struct:
		return fmt.Sprintf("struct %s", tree.Interner.String(n.Name))
	case *ast.Declaration:
		names := ""
		for d := n; d != nil; d = d.NextDeclaration {
			if names != "" {
				names += ","
			}
			names += tree.Interner.String(d.Name)
		}
		return fmt.Sprintf("declaration %s", names)
	case *ast.Buffer:
		var fields []string
		for f := n.Field; f != nil; f = f.NextDeclaration {
			fields = append(fields, tree.Interner.String(f.Name))
		}
		return fmt.Sprintf("buffer %s(%s) %v", tree.Interner.String(n.Name), tree.Interner.String(n.RegisterName), fields)
	case *ast.Function:
		return fmt.Sprintf("function %s", tree.Interner.String(n.Name))
	default:
		return fmt.Sprintf("%T", n)
	}
}

func TestPruneHidesUnreachableDeclarations(t *testing.T) {
	tree := parseShader(t)
	if err := Prune(tree, "VS", "PS"); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	visible := statementSummary(tree)
	snaps.MatchSnapshot(t, "prune_visible_statements", visible)

	for s := tree.Root.Statement; s != nil; s = s.Next() {
		fn, ok := s.(*ast.Function)
		if ok && tree.Interner.String(fn.Name) == "unreachable" && !fn.Hidden() {
			t.Fatalf("expected 'unreachable' to be pruned")
		}
	}
}

func TestPruneRequiresAnEntryFunction(t *testing.T) {
	tree := parseShader(t)
	if err := Prune(tree, "DoesNotExist"); err == nil {
		t.Fatalf("expected an error when no entry function matches")
	}
}

func TestSortBucketsTopLevelStatements(t *testing.T) {
	tree := parseShader(t)
	if err := Sort(tree); err != nil {
		t.Fatalf("Sort: %v", err)
	}

	var buckets []int
	for s := tree.Root.Statement; s != nil; s = s.Next() {
		buckets = append(buckets, bucketOf(s))
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i] < buckets[i-1] {
			t.Fatalf("bucket order not monotonic at index %d: %v", i, buckets)
		}
	}
}

func TestGroupBuildsSyntheticBuffers(t *testing.T) {
	tree := parseShader(t)
	if err := Group(tree); err != nil {
		t.Fatalf("Group: %v", err)
	}

	summary := statementSummary(tree)
	snaps.MatchSnapshot(t, "group_statements", summary)

	var sawPerItem, sawPerPass bool
	for s := tree.Root.Statement; s != nil; s = s.Next() {
		buf, ok := s.(*ast.Buffer)
		if !ok {
			continue
		}
		switch tree.Interner.String(buf.Name) {
		case "per_item":
			sawPerItem = true
		case "per_pass":
			sawPerPass = true
		}
	}
	if !sawPerItem {
		t.Fatalf("expected a per_item synthetic buffer")
	}
	if !sawPerPass {
		t.Fatalf("expected a per_pass synthetic buffer")
	}
}

func TestFlattenLeavesCallsWithoutOutArgumentsInPlace(t *testing.T) {
	src := `
void split(float v, out float lo, out float hi) {
	lo = v;
	hi = v;
}

float combine(float a, float b) {
	return a + b;
}

float f(float v) {
	float lo;
	float hi;
	split(v, lo, hi);
	return combine(v, v) + v;
}
`
	lex := lexer.New("flatten.fx", src)
	p, err := parser.New(lex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Parse() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	tree := p.Tree()

	if err := Flatten(tree); err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	var f *ast.Function
	for s := tree.Root.Statement; s != nil; s = s.Next() {
		if fn, ok := s.(*ast.Function); ok && tree.Interner.String(fn.Name) == "f" {
			f = fn
		}
	}
	if f == nil {
		t.Fatalf("function f not found")
	}

	foundTemp := false
	for s := f.Statement; s != nil; s = s.Next() {
		if d, ok := s.(*ast.Declaration); ok {
			name := tree.Interner.String(d.Name)
			if len(name) >= 3 && name[:3] == "tmp" {
				foundTemp = true
			}
		}
	}
	if foundTemp {
		t.Fatalf("combine() has no out/inout arguments and should not be flattened into a temporary")
	}
}

func TestAlphaTestInsertsDiscard(t *testing.T) {
	src := `
float4 PS(float2 uv) : SV_TARGET {
	return float4(uv, 0.0, 1.0);
}
`
	lex := lexer.New("alpha.fx", src)
	p, err := parser.New(lex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Parse() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	tree := p.Tree()

	if err := AlphaTest(tree, "PS", DefaultAlphaThreshold); err != nil {
		t.Fatalf("AlphaTest: %v", err)
	}

	var ps *ast.Function
	for s := tree.Root.Statement; s != nil; s = s.Next() {
		if fn, ok := s.(*ast.Function); ok && tree.Interner.String(fn.Name) == "PS" {
			ps = fn
		}
	}
	if ps == nil {
		t.Fatalf("function PS not found")
	}

	var sawIf, sawReturn bool
	for s := ps.Statement; s != nil; s = s.Next() {
		switch s.(type) {
		case *ast.If:
			sawIf = true
		case *ast.Return:
			sawReturn = true
		}
	}
	if !sawIf {
		t.Fatalf("expected an inserted alpha-test if statement")
	}
	if !sawReturn {
		t.Fatalf("expected the original return to survive")
	}
}

func TestAlphaTestRejectsNonAlphaReturnType(t *testing.T) {
	src := `
int PS() : SV_TARGET {
	return 1;
}
`
	lex := lexer.New("alpha_reject.fx", src)
	p, err := parser.New(lex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Parse() {
		t.Fatalf("parse failed: %v", p.Errors())
	}

	if err := AlphaTest(p.Tree(), "PS", DefaultAlphaThreshold); err == nil {
		t.Fatalf("expected an error for a return type with no alpha channel")
	}
}
