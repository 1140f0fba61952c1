package visitor

import (
	"testing"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/lexer"
	"github.com/laurentdupin/hlslparser/internal/parser"
)

type countingVisitor struct {
	kinds []string
}

func (c *countingVisitor) Visit(n ast.Node) Visitor {
	if n == nil {
		return nil
	}
	c.kinds = append(c.kinds, nodeKindName(n))
	return c
}

func nodeKindName(n ast.Node) string {
	switch n.(type) {
	case *ast.Root:
		return "Root"
	case *ast.Declaration:
		return "Declaration"
	case *ast.Function:
		return "Function"
	case *ast.Argument:
		return "Argument"
	case *ast.Return:
		return "Return"
	case *ast.Binary:
		return "Binary"
	case *ast.Identifier:
		return "Identifier"
	case *ast.Literal:
		return "Literal"
	default:
		return "Other"
	}
}

func parseOne(t *testing.T, src string) *ast.Tree {
	t.Helper()
	lex := lexer.New("test.fx", src)
	p, err := parser.New(lex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Parse() {
		t.Fatalf("parse failed: %v", p.Errors())
	}
	return p.Tree()
}

func TestWalkVisitsEveryNode(t *testing.T) {
	tree := parseOne(t, "float square(float x) { return x * x; }")

	cv := &countingVisitor{}
	Walk(cv, tree.Root)

	want := []string{"Root", "Function", "Argument", "Return", "Binary", "Identifier", "Identifier"}
	if len(cv.kinds) != len(want) {
		t.Fatalf("got %v, want %v", cv.kinds, want)
	}
	for i := range want {
		if cv.kinds[i] != want[i] {
			t.Fatalf("at index %d: got %q, want %q (full: %v)", i, cv.kinds[i], want[i], cv.kinds)
		}
	}
}

type pruningVisitor struct {
	visited []string
	prune   string
}

func (p *pruningVisitor) Visit(n ast.Node) Visitor {
	if n == nil {
		return nil
	}
	name := nodeKindName(n)
	p.visited = append(p.visited, name)
	if name == p.prune {
		return nil
	}
	return p
}

func TestWalkPrunesWhenVisitReturnsNil(t *testing.T) {
	tree := parseOne(t, "float square(float x) { return x * x; }")

	pv := &pruningVisitor{prune: "Return"}
	Walk(pv, tree.Root)

	for _, k := range pv.visited {
		if k == "Binary" || k == "Identifier" {
			t.Fatalf("expected the Return subtree to be pruned, but visited %q: %v", k, pv.visited)
		}
	}
}

func TestWalkNilNodeIsNoOp(t *testing.T) {
	cv := &countingVisitor{}
	Walk(cv, nil)
	if len(cv.kinds) != 0 {
		t.Fatalf("expected no visits for a nil node, got %v", cv.kinds)
	}
}

func TestInspectStopsDescendingWhenCallbackReturnsFalse(t *testing.T) {
	tree := parseOne(t, "float square(float x) { return x * x; }")

	var visited []string
	Inspect(tree.Root, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		name := nodeKindName(n)
		visited = append(visited, name)
		return name != "Return"
	})

	for _, k := range visited {
		if k == "Binary" {
			t.Fatalf("expected Inspect to stop descending once it saw Return: %v", visited)
		}
	}
}

func TestWalkVisitsMultipleTopLevelStatements(t *testing.T) {
	tree := parseOne(t, "float a; float b;")

	cv := &countingVisitor{}
	Walk(cv, tree.Root)

	count := 0
	for _, k := range cv.kinds {
		if k == "Declaration" {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 declarations visited, got %d (full: %v)", count, cv.kinds)
	}
}
