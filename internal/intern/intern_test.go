package intern

import "testing"

func TestAddDeduplicates(t *testing.T) {
	in := New()

	a, err := in.Add("diffuseSampler")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, err := in.Add("diffuseSampler")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a != b {
		t.Fatalf("expected equal strings to intern to the same symbol, got %v and %v", a, b)
	}

	c, err := in.Add("worldViewProj")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a == c {
		t.Fatalf("expected distinct strings to intern to distinct symbols")
	}
}

func TestStringRoundTrips(t *testing.T) {
	in := New()
	sym, err := in.Add("PER_ITEM")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := in.String(sym); got != "PER_ITEM" {
		t.Fatalf("String() = %q, want %q", got, "PER_ITEM")
	}
}

func TestStringOfNoSymbolIsEmpty(t *testing.T) {
	in := New()
	if got := in.String(NoSymbol); got != "" {
		t.Fatalf("String(NoSymbol) = %q, want empty", got)
	}
}

func TestContains(t *testing.T) {
	in := New()
	if in.Contains("foo") {
		t.Fatalf("expected 'foo' to not yet be interned")
	}
	if _, err := in.Add("foo"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !in.Contains("foo") {
		t.Fatalf("expected 'foo' to be interned after Add")
	}
}

func TestAddFormat(t *testing.T) {
	in := New()
	sym, err := in.AddFormat("tmp%d", 3)
	if err != nil {
		t.Fatalf("AddFormat: %v", err)
	}
	if got := in.String(sym); got != "tmp3" {
		t.Fatalf("String() = %q, want %q", got, "tmp3")
	}
}

func TestEqualHelper(t *testing.T) {
	in := New()
	a, _ := in.Add("x")
	b, _ := in.Add("x")
	c, _ := in.Add("y")
	if !Equal(a, b) {
		t.Fatalf("expected Equal(a, b) to be true for equal strings")
	}
	if Equal(a, c) {
		t.Fatalf("expected Equal(a, c) to be false for distinct strings")
	}
}
