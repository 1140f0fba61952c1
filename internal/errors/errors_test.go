package errors

import (
	"strings"
	"testing"
)

func TestCompilerErrorError(t *testing.T) {
	e := NewCompilerError("shader.fx", 12, "undeclared identifier 'foo'", "")
	got := e.Error()
	want := "shader.fx(12) : undeclared identifier 'foo'"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestFormatIncludesSourceLine(t *testing.T) {
	source := "float a;\nfloat b = foo;\nfloat c;"
	e := NewCompilerError("shader.fx", 2, "undeclared identifier 'foo'", source)

	out := e.Format(false)
	if !strings.Contains(out, "shader.fx:2") {
		t.Fatalf("expected header to name file:line, got: %s", out)
	}
	if !strings.Contains(out, "float b = foo;") {
		t.Fatalf("expected the offending line to be quoted, got: %s", out)
	}
	if !strings.Contains(out, "undeclared identifier 'foo'") {
		t.Fatalf("expected the message to be present, got: %s", out)
	}
}

func TestFormatWithoutSourceOmitsContext(t *testing.T) {
	e := NewCompilerError("", 5, "something broke", "")
	out := e.Format(false)
	if !strings.Contains(out, "Error at line 5") {
		t.Fatalf("expected a fileless header, got: %s", out)
	}
}

func TestFormatWithContextIncludesSurroundingLines(t *testing.T) {
	source := "float a;\nfloat b;\nfloat c = bar;\nfloat d;\nfloat e;"
	e := NewCompilerError("shader.fx", 3, "undeclared identifier 'bar'", source)

	out := e.FormatWithContext(1, false)
	for _, want := range []string{"float b;", "float c = bar;", "float d;"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected context to contain %q, got: %s", want, out)
		}
	}
	if strings.Contains(out, "float a;") {
		t.Fatalf("expected context window to exclude line 1, got: %s", out)
	}
}

func TestFormatErrorsSingleVsMultiple(t *testing.T) {
	one := []*CompilerError{NewCompilerError("a.fx", 1, "oops", "")}
	if got := FormatErrors(one, false); strings.Contains(got, "error(s)") {
		t.Fatalf("a single error should not be numbered, got: %s", got)
	}

	many := []*CompilerError{
		NewCompilerError("a.fx", 1, "oops", ""),
		NewCompilerError("a.fx", 2, "also oops", ""),
	}
	got := FormatErrors(many, false)
	if !strings.Contains(got, "2 error(s)") {
		t.Fatalf("expected a count header for multiple errors, got: %s", got)
	}
	if !strings.Contains(got, "[error 1 of 2]") || !strings.Contains(got, "[error 2 of 2]") {
		t.Fatalf("expected both errors numbered, got: %s", got)
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Fatalf("expected empty string for no errors, got %q", got)
	}
}

func TestFromStringErrorsRoundTrips(t *testing.T) {
	raw := []string{
		"shader.fx(3) : undeclared identifier 'foo'",
		"shader.fx(10) : expected ';'",
	}
	errs := FromStringErrors(raw, "")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].File != "shader.fx" || errs[0].Line != 3 || errs[0].Message != "undeclared identifier 'foo'" {
		t.Fatalf("unexpected first error: %+v", errs[0])
	}
	if errs[0].Error() != raw[0] {
		t.Fatalf("round trip mismatch: got %q, want %q", errs[0].Error(), raw[0])
	}
	if errs[1].Line != 10 || errs[1].Message != "expected ';'" {
		t.Fatalf("unexpected second error: %+v", errs[1])
	}
}

func TestFromStringErrorsFallsBackOnUnparseableInput(t *testing.T) {
	raw := []string{"a bare internal error with no wire format"}
	errs := FromStringErrors(raw, "")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Line != 0 || errs[0].File != "" || errs[0].Message != raw[0] {
		t.Fatalf("expected the raw string to survive as the message verbatim, got: %+v", errs[0])
	}
}
