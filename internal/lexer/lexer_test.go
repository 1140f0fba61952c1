package lexer

import (
	"testing"

	"github.com/laurentdupin/hlslparser/internal/token"
)

func TestLexSimpleTokens(t *testing.T) {
	l := New("test.fx", "float x = 1.0;")

	want := []token.Kind{
		token.FLOAT, token.Identifier, token.Kind('='), token.FloatLiteral, token.Kind(';'),
	}
	for i, k := range want {
		if l.Kind() != k {
			t.Fatalf("token %d: got kind %v, want %v", i, l.Kind(), k)
		}
		l.Next()
	}
	if l.Kind() != token.EOF {
		t.Fatalf("expected EOF after the statement, got %v", l.Kind())
	}
}

func TestLexIntLiteral(t *testing.T) {
	l := New("test.fx", "42;")
	if l.Kind() != token.IntLiteral {
		t.Fatalf("expected an int literal, got %v", l.Kind())
	}
	if l.IntValue() != 42 {
		t.Fatalf("IntValue() = %d, want 42", l.IntValue())
	}
}

func TestLexHexLiteral(t *testing.T) {
	l := New("test.fx", "0xFF;")
	if l.Kind() != token.IntLiteral {
		t.Fatalf("expected an int literal, got %v", l.Kind())
	}
	if l.IntValue() != 0xFF {
		t.Fatalf("IntValue() = %d, want 255", l.IntValue())
	}
}

func TestLexFloatLiteralWithSuffix(t *testing.T) {
	l := New("test.fx", "1.5f;")
	if l.Kind() != token.FloatLiteral {
		t.Fatalf("expected a float literal, got %v", l.Kind())
	}
	if l.FloatValue() != 1.5 {
		t.Fatalf("FloatValue() = %v, want 1.5", l.FloatValue())
	}
}

func TestLexHalfLiteralSuffix(t *testing.T) {
	l := New("test.fx", "2.0h;")
	if l.Kind() != token.HalfLiteral {
		t.Fatalf("expected a half literal, got %v", l.Kind())
	}
}

func TestLexMultiCharOperators(t *testing.T) {
	cases := map[string]token.Kind{
		"+=": token.PlusEqual,
		"-=": token.MinusEqual,
		"==": token.EqualEqual,
		"!=": token.NotEqual,
		"<=": token.LessEqual,
		">=": token.GreaterEqual,
		"&&": token.AndAnd,
		"||": token.BarBar,
		"++": token.PlusPlus,
		"--": token.MinusMinus,
	}
	for src, want := range cases {
		l := New("test.fx", src)
		if l.Kind() != want {
			t.Errorf("lexing %q: got kind %v, want %v", src, l.Kind(), want)
		}
	}
}

func TestLexQualifiedIdentifierKeepsDoubleColon(t *testing.T) {
	l := New("test.fx", "Lighting::Attenuate;")
	if l.Kind() != token.Identifier {
		t.Fatalf("expected an identifier, got %v", l.Kind())
	}
	if l.Identifier() != "Lighting::Attenuate" {
		t.Fatalf("Identifier() = %q, want %q", l.Identifier(), "Lighting::Attenuate")
	}
}

func TestLexReservedKeyword(t *testing.T) {
	l := New("test.fx", "float4x4 m;")
	if l.Kind() == token.Identifier {
		t.Fatalf("expected 'float4x4' to lex as a reserved keyword, not a plain identifier")
	}
	if l.Identifier() != "float4x4" {
		t.Fatalf("Identifier() = %q, want %q even for a reserved keyword", l.Identifier(), "float4x4")
	}
}

func TestLexSkipsLineComment(t *testing.T) {
	l := New("test.fx", "// a comment\nfloat x;")
	if l.Kind() != token.FLOAT {
		t.Fatalf("expected the comment to be skipped, got %v", l.Kind())
	}
	if l.Line() != 2 {
		t.Fatalf("expected the line counter to advance past the comment, got %d", l.Line())
	}
}

func TestLexSkipsBlockComment(t *testing.T) {
	l := New("test.fx", "/* multi\nline */ float x;")
	if l.Kind() != token.FLOAT {
		t.Fatalf("expected the block comment to be skipped, got %v", l.Kind())
	}
}

func TestLexUnterminatedBlockCommentErrors(t *testing.T) {
	l := New("test.fx", "/* never closed")
	if !l.Errored() {
		t.Fatalf("expected an unterminated block comment to set the error flag")
	}
}

func TestLexSkipsPragma(t *testing.T) {
	l := New("test.fx", "#pragma once\nfloat x;")
	if l.Kind() != token.FLOAT {
		t.Fatalf("expected the pragma line to be skipped, got %v", l.Kind())
	}
}

func TestLexLineDirectiveRewritesLineAndFile(t *testing.T) {
	l := New("test.fx", "#line 100 \"included.fx\"\nfloat x;")
	if l.Kind() != token.FLOAT {
		t.Fatalf("expected the #line directive to be consumed, got %v", l.Kind())
	}
	if l.Line() != 100 {
		t.Fatalf("Line() = %d, want 100", l.Line())
	}
	if l.File() != "included.fx" {
		t.Fatalf("File() = %q, want %q", l.File(), "included.fx")
	}
}

func TestLexIdentifierTooLongErrors(t *testing.T) {
	long := make([]byte, MaxIdentifier+1)
	for i := range long {
		long[i] = 'a'
	}
	l := New("test.fx", string(long)+";")
	if !l.Errored() {
		t.Fatalf("expected an over-length identifier to set the error flag")
	}
}

func TestSaveRestoreRoundTrips(t *testing.T) {
	l := New("test.fx", "float x = 1.0;")
	saved := l.Save()

	l.Next()
	l.Next()
	if l.Kind() == token.FLOAT {
		t.Fatalf("expected the lexer to have advanced past the first token")
	}

	l.Restore(saved)
	if l.Kind() != token.FLOAT {
		t.Fatalf("expected Restore to rewind to the first token, got %v", l.Kind())
	}
}

func TestErroredSticksAndStopsScanning(t *testing.T) {
	l := New("test.fx", "/* unterminated")
	if !l.Errored() {
		t.Fatalf("expected the lexer to have errored")
	}
	before := len(l.Errors())
	l.Next()
	if len(l.Errors()) != before {
		t.Fatalf("expected no further diagnostics once errored")
	}
	if l.Kind() != token.EOF {
		t.Fatalf("expected EOF once errored, got %v", l.Kind())
	}
}
