// Package errors formats compiler diagnostics with source context and a
// line marker. Every diagnostic's wire form is the single-line
// "file(line) : message" string that the lexer and parser already
// produce; CompilerError wraps one such diagnostic with its originating
// source so a CLI can print a highlighted line beneath the header.
package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// CompilerError is one compilation diagnostic together with enough
// context to render it. Unlike a column-aware formatter, positions here
// carry only a file and a line: the lexer's token.Position has no column,
// so there is no caret to place -- the offending line is printed in
// full and left to the reader to scan.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Line    int
}

// NewCompilerError builds a CompilerError from a file/line pair.
func NewCompilerError(file string, line int, message, source string) *CompilerError {
	return &CompilerError{File: file, Line: line, Message: message, Source: source}
}

// Error implements the error interface, reproducing the wire format
// exactly: "file(line) : message".
func (e *CompilerError) Error() string {
	return fmt.Sprintf("%s(%d) : %s", e.File, e.Line, e.Message)
}

// Format renders the error with one line of source context. If color is
// true, the message is wrapped in ANSI bold codes for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d\n", e.File, e.Line))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d\n", e.Line))
	}

	if line := e.getSourceLine(e.Line); line != "" {
		sb.WriteString(fmt.Sprintf("%4d | ", e.Line))
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// getSourceLine returns the 1-indexed source line, or "" if unavailable.
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// getSourceContext returns the lines from (lineNum-before) to
// (lineNum+after), clamped to the source's bounds.
func (e *CompilerError) getSourceContext(lineNum, before, after int) []string {
	if e.Source == "" {
		return nil
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return nil
	}
	start := lineNum - before
	if start < 1 {
		start = 1
	}
	end := lineNum + after
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start-1 : end]
}

// FormatWithContext renders the error with contextLines of surrounding
// source above and below the offending line, the offending line bolded.
func (e *CompilerError) FormatWithContext(contextLines int, color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d\n", e.File, e.Line))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d\n", e.Line))
	}

	ctx := e.getSourceContext(e.Line, contextLines, contextLines)
	if len(ctx) == 0 {
		return e.Format(color)
	}

	startLine := e.Line - contextLines
	if startLine < 1 {
		startLine = 1
	}

	for i, line := range ctx {
		currentLine := startLine + i
		lineNumStr := fmt.Sprintf("%4d | ", currentLine)
		if currentLine == e.Line {
			if color {
				sb.WriteString("\033[1m")
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
		} else {
			if color {
				sb.WriteString("\033[2m")
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// FormatErrors renders every error in order, numbering them when there
// is more than one.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation failed with %d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// FormatErrorsWithContext is FormatErrors using FormatWithContext per
// error.
func FormatErrorsWithContext(errs []*CompilerError, contextLines int, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].FormatWithContext(contextLines, color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation failed with %d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(e.FormatWithContext(contextLines, color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// FromStringErrors wraps the raw "file(line) : message" diagnostics that
// the lexer and parser accumulate into CompilerErrors carrying source,
// so a CLI can print them with context instead of as bare lines.
func FromStringErrors(rawErrors []string, source string) []*CompilerError {
	out := make([]*CompilerError, 0, len(rawErrors))
	for _, raw := range rawErrors {
		file, line, message := parseErrorString(raw)
		out = append(out, NewCompilerError(file, line, message, source))
	}
	return out
}

// parseErrorString splits the "file(line) : message" wire format back
// into its parts. Diagnostics that don't match (a bare internal error,
// say) are returned verbatim as the message with line 0.
func parseErrorString(raw string) (file string, line int, message string) {
	open := strings.Index(raw, "(")
	if open == -1 {
		return "", 0, raw
	}
	close := strings.Index(raw[open:], ")")
	if close == -1 {
		return "", 0, raw
	}
	close += open

	sep := strings.Index(raw[close:], " : ")
	if sep == -1 {
		return "", 0, raw
	}
	sep += close

	n, err := strconv.Atoi(raw[open+1 : close])
	if err != nil {
		return "", 0, raw
	}

	return raw[:open], n, raw[sep+3:]
}
