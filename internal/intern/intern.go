// Package intern deduplicates identifier and literal strings encountered
// during parsing so that later name comparisons -- struct field lookups,
// overload name matching, type-name equality -- reduce to a single integer
// comparison rather than a byte-by-byte string compare.
package intern

import (
	"fmt"

	"github.com/laurentdupin/hlslparser/internal/arena"
)

// Symbol is an interned string handle. Two Symbols compare equal if and
// only if they were interned from byte-equal strings, which gives pointer
// equality semantics without resorting to unsafe string-pointer tricks.
type Symbol = arena.Pointer[string]

// NoSymbol is the empty/absent interned string.
const NoSymbol Symbol = 0

// Interner deduplicates strings for the lifetime of one compilation.
type Interner struct {
	pool  *arena.Arena[string]
	index map[string]Symbol
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{
		pool:  arena.New[string](arena.DefaultPageElems, arena.DefaultMaxPages),
		index: make(map[string]Symbol),
	}
}

// Add interns s, returning the existing entry if an equal string was
// already interned, or a new one otherwise.
func (in *Interner) Add(s string) (Symbol, error) {
	if sym, ok := in.index[s]; ok {
		return sym, nil
	}
	sym, err := in.pool.New(s)
	if err != nil {
		return NoSymbol, err
	}
	in.index[s] = sym
	return sym, nil
}

// AddFormat formats its arguments with fmt.Sprintf and interns the result.
func (in *Interner) AddFormat(format string, args ...any) (Symbol, error) {
	return in.Add(fmt.Sprintf(format, args...))
}

// Contains reports whether an equal string has already been interned.
func (in *Interner) Contains(s string) bool {
	_, ok := in.index[s]
	return ok
}

// String returns the text behind sym. Looking up NoSymbol returns "".
func (in *Interner) String(sym Symbol) string {
	if sym.IsNil() {
		return ""
	}
	return *in.pool.Deref(sym)
}

// Equal reports whether two symbols name the same interned string. This is
// here mainly for readability at call sites; Symbol equality already does
// the right thing with ==.
func Equal(a, b Symbol) bool { return a == b }
