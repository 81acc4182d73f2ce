// Package numeral classifies number tokens and converts between Arabic
// integers and Roman numerals in the range 1..3999.
package numeral

// Symbol is one of the seven Roman numeral letters.
type Symbol uint8

const (
	I Symbol = iota
	V
	X
	L
	C
	D
	M
)

type symbolInfo struct {
	letter byte
	value  int
	// repeatable symbols may appear up to three times in a row.
	repeatable bool
	// prefixOf lists the symbols this one may stand before subtractively.
	prefixOf []Symbol
}

var symbols = [...]symbolInfo{
	I: {letter: 'I', value: 1, repeatable: true, prefixOf: []Symbol{V, X}},
	V: {letter: 'V', value: 5},
	X: {letter: 'X', value: 10, repeatable: true, prefixOf: []Symbol{L, C}},
	L: {letter: 'L', value: 50},
	C: {letter: 'C', value: 100, repeatable: true, prefixOf: []Symbol{D, M}},
	D: {letter: 'D', value: 500},
	M: {letter: 'M', value: 1000, repeatable: true},
}

// Symbols returns every symbol ordered by value.
func Symbols() []Symbol {
	return []Symbol{I, V, X, L, C, D, M}
}

// SymbolOf maps an uppercase letter to its symbol.
func SymbolOf(b byte) (Symbol, bool) {
	switch b {
	case 'I':
		return I, true
	case 'V':
		return V, true
	case 'X':
		return X, true
	case 'L':
		return L, true
	case 'C':
		return C, true
	case 'D':
		return D, true
	case 'M':
		return M, true
	}
	return 0, false
}

func (s Symbol) Value() int { return symbols[s].value }

func (s Symbol) String() string { return string(symbols[s].letter) }

// Repeatable reports whether s may be written several times in a row.
// Only the powers of ten (I, X, C, M) are.
func (s Symbol) Repeatable() bool { return symbols[s].repeatable }

// CanPrefix reports whether s placed before next forms a legal subtractive pair.
func (s Symbol) CanPrefix(next Symbol) bool {
	for _, t := range symbols[s].prefixOf {
		if t == next {
			return true
		}
	}
	return false
}
