package numeral

import (
	"errors"
	"fmt"
)

// ErrInvalidRoman is matched by every error Parse returns.
var ErrInvalidRoman = errors.New("invalid roman number")

// Parse converts a Roman numeral to its value.
//
// Symbols are scanned left to right. For each symbol the checks run in a
// fixed order: a repeat of the same symbol, then a smaller-before-larger
// subtractive pair (consuming both symbols), then a plain symbol. Only I, X,
// C and M repeat, at most three times in a row, and a symbol that was just
// repeated may not also act as a subtractive prefix ("IIV", "XXC").
func Parse(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidRoman)
	}

	syms := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		sym, ok := SymbolOf(s[i])
		if !ok {
			return 0, invalidRoman(s, "unexpected character %q", s[i])
		}
		syms[i] = sym
	}

	sum := 0
	run := 1
	for i := 0; i < len(syms); {
		cur := syms[i]
		if i+1 == len(syms) {
			sum += cur.Value()
			break
		}
		next := syms[i+1]

		switch {
		case next == cur:
			if !cur.Repeatable() {
				return 0, invalidRoman(s, "%s cannot be repeated", cur)
			}
			if run == 3 {
				return 0, invalidRoman(s, "%s repeated more than three times", cur)
			}
			run++
			sum += cur.Value()
			i++

		case cur.Value() < next.Value():
			if run > 1 {
				return 0, invalidRoman(s, "repeated %s cannot precede %s", cur, next)
			}
			if !cur.CanPrefix(next) {
				return 0, invalidRoman(s, "%s cannot precede %s", cur, next)
			}
			run = 1
			sum += next.Value() - cur.Value()
			i += 2

		default:
			run = 1
			sum += cur.Value()
			i++
		}
	}

	return sum, nil
}

func invalidRoman(s, reasonFmt string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidRoman, s, fmt.Sprintf(reasonFmt, args...))
}
