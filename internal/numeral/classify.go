package numeral

// Kind is the numeral system a token is written in.
type Kind int

const (
	Invalid Kind = iota
	Arabic
	Roman
)

func (k Kind) String() string {
	switch k {
	case Arabic:
		return "arabic"
	case Roman:
		return "roman"
	default:
		return "invalid"
	}
}

// Classify inspects only the character set of token: all decimal digits is
// Arabic, all uppercase Roman letters is Roman, anything else (including the
// empty string) is Invalid. Roman grammar is left to Parse.
func Classify(token string) Kind {
	if token == "" {
		return Invalid
	}
	if allBytes(token, isDigit) {
		return Arabic
	}
	if allBytes(token, isRomanLetter) {
		return Roman
	}
	return Invalid
}

func allBytes(s string, fn func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !fn(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isRomanLetter(b byte) bool {
	_, ok := SymbolOf(b)
	return ok
}
