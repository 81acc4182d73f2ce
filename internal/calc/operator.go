package calc

// Operator is one of the four arithmetic operations.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

// ParseOperator accepts exactly "+", "-", "*" or "/".
func ParseOperator(s string) (Operator, error) {
	if len(s) == 1 {
		switch op := Operator(s[0]); op {
		case Add, Sub, Mul, Div:
			return op, nil
		}
	}
	return 0, invalidf("invalid operation %q", s)
}

func (o Operator) String() string { return string(rune(o)) }

// Apply computes a o b. Division truncates toward zero; b is never zero
// here because operands are range-checked first.
func (o Operator) Apply(a, b int) int {
	switch o {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	}
	panic("calc: unknown operator " + string(rune(o)))
}
