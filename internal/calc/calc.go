// Package calc evaluates "<number> <operation> <number>" expressions whose
// operands are both Arabic or both Roman numerals.
package calc

import (
	"strconv"
	"strings"

	"github.com/Zuo-Peng/roman-calc/internal/numeral"
)

const rangeMessage = "only numbers between 1 and 3999 (inclusive) are allowed"

// Result is a successful evaluation.
type Result struct {
	Value  int
	System numeral.Kind
	Text   string // Value rendered in System
}

func (r Result) String() string { return r.Text }

// Calc splits one input line on whitespace and evaluates it.
func Calc(line string) (string, error) {
	res, err := EvaluateLine(line)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// EvaluateLine is Calc returning the full Result.
func EvaluateLine(line string) (Result, error) {
	if strings.TrimSpace(line) == "" {
		return Result{}, invalidf("empty input string")
	}

	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return Result{}, invalidf("invalid input string: expected \"<number> <operation> <number>\"")
	}

	return Evaluate(tokens[0], tokens[1], tokens[2])
}

// Evaluate applies op to two operand tokens and renders the result in the
// operands' numeral system. Arabic results are unbounded; Roman results must
// fall in 1..3999. Once both operands are classified, a failed Result still
// carries their System.
func Evaluate(first, op, second string) (Result, error) {
	operator, err := ParseOperator(op)
	if err != nil {
		return Result{}, err
	}

	system, err := systemOf(first, second)
	if err != nil {
		return Result{}, err
	}

	failed := Result{System: system}

	a, err := resolve(first, system)
	if err != nil {
		return failed, err
	}
	b, err := resolve(second, system)
	if err != nil {
		return failed, err
	}
	if !inRange(a) || !inRange(b) {
		return failed, invalidf(rangeMessage)
	}

	value := operator.Apply(a, b)
	if system == numeral.Arabic {
		return Result{Value: value, System: system, Text: strconv.Itoa(value)}, nil
	}

	text, err := numeral.Format(value)
	if err != nil {
		return failed, invalid(err)
	}
	return Result{Value: value, System: system, Text: text}, nil
}

// Convert renders a single number in the other numeral system.
func Convert(token string) (Result, error) {
	switch numeral.Classify(token) {
	case numeral.Arabic:
		n, err := resolve(token, numeral.Arabic)
		if err != nil {
			return Result{}, err
		}
		text, err := numeral.Format(n)
		if err != nil {
			return Result{}, invalid(err)
		}
		return Result{Value: n, System: numeral.Roman, Text: text}, nil

	case numeral.Roman:
		n, err := resolve(token, numeral.Roman)
		if err != nil {
			return Result{}, err
		}
		if !inRange(n) {
			return Result{}, invalidf(rangeMessage)
		}
		return Result{Value: n, System: numeral.Arabic, Text: strconv.Itoa(n)}, nil

	default:
		return Result{}, invalidf("number %q is invalid", token)
	}
}

func systemOf(first, second string) (numeral.Kind, error) {
	a := numeral.Classify(first)
	if a == numeral.Invalid {
		return numeral.Invalid, invalidf("first number is invalid")
	}
	b := numeral.Classify(second)
	if b == numeral.Invalid {
		return numeral.Invalid, invalidf("second number is invalid")
	}
	if a != b {
		return numeral.Invalid, invalidf("numbers must be of same number system")
	}
	return a, nil
}

func resolve(token string, system numeral.Kind) (int, error) {
	if system == numeral.Roman {
		n, err := numeral.Parse(token)
		if err != nil {
			return 0, invalid(err)
		}
		return n, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		// digits only, so the sole failure is overflow
		return 0, invalidf(rangeMessage)
	}
	return n, nil
}

func inRange(n int) bool { return n >= 1 && n <= numeral.MaxRoman }
