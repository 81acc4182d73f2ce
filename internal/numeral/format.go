package numeral

import (
	"errors"
	"fmt"
	"strings"
)

// MaxRoman is the largest value a Roman numeral can express.
const MaxRoman = 3999

// ErrOutOfRange is matched by the *RangeError returned from Format.
var ErrOutOfRange = errors.New("number out of roman range")

// RangeError reports a value Format cannot express.
type RangeError struct {
	N int
}

func (e *RangeError) Error() string {
	if e.N <= 0 {
		return fmt.Sprintf("result %d is non-positive, thus cannot be represented by roman numbers", e.N)
	}
	return fmt.Sprintf("cannot convert arabic number %d larger than %d to roman", e.N, MaxRoman)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

var formatTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Format renders n in canonical Roman form. n must be in 1..MaxRoman.
func Format(n int) (string, error) {
	if n <= 0 || n > MaxRoman {
		return "", &RangeError{N: n}
	}

	var b strings.Builder
	for _, e := range formatTable {
		for n >= e.value {
			b.WriteString(e.symbol)
			n -= e.value
		}
	}
	return b.String(), nil
}
