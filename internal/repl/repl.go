// Package repl runs the calculator as a line-by-line read loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Zuo-Peng/roman-calc/internal/calc"
	"github.com/Zuo-Peng/roman-calc/pkg/logger"
)

// Banner is printed once before the first prompt.
const Banner = `Input two numbers (roman or arabic) and an operation you want to perform.
Available operations: + - / *. Example: 2 + 2.
Note that only numbers between 1 and 3999 (inclusive) are allowed.
Input an empty line if you wish to exit.`

const (
	InPrompt  = "In: "
	OutPrefix = "Out: "
)

// Recorder receives every evaluation the loop performs.
type Recorder interface {
	Record(expression string, res calc.Result, evalErr error) error
}

// Run reads one expression per line from in and writes the result or the
// error message to out. It returns nil on an empty line or end of input.
// rec may be nil.
func Run(ctx context.Context, in io.Reader, out io.Writer, rec Recorder) error {
	fmt.Fprintln(out, Banner)

	// bufio.Reader rather than Scanner: lines have no length limit
	r := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, InPrompt)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return nil
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return nil
		}

		res, err := Eval(ctx, line, rec)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}
		fmt.Fprintln(out, OutPrefix+res.Text)
	}
}

// Eval evaluates one line, logging it and handing it to rec when rec is not nil.
// A failing rec is logged and otherwise ignored.
func Eval(ctx context.Context, line string, rec Recorder) (calc.Result, error) {
	res, err := calc.EvaluateLine(line)
	if err != nil {
		logger.Debug(ctx, "evaluation failed", zap.String("expression", line), zap.Error(err))
	} else {
		logger.Debug(ctx, "evaluated", zap.String("expression", line), zap.String("result", res.Text))
	}

	if rec != nil {
		if recErr := rec.Record(line, res, err); recErr != nil {
			logger.Warn(ctx, "could not record evaluation", zap.Error(recErr))
		}
	}

	return res, err
}
