package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/roman-calc/internal/repl"
	"github.com/Zuo-Peng/roman-calc/internal/tui"
)

func replCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively, one per line (default command)",
		Long: `Reads "<number> <operation> <number>" lines such as "2 + 2" or "X / III"
and prints the result in the numeral system of the operands. An empty line exits.

On a terminal a full-screen prompt is shown; otherwise (or with --plain) lines are
read from stdin and results written to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Use the line-by-line loop even on a terminal")

	return cmd
}

func runREPL(cmd *cobra.Command, plain bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rec, closeRec := openRecorder(cmd, cfg)
	defer closeRec()

	// Full-screen prompt when both ends are a terminal; plain loop for pipes
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !plain && !cfg.Plain {
		return tui.Run(cmd.Context(), rec)
	}

	err = repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), rec)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
