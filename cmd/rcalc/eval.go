package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/roman-calc/internal/repl"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <number> <operation> <number>",
		Short: "Evaluate a single expression",
		Long: `Evaluates one expression and prints the result. The expression may be
given as one quoted argument or as three separate arguments:

  rcalc eval "X + V"
  rcalc eval 12 '*' 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rec, closeRec := openRecorder(cmd, cfg)
			defer closeRec()

			res, err := repl.Eval(cmd.Context(), strings.Join(args, " "), rec)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
}
