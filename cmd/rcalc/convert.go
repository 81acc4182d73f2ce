package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/roman-calc/internal/calc"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <number>",
		Short: "Convert a number between Arabic and Roman notation",
		Example: `  rcalc convert 1999   # MCMXCIX
  rcalc convert MMXXVI # 2026`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			res, err := calc.Convert(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
}
