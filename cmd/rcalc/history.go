package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Zuo-Peng/roman-calc/internal/history"
	"github.com/Zuo-Peng/roman-calc/pkg/logger"
)

const (
	hColorReset   = "\033[0m"
	hColorBoldRed = "\033[1;31m"
	hColorBlue    = "\033[1;34m"
	hColorGreen   = "\033[1;32m"
	hColorDim     = "\033[2m"
)

func colorizeSystem(system string) string {
	switch system {
	case "roman":
		return hColorBlue + system + hColorReset
	case "arabic":
		return hColorGreen + system + hColorReset
	default:
		return "-"
	}
}

func historyCmd() *cobra.Command {
	var system, since string
	var failed, wipe bool
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously evaluated expressions, newest first",
		Long: `Lists stored evaluations. Output is colored on a terminal and plain TSV otherwise:
  id, createdAt, system, expression, result-or-error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := history.OpenDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if wipe {
				n, err := db.Clear()
				if err != nil {
					return fmt.Errorf("clear history: %w", err)
				}
				logger.Info(cmd.Context(), "history cleared", zap.Int64("removed", n))
				fmt.Fprintf(os.Stderr, "Removed %d entries.\n", n)
				return nil
			}

			if !cmd.Flags().Changed("limit") {
				limit = cfg.HistoryLimit
			}

			entries, err := db.Recent(history.Query{
				System:     system,
				FailedOnly: failed,
				Since:      since,
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintln(os.Stderr, "No history.")
				return nil
			}

			color := term.IsTerminal(int(os.Stdout.Fd()))
			writeHistory(cmd.OutOrStdout(), entries, color)
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", "", "Filter by numeral system (arabic/roman)")
	cmd.Flags().BoolVar(&failed, "failed", false, "Only show evaluations that failed")
	cmd.Flags().StringVar(&since, "since", "", "Only show evaluations since date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries (default from config history_limit)")
	cmd.Flags().BoolVar(&wipe, "clear", false, "Delete all stored history")

	return cmd
}

func writeHistory(w io.Writer, entries []history.Entry, color bool) {
	for _, e := range entries {
		expr := strings.ReplaceAll(e.Expression, "\t", " ")
		created := e.CreatedAt.Local().Format("2006-01-02 15:04:05")

		outcome := e.Result
		if e.Failed() {
			outcome = "error: " + e.Error
		}

		if !color {
			system := e.System
			if system == "" {
				system = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, created, system, expr, outcome)
			continue
		}

		if e.Failed() {
			outcome = hColorBoldRed + outcome + hColorReset
		}
		fmt.Fprintf(w, "%d\t%s%s%s\t%s\t%s\t%s\n",
			e.ID,
			hColorDim, created, hColorReset,
			colorizeSystem(e.System),
			expr,
			outcome,
		)
	}
}
