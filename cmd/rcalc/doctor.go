package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/roman-calc/internal/history"
	"github.com/Zuo-Peng/roman-calc/internal/numeral"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: show config, verify history DB and the numeral engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fmt.Println("=== Config ===")
			if cfg.Path == "" {
				fmt.Println("  File: (none, using defaults)")
			} else {
				fmt.Printf("  File: %s\n", cfg.Path)
			}
			fmt.Printf("  Environment: %s\n", cfg.Environment)
			fmt.Printf("  History: %v (limit %d)\n", cfg.History, cfg.HistoryLimit)

			fmt.Println("\n=== Numeral engine ===")
			if n, err := selfTest(); err != nil {
				fmt.Printf("  Round-trip: FAILED at %d: %v\n", n, err)
			} else {
				fmt.Printf("  Round-trip 1..%d: OK\n", numeral.MaxRoman)
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (created on first evaluation)")
				return nil
			}

			db, err := history.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			count, err := db.Count()
			if err != nil {
				return fmt.Errorf("count evaluations: %w", err)
			}
			sessions, err := db.SessionCount()
			if err != nil {
				return fmt.Errorf("count sessions: %w", err)
			}
			ver, err := db.SchemaVersion()
			if err != nil {
				return fmt.Errorf("schema version: %w", err)
			}

			fmt.Printf("  Schema: v%s\n", ver)
			fmt.Printf("  Evaluations: %d\n", count)
			fmt.Printf("  Sessions:    %d\n", sessions)

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeKB := float64(info.Size()) / 1024
				fmt.Printf("\n=== DB Size: %.1f KB ===\n", sizeKB)
			}

			return nil
		},
	}
}

// selfTest renders and re-parses every representable value.
func selfTest() (int, error) {
	for n := 1; n <= numeral.MaxRoman; n++ {
		s, err := numeral.Format(n)
		if err != nil {
			return n, err
		}
		got, err := numeral.Parse(s)
		if err != nil {
			return n, err
		}
		if got != n {
			return n, fmt.Errorf("%s parsed as %d", s, got)
		}
	}
	return 0, nil
}
