package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zuo-Peng/roman-calc/internal/config"
	"github.com/Zuo-Peng/roman-calc/internal/history"
	"github.com/Zuo-Peng/roman-calc/internal/repl"
	"github.com/Zuo-Peng/roman-calc/pkg/logger"
)

var version = "dev"

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:           "rcalc",
		Short:         "Calculator for Arabic and Roman numerals (1..3999)",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, false)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(replCmd())
	rootCmd.AddCommand(evalCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(doctorCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up logging from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Setup(cfg.Environment, verbose)
	logger.Debug(cmd.Context(), "config loaded",
		zap.String("path", cfg.Path),
		zap.String("db", cfg.DBPath),
		zap.Bool("history", cfg.History),
	)
	return cfg, nil
}

// openRecorder opens the history database when history is enabled. A
// database that cannot be opened only disables recording. On success the
// command's context logger carries the session id.
func openRecorder(cmd *cobra.Command, cfg *config.Config) (repl.Recorder, func()) {
	if !cfg.History {
		return nil, func() {}
	}

	db, err := history.OpenDB(cfg.DBPath)
	if err != nil {
		logger.Warn(cmd.Context(), "history disabled: could not open database",
			zap.String("path", cfg.DBPath), zap.Error(err))
		return nil, func() {}
	}

	rec := history.NewRecorder(db)
	// every later log line of this command names the session
	cmd.SetContext(logger.WithFields(cmd.Context(), zap.String("session", rec.SessionID())))
	logger.Debug(cmd.Context(), "recording history", zap.String("path", cfg.DBPath))
	return rec, func() {
		if err := db.Close(); err != nil {
			logger.Warn(cmd.Context(), "could not close history database", zap.Error(err))
		}
	}
}
