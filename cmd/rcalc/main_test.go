package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Zuo-Peng/roman-calc/internal/config"
	"github.com/Zuo-Peng/roman-calc/internal/history"
	"github.com/Zuo-Peng/roman-calc/internal/repl"
	"github.com/Zuo-Peng/roman-calc/pkg/logger"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, ".config", "rcalc", "history.db")
}

func TestEvalCommand(t *testing.T) {
	dbPath := isolate(t)

	out, err := execute(t, evalCmd(), "X + V")
	require.NoError(t, err)
	require.Equal(t, "XV\n", out)

	out, err = execute(t, evalCmd(), "12", "*", "3")
	require.NoError(t, err)
	require.Equal(t, "36\n", out)

	_, err = execute(t, evalCmd(), "I", "-", "V")
	require.EqualError(t, err, "result -4 is non-positive, thus cannot be represented by roman numbers")

	db, err := history.OpenDB(dbPath)
	require.NoError(t, err)
	defer db.Close()

	entries, err := db.Recent(history.Query{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "I - V", entries[0].Expression)
	require.True(t, entries[0].Failed())
}

func TestEvalCommandWithoutHistory(t *testing.T) {
	dbPath := isolate(t)
	t.Setenv("RCALC_HISTORY", "false")

	out, err := execute(t, evalCmd(), "2 + 2")
	require.NoError(t, err)
	require.Equal(t, "4\n", out)
	require.NoFileExists(t, dbPath)
}

func TestConvertCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, convertCmd(), "1999")
	require.NoError(t, err)
	require.Equal(t, "MCMXCIX\n", out)

	out, err = execute(t, convertCmd(), "MMXXVI")
	require.NoError(t, err)
	require.Equal(t, "2026\n", out)

	_, err = execute(t, convertCmd(), "VV")
	require.ErrorContains(t, err, `invalid roman number "VV"`)
}

func TestReplCommandPlain(t *testing.T) {
	isolate(t)

	cmd := replCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("X * X\n2 + II\n\n"))
	cmd.SetArgs([]string{"--plain"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	require.Contains(t, out.String(), "In: Out: C\n")
	require.Contains(t, out.String(), "In: numbers must be of same number system\n")
}

func TestWriteHistory(t *testing.T) {
	created := time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)
	entries := []history.Entry{
		{ID: 2, Expression: "2 % 2", Error: `invalid operation "%"`, CreatedAt: created},
		{ID: 1, Expression: "X + V", System: "roman", Result: "XV", CreatedAt: created},
	}

	var plain bytes.Buffer
	writeHistory(&plain, entries, false)
	require.Equal(t,
		"2\t2026-10-17 09:30:00\t-\t2 % 2\terror: invalid operation \"%\"\n"+
			"1\t2026-10-17 09:30:00\troman\tX + V\tXV\n",
		plain.String())

	var colored bytes.Buffer
	writeHistory(&colored, entries, true)
	require.Contains(t, colored.String(), hColorBoldRed+`error: invalid operation "%"`+hColorReset)
	require.Contains(t, colored.String(), hColorBlue+"roman"+hColorReset)
}

func TestSelfTest(t *testing.T) {
	n, err := selfTest()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestOpenRecorderTagsLogsWithSession(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cmd := &cobra.Command{}
	cmd.SetContext(logger.WithLogger(context.Background(), zap.New(core)))

	cfg := &config.Config{History: true, DBPath: filepath.Join(t.TempDir(), "history.db")}
	rec, closeRec := openRecorder(cmd, cfg)
	defer closeRec()
	require.NotNil(t, rec)
	session := rec.(*history.Recorder).SessionID()

	_, err := repl.Eval(cmd.Context(), "I - V", rec)
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "recording history", entries[0].Message)
	require.Equal(t, "evaluation failed", entries[1].Message)
	for _, e := range entries {
		require.Equal(t, session, e.ContextMap()["session"])
	}
}

func TestOpenRecorderDisabled(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	rec, closeRec := openRecorder(cmd, &config.Config{History: false})
	defer closeRec()
	require.Nil(t, rec)
}
