package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optcli/internal/config"
)

func testConfig(t *testing.T, input, output string) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Files.Input = input
	cfg.Files.Output = output
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "feed.csv")
	output := filepath.Join(dir, "output.csv")

	// Two observations; the first is missing its bid and gets it filled
	// from the second.
	feed := strings.Join([]string{
		"description;strike;kind;bid;ask;underlying_bid;underlying_ask;created_at",
		"GFGC1033OC;1033;CALL;;178,999;1180,5;1184,85;10/18/2023 12:18",
		"GFGC1033OC;1033;CALL;130;180;1181;1185;10/18/2023 12:19",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(input, []byte(feed), 0o644))

	require.NoError(t, run(testConfig(t, input, output), discardLogger()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3, "header plus one row per observation")

	assert.True(t, strings.HasPrefix(lines[0], "Description,Strike,Kind,Bid,Ask,"))

	// Row 1: bid filled from the nearest valid neighbor (130).
	fields := strings.Split(lines[1], ",")
	require.GreaterOrEqual(t, len(fields), 9)
	assert.Equal(t, "130", fields[3])
	assert.NotEmpty(t, fields[8], "price must be derived from the filled bid")

	fields2 := strings.Split(lines[2], ",")
	assert.Equal(t, "130", fields2[3])
}

func TestRunMissingInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.csv"))

	err := run(cfg, discardLogger())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.Files.Output)
	assert.True(t, os.IsNotExist(statErr), "no output on a fatal input error")
}

func TestRunRejectsMalformedExpiration(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, filepath.Join(dir, "feed.csv"), filepath.Join(dir, "out.csv"))
	cfg.Option.Expiration = "2023-10-20"

	assert.Error(t, run(cfg, discardLogger()))
}
