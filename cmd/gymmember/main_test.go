package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymnexus/internal/console"
	"gymnexus/internal/membership"
)

func TestParseScriptDefaultsToDisplay(t *testing.T) {
	cmds, err := parseScript(nil)
	require.NoError(t, err)
	assert.Equal(t, []console.Command{console.CommandDisplay}, cmds)
}

func TestParseScriptRejectsUnknownCommand(t *testing.T) {
	_, err := parseScript([]string{"activate", "teleport"})
	assert.ErrorIs(t, err, console.ErrUnknownCommand)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	member := membership.NewStandard(1, "Sam", "NYC", "555", "s@x.com", "F", "1990-01-01", "2024-01-01")
	logg := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(context.Background(), &out, logg, member, []console.Command{console.CommandActivate, console.CommandDisplay})
	require.NoError(t, err)

	assert.Equal(t, member.Format()+"\n", out.String())
	assert.True(t, member.Active())
}

func TestStopTelemetryLogsError(t *testing.T) {
	var buf bytes.Buffer
	logg := slog.New(slog.NewJSONHandler(&buf, nil))

	stopTelemetry(context.Background(), func(context.Context) error {
		return errors.New("exporter unreachable")
	}, logg)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "telemetry shutdown failed", entry["msg"])
	assert.Equal(t, "exporter unreachable", entry["error"])
}

func TestStopTelemetryQuietOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	logg := slog.New(slog.NewJSONHandler(&buf, nil))

	stopTelemetry(context.Background(), func(context.Context) error { return nil }, logg)

	assert.Empty(t, buf.String())
}
