package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/ostepgo/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsTenLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, nil)

	// --- Assert ---
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 10, "expected exactly ten output lines")
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("(%d) p: %d", os.Getpid(), i+1), line)
	}
	assert.Empty(t, errOut.String(), "nothing should be logged at the default level")
}

func TestRun_ShowAddress(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"--show-address", "--iterations", "1"})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "address pointed to by p: 0x")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err := run(context.Background(), out, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when help is requested")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Interrupted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	err := run(ctx, out, &bytes.Buffer{}, []string{"--interval", "1h"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitInterrupted, exitErr.Code)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRun_DebugLogsGoToErrorStream(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err := run(context.Background(), out, errOut, []string{"--log-level", "debug", "--log-format", "json", "--iterations", "2"})

	require.NoError(t, err)
	assert.NotContains(t, out.String(), "msg")
	assert.Contains(t, errOut.String(), `"msg":"Counter finished."`)
}

func TestRun_ConfigFileAndHealthcheck(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "mem.hcl")
	content := "counter {\n  iterations = 4\n  start = 20\n  show_address = true\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")

	// Reserve a free port, then release it for the health check server.
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	out := &bytes.Buffer{}
	args := []string{"--config", path, "--iterations", "3", "--healthcheck-port", fmt.Sprint(port)}

	// --- Act ---
	err = run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4, "address line plus three values")
	assert.Contains(t, lines[0], "address pointed to by p: 0x")
	pid := os.Getpid()
	assert.Equal(t, []string{
		fmt.Sprintf("(%d) p: 21", pid),
		fmt.Sprintf("(%d) p: 22", pid),
		fmt.Sprintf("(%d) p: 23", pid),
	}, lines[1:])
}

func TestRun_BadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mem.hcl")
	require.NoError(t, os.WriteFile(path, []byte("counter {\n  iterations = 0\n}\n"), 0600))

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"--config", path})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
	assert.Contains(t, exitErr.Message, "iterations must be greater than 0")
	assert.Empty(t, out.String())
}
