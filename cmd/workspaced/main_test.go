package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionFlag(t *testing.T) {
	// Save original args and flags
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	defer flag.CommandLine.Init("test", flag.ContinueOnError)

	// Reset flag.CommandLine for testing
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	os.Args = []string{"cmd", "-version"}

	testVersion := flag.Bool("version", false, "Print version and exit")
	_ = flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if !*testVersion {
		t.Error("Expected version flag to be true")
	}
}

func TestDefaultFlags(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	testVersion := flag.Bool("version", false, "Print version and exit")
	testDebug := flag.Bool("debug", false, "Enable debug logging")
	testHTTP := flag.Bool("http", false, "Enable HTTP/SSE transport instead of stdio")

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}

	flag.Parse()

	if *testVersion {
		t.Error("Expected version flag to be false by default")
	}
	if *testDebug {
		t.Error("Expected debug flag to be false by default")
	}
	if *testHTTP {
		t.Error("Expected http flag to be false by default")
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	oldPath := *configPath
	defer func() { *configPath = oldPath }()
	*configPath = filepath.Join(t.TempDir(), "missing.yaml")

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	err := run(logger)
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "config") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRun_BadStateDBPath(t *testing.T) {
	oldPath := *configPath
	defer func() { *configPath = oldPath }()
	*configPath = ""

	t.Setenv("WORKSPACE_ROOT", t.TempDir())
	t.Setenv("STATE_DB", filepath.Join(t.TempDir(), "no-such-dir", "state.db"))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	err := run(logger)
	if err == nil {
		t.Fatal("Expected error for unopenable state database")
	}
	if !strings.Contains(err.Error(), "state database") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestConstants(t *testing.T) {
	if cleanupInterval.Minutes() != 5 {
		t.Errorf("Expected cleanupInterval to be 5 minutes, got %v", cleanupInterval.Minutes())
	}
}
