// Package integration provides end-to-end tests for the breadcrumbs store
// and CLI.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meninoebom/breadcrumbs/internal/sqlite"
	"github.com/meninoebom/breadcrumbs/pkg/types"
)

// setupStore creates a backend attached to an isolated temp directory.
// Each test gets its own store for isolation.
func setupStore(t *testing.T) (*sqlite.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

// testEnv provides an isolated CLI environment with its own config and data
// directory.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// newTestEnv creates a new isolated CLI environment.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build breadcrumbs: %v", buildErr)
	}
	if breadcrumbsBin == "" {
		t.Fatal("breadcrumbs binary not built")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	return &testEnv{t: t, configDir: configDir, dataDir: dataDir}
}

// cmdResult holds the result of a CLI command execution.
type cmdResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// run executes the breadcrumbs CLI with the given arguments.
func (e *testEnv) run(args ...string) cmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	cmd := exec.Command(breadcrumbsBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			e.t.Fatalf("failed to run breadcrumbs: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), exitCode: exitCode}
}

// mustRun executes the CLI and fails the test if it returns non-zero.
func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	result := e.run(args...)
	if result.exitCode != 0 {
		e.t.Fatalf("breadcrumbs %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.exitCode, result.stdout, result.stderr)
	}
	return result
}

// parseJSON parses JSON output into the target type.
func parseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &result), "parse JSON %q", jsonStr)
	return result
}

// readJSONLFile reads a JSONL file (one JSON object per line) into a slice.
func readJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var results []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record T
		require.NoError(t, json.Unmarshal(line, &record), "parse JSONL line in %s", path)
		results = append(results, record)
	}
	require.NoError(t, scanner.Err())
	return results
}
