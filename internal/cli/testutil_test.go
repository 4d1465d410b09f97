package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv provides an isolated config directory and catalog location.
type testEnv struct {
	t         *testing.T
	tempDir   string
	configDir string
	catalog   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tempDir, "data"))
	t.Setenv("CATALOGER_CONFIG_DIR", "")
	t.Setenv("CATALOGER_CATALOG", "")
	t.Setenv("CATALOGER_LOG_LEVEL", "")
	t.Setenv("CATALOGER_LOG_FILE", "")
	return &testEnv{
		t:         t,
		tempDir:   tempDir,
		configDir: filepath.Join(tempDir, "config"),
		catalog:   filepath.Join(tempDir, "games.db"),
	}
}

type cmdResult struct {
	stdout   string
	stderr   string
	exitCode int
	err      error
}

// run executes the root command in process with the env's config dir and
// the given stdin.
func (e *testEnv) run(stdin string, args ...string) cmdResult {
	e.t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append([]string{"--config-dir", e.configDir}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	closeLogger()
	return cmdResult{
		stdout:   stdout.String(),
		stderr:   stderr.String(),
		exitCode: exitCode(err),
		err:      err,
	}
}

// runCatalog runs a command against the env's catalog file.
func (e *testEnv) runCatalog(args ...string) cmdResult {
	e.t.Helper()
	return e.run("", append([]string{"--catalog", e.catalog}, args...)...)
}

func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	res := e.runCatalog(args...)
	if res.exitCode != exitSuccess {
		e.t.Fatalf("cataloger %v failed with exit code %d: %v\nstdout: %s",
			args, res.exitCode, res.err, res.stdout)
	}
	return res
}

func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.tempDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func parseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", s, err)
	}
	return v
}

func entryArgs(title, played, completed, platform, genre string) []string {
	return []string{
		"--title", title,
		"--played", played,
		"--completed", completed,
		"--platform", platform,
		"--genre", genre,
	}
}
