// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that run the built binary:
// argument parsing -> check extension -> tag package -> filesystem.
//
// Exit codes and the split between stdout and stderr are the contract with
// scripts, so these tests run a real process rather than calling commands
// in-process. The tag and explain packages carry their own unit tests.

package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the cachedir binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "cachedir-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "cachedir"
		if os.PathSeparator == '\\' {
			binaryName = "cachedir.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	env    []string
}

// newTestEnv creates an empty working directory and a private HOME so the
// audit log and global config never touch the real user files.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, EnvOutput+"=") {
			continue
		}
		e.env = append(e.env, kv)
	}
	e.env = append(e.env, "HOME="+e.home)
	return e
}

// setenv adds a variable to the environment of later runs.
func (e *testEnv) setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}

// result holds one run of the binary.
type result struct {
	stdout string
	stderr string
	code   int
}

// exec runs cachedir with args in the working directory.
func (e *testEnv) exec(args ...string) result {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		require.True(e.t, errors.As(err, &ee), "running %v: %v", args, err)
		code = ee.ExitCode()
	}
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// run executes cachedir and fails the test on a non-zero exit.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	r := e.exec(args...)
	if r.code != 0 {
		e.t.Fatalf("cachedir %v exited %d\nstdout: %s\nstderr: %s", args, r.code, r.stdout, r.stderr)
	}
	return r.stdout
}

// mkdir creates a directory under the working directory.
func (e *testEnv) mkdir(name string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(e.t, os.MkdirAll(p, 0o755))
	return p
}

// writeTag creates name/CACHEDIR.TAG with content.
func (e *testEnv) writeTag(name, content string) {
	e.t.Helper()
	p := e.mkdir(name)
	require.NoError(e.t, os.WriteFile(filepath.Join(p, "CACHEDIR.TAG"), []byte(content), 0o644))
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// testTag is a complete tag file as written by common tools.
const testTag = "Signature: 8a477f597d28d172789f06886806bc55\n" +
	"# This file is a cache directory tag created by cachedir.\n" +
	"# For information about cache directory tags, see:\n" +
	"#\thttps://bford.info/cachedir/\n"
