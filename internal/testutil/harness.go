// Package testutil provides the shared harness for end-to-end tests: it
// writes maze files to a temporary directory, runs the application over
// them and captures everything it prints.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/mazewalk/internal/app"
	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/hcl"
	"github.com/vk/mazewalk/internal/yamlconfig"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
	Dir    string
}

// Loader returns the loader the command line uses: HCL and YAML merged.
func Loader() config.Loader {
	return config.NewMultiLoader(hcl.NewLoader(), yamlconfig.NewLoader())
}

// RunIntegrationTest runs the application with a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, mutate)
}

// RunIntegrationTestWithContext writes files (relative path to content)
// into a fresh directory, points the application at that directory and
// runs it. mutate may adjust the default configuration before it is
// validated; it must not set MazePaths. With no files the built-in sample
// maze is used.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(files[name]), 0o644))
	}

	cfg := app.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if len(files) > 0 {
		cfg.MazePaths = []string{dir}
	}
	validated, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: fmt.Errorf("invalid configuration: %w", err), Dir: dir}
	}

	out := &SafeBuffer{}
	testApp, err := app.NewApp(out, validated, Loader())
	if err != nil {
		return &HarnessResult{Output: out.String(), Err: err, Dir: dir}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("MAZEWALK_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
	}

	return &HarnessResult{
		Output: out.String(),
		Err:    runErr,
		App:    testApp,
		Dir:    dir,
	}
}
