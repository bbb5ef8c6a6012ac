package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mazewalk/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleHCL = `
maze {
  root = "0"
}

leaf "2" {}
leaf "4" {}
leaf "5" {}
leaf "8" {}

branch "3" {
  left  = node["4"]
  right = node["5"]
}
branch "1" {
  left  = node["2"]
  right = node["3"]
}
branch "7" {
  left  = "5"
  right = "8"
}
branch "6" {
  left  = node["3"]
  right = node["7"]
}
branch "0" {
  left  = node["1"]
  right = node["6"]
}
`

// ignoreSource compares definitions without the file they came from.
var ignoreSource = cmpopts.IgnoreFields(config.NodeDef{}, "Source")

func TestLoad_SampleMaze(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	dir := t.TempDir()
	path := writeFile(t, dir, "maze.hcl", sampleHCL)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.NoError(t, model.Validate())
	assert.Equal(t, "0", model.Root)
	assert.Equal(t, []string{path}, model.Sources)

	want := map[string]*config.NodeDef{}
	for _, d := range config.Sample().Nodes {
		cp := *d
		if cp.Left == "" {
			cp.Kind = "leaf"
		} else {
			cp.Kind = "branch"
		}
		want[cp.Label] = &cp
	}
	got := map[string]*config.NodeDef{}
	for _, d := range model.Nodes {
		got[d.Label] = d
		assert.Equal(t, path, d.Source)
	}
	if diff := cmp.Diff(want, got, ignoreSource); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ReferencesAcrossFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "leaves.hcl", `
leaf "a" {}
leaf "b" {}
`)
	writeFile(t, dir, "nested/root.hcl", `
maze {
  root = "r"
}
branch "r" {
  left  = node["a"]
  right = node.b
}
`)
	writeFile(t, dir, "ignored.yaml", "root: nope\n")

	model, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, "r", model.Root)
	assert.Len(t, model.Sources, 2)
	assert.ElementsMatch(t, []string{"a", "b", "r"}, model.Labels())
	for _, d := range model.Nodes {
		if d.Label == "r" {
			assert.Equal(t, "a", d.Left)
			assert.Equal(t, "b", d.Right)
		}
	}
}

func TestLoad_NumericChildIsConverted(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "maze.hcl", `
leaf "4" {}
branch "3" {
  left  = 4
  right = "4"
}
`)

	model, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, model.Nodes, 2)
	assert.Equal(t, "4", model.Nodes[1].Left)
}

func TestLoad_UnknownReference(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "maze.hcl", `
leaf "a" {}
branch "r" {
  left  = node["a"]
  right = node["missing"]
}
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "in branch 'r'")
	assert.Contains(t, err.Error(), "right")
	assert.Contains(t, err.Error(), "Invalid index")
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax error", `branch "r" {`, "failed to parse HCL file"},
		{"unknown block", `edge "x" {}`, "failed to decode HCL file"},
		{"leaf with arguments", `leaf "x" { left = "y" }`, "failed to decode HCL file"},
		{"branch missing right", `branch "x" { left = "y" }`, "failed to decode HCL file"},
		{"branch with unknown argument", `branch "x" {
  left   = "y"
  right  = "y"
  middle = "y"
}`, "Unsupported argument"},
		{"duplicate maze block", "maze {\n root = \"a\"\n}\nmaze {\n root = \"b\"\n}\n", "failed to decode HCL file"},
		{"null child", "leaf \"a\" {}\nbranch \"r\" {\n left = null\n right = \"a\"\n}\n", "must not be null"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "maze.hcl", tc.content)

			_, err := NewLoader().Load(context.Background(), path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingChildIsReportedAtDecode(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "maze.hcl", `
leaf "y" {}
branch "x" {
  left = node["y"]
}
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file")
	assert.Contains(t, err.Error(), "Missing required argument")
	assert.Contains(t, err.Error(), `"right"`)
	assert.NotContains(t, err.Error(), "must not be null")
}

func TestDeclare_ResolvesAgainstExternalLabels(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "maze.hcl", `
maze {
  root = "r"
}
branch "r" {
  left  = node["a"]
  right = node["b"]
}
`)
	ctx := context.Background()

	decl, err := NewLoader().Declare(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"r"}, decl.Labels)

	// Labels declared elsewhere are unknown to the HCL files alone.
	_, err = decl.Resolve(ctx, decl.Labels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid index")

	model, err := decl.Resolve(ctx, []string{"r", "a", "b"})
	require.NoError(t, err)
	require.Len(t, model.Nodes, 1)
	assert.Equal(t, "a", model.Nodes[0].Left)
	assert.Equal(t, "b", model.Nodes[0].Right)
}

func TestLoad_ConflictingRoots(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", "maze {\n root = \"a\"\n}\nleaf \"a\" {}\n")
	writeFile(t, dir, "b.hcl", "maze {\n root = \"b\"\n}\nleaf \"b\" {}\n")

	_, err := NewLoader().Load(context.Background(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting maze roots")
}

func TestLoad_NoFilesGivesEmptyModel(t *testing.T) {
	t.Parallel()
	model, err := NewLoader().Load(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, model.Nodes)
	assert.Empty(t, model.Sources)
}
