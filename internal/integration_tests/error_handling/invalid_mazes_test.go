package error_handling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mazewalk/internal/app"
	"github.com/vk/mazewalk/internal/testutil"
)

// Test for: maze definitions the application must reject before exploring
func TestInvalidMazes_AreRejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		files    map[string]string
		mutate   func(*app.Config)
		wantErrs []string
	}{
		{
			name: "undefined child",
			files: map[string]string{"maze.yaml": `
root: a
nodes:
  - {label: a, left: b, right: q}
  - label: b
`},
			wantErrs: []string{"failed to build maze", "right child 'q' is not defined"},
		},
		{
			name: "undefined root",
			files: map[string]string{"maze.yaml": `
root: nowhere
nodes:
  - label: a
`},
			wantErrs: []string{"root 'nowhere' is not defined"},
		},
		{
			name: "duplicate label",
			files: map[string]string{"maze.yaml": `
root: a
nodes:
  - {label: a, left: b, right: b}
  - label: b
  - label: b
`},
			wantErrs: []string{"node 'b'", "duplicate definition"},
		},
		{
			name: "branch with one child",
			files: map[string]string{"maze.yaml": `
root: a
nodes:
  - {label: a, kind: branch, left: b}
  - label: b
`},
			wantErrs: []string{"invalid maze definition", "Right: a branch needs both a left and a right child"},
		},
		{
			name: "leaf with a child",
			files: map[string]string{"maze.yaml": `
root: a
nodes:
  - {label: a, kind: leaf, left: b}
  - label: b
`},
			wantErrs: []string{"Left: a leaf cannot have children"},
		},
		{
			name: "unknown node kind",
			files: map[string]string{"maze.yaml": `
root: a
nodes:
  - {label: a, kind: tunnel}
`},
			wantErrs: []string{"must be one of [leaf branch], got 'tunnel'"},
		},
		{
			name: "unknown yaml field",
			files: map[string]string{"maze.yaml": `
root: a
nodes:
  - {label: a, colour: red}
`},
			wantErrs: []string{"failed to decode YAML file", "field colour not found"},
		},
		{
			name: "invalid hcl syntax",
			files: map[string]string{"main.hcl": `
branch "a" {
  left = node["b"]
`},
			wantErrs: []string{"failed to load maze", "failed to parse HCL file"},
		},
		{
			name: "hcl reference to an undeclared node",
			files: map[string]string{"main.hcl": `
maze {
  root = "a"
}
branch "a" {
  left  = node["b"]
  right = node["c"]
}
leaf "b" {}
`},
			wantErrs: []string{"in branch 'a'", "right:"},
		},
		{
			name: "conflicting roots across files",
			files: map[string]string{
				"one.hcl":  "maze {\n  root = \"a\"\n}\nleaf \"a\" {}\n",
				"two.yaml": "root: b\nnodes:\n  - label: b\n",
			},
			wantErrs: []string{"conflicting maze roots 'a' and 'b'"},
		},
		{
			name:     "unknown root override",
			files:    map[string]string{"maze.yaml": "root: a\nnodes:\n  - label: a\n"},
			mutate:   func(c *app.Config) { c.Root = "zz" },
			wantErrs: []string{"no node labelled 'zz'"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := testutil.RunIntegrationTest(t, tc.files, tc.mutate)

			// --- Assert ---
			require.Error(t, result.Err)
			for _, want := range tc.wantErrs {
				assert.Contains(t, result.Err.Error(), want)
			}
			assert.NotContains(t, result.Output, "Trace of exploration")
		})
	}
}

// Test for: an empty directory is not silently treated as an empty maze
func TestInvalidMazes_NoFiles(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"README.md": "# mazes"}, nil)

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "no maze files")
}
