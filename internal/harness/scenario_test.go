package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadScenario_FromTestdata(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "cart-merge-and-update.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cart-merge-and-update", scenario.Name)
	assert.NotEmpty(t, scenario.Description)
	require.Len(t, scenario.Steps, 9)

	first := scenario.Steps[0]
	assert.Equal(t, OpAdd, first.Op)
	assert.Equal(t, "w001", first.Product)
	require.NotNil(t, first.Expect)
	require.NotNil(t, first.Expect.Total)
	assert.Equal(t, 2499, *first.Expect.Total)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scenario file")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "description: d\nsteps:\n  - op: clear\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: s\nsteps:\n  - op: clear\n",
			wantErr: "description is required",
		},
		{
			name:    "no steps",
			yaml:    "name: s\ndescription: d\nsteps: []\n",
			wantErr: "steps list is required",
		},
		{
			name:    "unknown op",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: purchase\n",
			wantErr: `unknown op "purchase"`,
		},
		{
			name:    "add without product",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: add\n    quantity: 1\n",
			wantErr: "product is required for add",
		},
		{
			name:    "remove without product",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: remove\n",
			wantErr: "product is required for remove",
		},
		{
			name:    "query without criteria",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: query\n",
			wantErr: "criteria is required for query",
		},
		{
			name:    "query with bad sort key",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: query\n    criteria: {sort_by: cheapest}\n",
			wantErr: `unknown sort key "cheapest"`,
		},
		{
			name:    "expect_ids on cart step",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: clear\n    expect_ids: [w001]\n",
			wantErr: "expect_ids is only valid on query steps",
		},
		{
			name:    "expect on query step",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: query\n    criteria: {search: saree}\n    expect: {lines: 1}\n",
			wantErr: "expect is only valid on cart steps",
		},
		{
			name:    "unknown field rejected",
			yaml:    "name: s\ndescription: d\nsteps:\n  - op: clear\n    expects: {lines: 1}\n",
			wantErr: "parse scenario YAML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
