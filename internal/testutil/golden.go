package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GoldenHelper compares generated output with files under a golden
// directory. Setting UPDATE_GOLDEN=true rewrites the golden files instead.
type GoldenHelper struct {
	t          *testing.T
	goldenDir  string
	updateMode bool
}

// NewGoldenHelper creates a new golden file helper.
func NewGoldenHelper(t *testing.T, goldenDir string) *GoldenHelper {
	t.Helper()

	return &GoldenHelper{
		t:          t,
		goldenDir:  goldenDir,
		updateMode: os.Getenv("UPDATE_GOLDEN") == "true",
	}
}

// AssertGoldenString compares actual with the named golden file.
func (g *GoldenHelper) AssertGoldenString(name, actual string) {
	g.t.Helper()

	goldenPath := filepath.Join(g.goldenDir, name)

	if g.updateMode {
		require.NoError(g.t, os.MkdirAll(filepath.Dir(goldenPath), 0o755), "failed to create golden file directory")
		require.NoError(g.t, os.WriteFile(goldenPath, []byte(actual), 0o644), "failed to update golden file")
		g.t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	golden, err := os.ReadFile(goldenPath)
	require.NoError(g.t, err, "failed to read golden file %s", goldenPath)

	assert.Equal(g.t, string(golden), actual, "content does not match golden file %s", name)
}
