package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/isbncheck/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("a", "b.txt")
	assert.Equal(t, filepath.Join(env.RootDir(), "a", "b.txt"), path)
	assert.Equal(t, env.RootDir(), env.Path())
}

func TestTestEnv_WriteReadFileString(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("nested/dir/file.txt", "hello")
	assert.True(t, env.FileExists("nested/dir/file.txt"))
	assert.False(t, env.FileExists("missing.txt"))
	assert.Equal(t, "hello", env.ReadFileString("nested/dir/file.txt"))
}

func TestTestEnv_Chdir(t *testing.T) {
	env := NewTestEnv(t)
	orig, err := os.Getwd()
	require.NoError(t, err)

	env.WriteFileString("sub/.keep", "")

	t.Run("inside", func(t *testing.T) {
		inner := &TestEnv{t: t, rootDir: env.RootDir()}
		inner.Chdir("sub")
		wd, err := os.Getwd()
		require.NoError(t, err)
		resolvedWd, _ := filepath.EvalSymlinks(wd)
		resolvedSub, _ := filepath.EvalSymlinks(env.Path("sub"))
		assert.Equal(t, resolvedSub, resolvedWd)
	})

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, orig, wd)
}

func TestGoldenHelper_AssertGoldenString(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFileString("golden/out.txt", "expected\n")

	g := NewGoldenHelper(t, env.Path("golden"))
	if g.updateMode {
		t.Skip("golden update mode enabled")
	}
	g.AssertGoldenString("out.txt", "expected\n")
}

func TestSetTestConfig(t *testing.T) {
	saved := SaveConfigState()
	t.Cleanup(func() { RestoreConfigState(saved) })

	config.OutputFormat = "json"
	config.Color = true
	viper.Set("strict", true)

	t.Run("inner", func(t *testing.T) {
		env := NewTestEnv(t)
		SetTestConfig(t, env)

		assert.Equal(t, "text", config.OutputFormat)
		assert.False(t, config.Color)
		assert.False(t, config.Strict)
		assert.Equal(t, env.Path("history.db"), config.HistoryDBFile)
	})

	assert.Equal(t, "json", config.OutputFormat)
	assert.True(t, config.Color)
	viper.Reset()
}
