package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/meshstack-ai/mesh-cli/internal/testutil"
)

func TestFindEnvFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	envPath := filepath.Join(root, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("MESH_API_KEY=test\n"), 0600))

	found, err := findEnvFile(nested, ".env")
	require.NoError(t, err)
	require.Equal(t, envPath, found)
}

func TestFindEnvFileMissing(t *testing.T) {
	_, err := findEnvFile(t.TempDir(), ".env-that-does-not-exist")
	require.Error(t, err)
}

func TestLoadEnvExplicitPath(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(envPath, []byte("MESH_TEST_LOAD_VAR=loaded\n"), 0600))

	// godotenv never overrides variables that are already set, so make sure
	// the test starts from an unset state (t.Setenv registers the restore).
	t.Setenv("MESH_TEST_LOAD_VAR", "sentinel")
	require.NoError(t, os.Unsetenv("MESH_TEST_LOAD_VAR"))

	require.NoError(t, LoadEnv(envPath))
	require.Equal(t, "loaded", os.Getenv("MESH_TEST_LOAD_VAR"))
}

func TestSettingsNewDefaultsProjectRootToCwd(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)

	v := viper.New()
	s, err := New(testutil.NewTestLogger(), v)
	require.NoError(t, err)

	// macOS resolves TempDir through symlinks, so compare resolved paths.
	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(s.ProjectRoot)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestSettingsNewHonorsProjectRootFlag(t *testing.T) {
	v := viper.New()
	v.Set(Flags.ProjectRoot.Name, "/some/project")

	s, err := New(testutil.NewTestLogger(), v)
	require.NoError(t, err)
	require.Equal(t, "/some/project", s.ProjectRoot)
}
