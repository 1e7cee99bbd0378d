package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshstack-ai/mesh-cli/internal/testutil"
)

func TestRemoveRedundantKeepFiles(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTemplateTree(t, root, map[string]string{
		"full/.gitkeep":        "",
		"full/agent.yaml":      "name: a\n",
		"empty/.gitkeep":       "",
		"nested/sub/.gitkeep":  "",
		"nested/sub/real.yaml": "x: 1\n",
	})

	require.NoError(t, RemoveRedundantKeepFiles(testutil.NewTestLogger(), root))

	// Directories with real content lose the placeholder.
	require.NoFileExists(t, filepath.Join(root, "full", ".gitkeep"))
	require.NoFileExists(t, filepath.Join(root, "nested", "sub", ".gitkeep"))

	// Still-empty directories keep it.
	require.FileExists(t, filepath.Join(root, "empty", ".gitkeep"))
}

func TestRemoveRedundantKeepFilesNoPlaceholders(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0755))
	require.NoError(t, RemoveRedundantKeepFiles(testutil.NewTestLogger(), root))
}
