package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshstack-ai/mesh-cli/internal/testutil"
)

func TestGitBootstrap(t *testing.T) {
	git := NewGit(testutil.NewTestLogger())
	if !git.Available() {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mesh.yaml"), []byte("kind: Project\n"), 0600))

	require.NoError(t, git.InitRepository(dir))
	require.DirExists(t, filepath.Join(dir, ".git"))

	require.NoError(t, git.CommitAll(dir, "Initial project scaffold"))
}
