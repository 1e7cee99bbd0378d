package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTemplateTree lays out a template fixture under dir. Keys are
// slash-separated relative paths; a key ending in "/" creates an empty
// directory.
func WriteTemplateTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(target, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, os.WriteFile(target, []byte(content), 0600))
	}
}
