package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshstack-ai/mesh-cli/internal/testutil"
)

func writeTemplate(t *testing.T, root, name string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for rel, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, rel)), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, rel), []byte(content), 0600))
	}
}

func TestResolvePrefersFirstRoot(t *testing.T) {
	installRoot := t.TempDir()
	devRoot := t.TempDir()
	writeTemplate(t, installRoot, "project", map[string]string{"README.md": "# Installed\n"})
	writeTemplate(t, devRoot, "project", map[string]string{"README.md": "# Dev\n"})

	locator := NewLocatorWithRoots(testutil.NewTestLogger(), installRoot, devRoot)
	require.Equal(t, filepath.Join(installRoot, "project"), locator.Resolve("project"))
}

func TestResolveFallsBackToLaterRoots(t *testing.T) {
	installRoot := t.TempDir()
	devRoot := t.TempDir()
	writeTemplate(t, devRoot, "agent", map[string]string{"agent.template.yaml": "name: {{agentName}}\n"})

	locator := NewLocatorWithRoots(testutil.NewTestLogger(), installRoot, devRoot)
	require.Equal(t, filepath.Join(devRoot, "agent"), locator.Resolve("agent"))
}

func TestResolveAlwaysReturnsAPath(t *testing.T) {
	// Existence failure is deferred to the caller.
	root := t.TempDir()
	locator := NewLocatorWithRoots(testutil.NewTestLogger(), root)
	require.Equal(t, filepath.Join(root, "missing"), locator.Resolve("missing"))
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "project", map[string]string{"README.md": "x\n"})

	locator := NewLocatorWithRoots(testutil.NewTestLogger(), root)
	require.True(t, locator.Exists("project"))
	require.False(t, locator.Exists("missing"))
}

func TestDescribeClassification(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "project", map[string]string{
		"pyproject.toml": "[project]\nname = \"demo\"\n",
		"README.md":      "# Agent project template\n\nDetails follow.\n",
	})
	writeTemplate(t, root, "linter", map[string]string{
		"requirements.txt": "ruff\n",
		"README.md":        "# Lint tool\n",
	})
	writeTemplate(t, root, "agent", map[string]string{
		"agent.template.yaml": "name: {{agentName}}\n",
	})

	locator := NewLocatorWithRoots(testutil.NewTestLogger(), root)

	project := locator.Describe("project")
	require.Equal(t, TypeProject, project.Type)
	require.Equal(t, "Agent project template", project.Description)

	tool := locator.Describe("linter")
	require.Equal(t, TypeTool, tool.Type)
	require.Equal(t, "Lint tool", tool.Description)

	component := locator.Describe("agent")
	require.Equal(t, TypeComponent, component.Type)
	require.Empty(t, component.Description)
}

func TestDescribeFallsBackToPackagingDescription(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "project", map[string]string{
		"pyproject.toml": "[project]\nname = \"demo\"\ndescription = \"Scaffolded agent project\"\n",
	})

	locator := NewLocatorWithRoots(testutil.NewTestLogger(), root)
	info := locator.Describe("project")
	require.Equal(t, TypeProject, info.Type)
	require.Equal(t, "Scaffolded agent project", info.Description)
}

func TestListEnumeratesSorted(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "query", map[string]string{"query.template.yaml": "x\n"})
	writeTemplate(t, root, "agent", map[string]string{"agent.template.yaml": "x\n"})
	writeTemplate(t, root, "providers", map[string]string{"openai.yaml": "x\n"})

	locator := NewLocatorWithRoots(testutil.NewTestLogger(), root)
	infos := locator.List()

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	// The providers directory is shared configuration, not a template.
	require.Equal(t, []string{"agent", "query"}, names)
}

func TestLoadMetadata(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "template.yaml"), []byte("name: project\nminCliVersion: 0.2.0\nexclude:\n  - internal-notes.md\n"), 0600))

	meta, err := LoadMetadata(dir)
	require.NoError(t, err)
	require.Equal(t, "project", meta.Name)
	require.Equal(t, "0.2.0", meta.MinCliVersion)
	require.Equal(t, []string{"internal-notes.md"}, meta.Exclude)
}

func TestLoadMetadataMissingManifest(t *testing.T) {
	meta, err := LoadMetadata(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, meta.MinCliVersion)
}

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name       string
		minVersion string
		cliVersion string
		wantErr    bool
	}{
		{"no constraint", "", "0.1.0", false},
		{"satisfied", "0.1.0", "0.2.0", false},
		{"exact", "0.2.0", "0.2.0", false},
		{"too old", "0.3.0", "0.2.0", true},
		{"v prefix tolerated", "v0.1.0", "v0.2.0", false},
		{"development build passes", "0.3.0", "development", false},
		{"bad constraint", "not-a-version", "0.2.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Metadata{MinCliVersion: tt.minVersion}
			err := meta.CheckCompatibility(tt.cliVersion)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
