package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/templates"
	"github.com/meshstack-ai/mesh-cli/internal/testutil"
)

func newComponentRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTemplateTree(t, filepath.Join(root, "evaluator"), map[string]string{
		"template.yaml":  "name: evaluator\ndescription: Scores agent output\n",
		"evaluator.yaml": "name: {{componentName}}\nmodel: {{model}}\n",
		"notes.draft":    "internal notes\n",
	})
	return root
}

func TestComponentGenerate(t *testing.T) {
	root := newComponentRoot(t)
	destDir := t.TempDir()

	log := testutil.NewTestLogger()
	gen := NewComponent(Deps{
		Log:        log,
		Locator:    templates.NewLocatorWithRoots(log, root),
		Engine:     scaffold.New(log),
		VCS:        &stubVCS{},
		CLIVersion: "0.2.0",
	})

	componentDir, err := gen.Generate(ComponentConfig{
		Template: "evaluator",
		Name:     "quality-check",
		Vars:     scaffold.Variables{"model": "claude-3"},
	}, destDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(destDir, "quality-check"), componentDir)

	content, err := os.ReadFile(filepath.Join(componentDir, "evaluator.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(content), "name: quality-check\n")
	require.Contains(t, string(content), "model: claude-3\n")

	// Metadata file is never copied into the output.
	require.NoFileExists(t, filepath.Join(componentDir, "template.yaml"))
}

func TestComponentGenerateHonorsMetadataExcludes(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTemplateTree(t, filepath.Join(root, "evaluator"), map[string]string{
		"template.yaml":  "name: evaluator\nexclude:\n  - notes.draft\n",
		"evaluator.yaml": "name: {{componentName}}\n",
		"notes.draft":    "internal notes\n",
	})

	log := testutil.NewTestLogger()
	gen := NewComponent(Deps{
		Log:        log,
		Locator:    templates.NewLocatorWithRoots(log, root),
		Engine:     scaffold.New(log),
		VCS:        &stubVCS{},
		CLIVersion: "0.2.0",
	})

	componentDir, err := gen.Generate(ComponentConfig{Template: "evaluator", Name: "quality-check"}, t.TempDir())
	require.NoError(t, err)
	require.NoFileExists(t, filepath.Join(componentDir, "notes.draft"))
}

func TestComponentGenerateUnknownTemplate(t *testing.T) {
	log := testutil.NewTestLogger()
	gen := NewComponent(Deps{
		Log:     log,
		Locator: templates.NewLocatorWithRoots(log, t.TempDir()),
		Engine:  scaffold.New(log),
		VCS:     &stubVCS{},
	})

	_, err := gen.Generate(ComponentConfig{Template: "missing", Name: "quality-check"}, t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestComponentGenerateIncompatibleVersion(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTemplateTree(t, filepath.Join(root, "evaluator"), map[string]string{
		"template.yaml":  "name: evaluator\nminCliVersion: 99.0.0\n",
		"evaluator.yaml": "name: {{componentName}}\n",
	})

	log := testutil.NewTestLogger()
	gen := NewComponent(Deps{
		Log:        log,
		Locator:    templates.NewLocatorWithRoots(log, root),
		Engine:     scaffold.New(log),
		VCS:        &stubVCS{},
		CLIVersion: "0.2.0",
	})

	_, err := gen.Generate(ComponentConfig{Template: "evaluator", Name: "quality-check"}, t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "requires CLI version")
}
