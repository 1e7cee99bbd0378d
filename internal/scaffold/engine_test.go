package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshstack-ai/mesh-cli/internal/testutil"
)

func TestProcessTemplateCopiesAndSubstitutes(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "out")

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"README.md":            "# {{projectName}}\n",
		"config/settings.yaml": "name: {{projectName}}\nnamespace: {{namespace}}\n",
	})

	engine := New(log)
	vars := Variables{"projectName": "demo", "namespace": "default"}

	err := engine.ProcessTemplate(templateDir, destDir, vars, Options{CreateDirs: true})
	require.NoError(t, err)

	readme, err := os.ReadFile(filepath.Join(destDir, "README.md"))
	require.NoError(t, err)
	require.Equal(t, "# demo\n", string(readme))

	settings, err := os.ReadFile(filepath.Join(destDir, "config", "settings.yaml"))
	require.NoError(t, err)
	require.Equal(t, "name: demo\nnamespace: default\n", string(settings))
}

func TestProcessTemplateSubstitutesDirectoryNames(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "out")

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"{{projectName}}/main.yaml": "project: {{projectName}}\n",
	})

	engine := New(log)
	err := engine.ProcessTemplate(templateDir, destDir, Variables{"projectName": "demo"}, Options{CreateDirs: true})
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(destDir, "demo", "main.yaml"))
}

func TestProcessTemplateOpaqueFilesCopiedVerbatim(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "out")

	// A binary extension must never be substituted, even if its bytes
	// happen to contain token syntax.
	payload := "PNGDATA{{projectName}}\x01\x02"
	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"logo.png": payload,
	})

	engine := New(log)
	err := engine.ProcessTemplate(templateDir, destDir, Variables{"projectName": "demo"}, Options{CreateDirs: true})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(destDir, "logo.png"))
	require.NoError(t, err)
	require.Equal(t, payload, string(content))
}

func TestProcessTemplateExcludeBeforeInclude(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "out")

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"a.yaml": "keep: true\n",
		"a.bak":  "keep: false\n",
	})

	engine := New(log)
	err := engine.ProcessTemplate(templateDir, destDir, Variables{}, Options{
		CreateDirs: true,
		Exclude:    []string{"*.bak"},
		Include:    []string{"*.yaml"},
	})
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(destDir, "a.yaml"))
	require.NoFileExists(t, filepath.Join(destDir, "a.bak"))
}

func TestProcessTemplateIncludeListRestricts(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "out")

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"keep.yaml":  "a: 1\n",
		"other.toml": "b = 2\n",
	})

	engine := New(log)
	err := engine.ProcessTemplate(templateDir, destDir, Variables{}, Options{
		CreateDirs: true,
		Include:    []string{"*.yaml"},
	})
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(destDir, "keep.yaml"))
	require.NoFileExists(t, filepath.Join(destDir, "other.toml"))
}

func TestProcessTemplateIsRepeatable(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"config.yaml": "name: {{projectName}}\n",
	})

	engine := New(log)
	vars := Variables{"projectName": "demo"}

	first := filepath.Join(t.TempDir(), "out")
	second := filepath.Join(t.TempDir(), "out")

	require.NoError(t, engine.ProcessTemplate(templateDir, first, vars, Options{CreateDirs: true}))
	require.NoError(t, engine.ProcessTemplate(templateDir, second, vars, Options{CreateDirs: true}))

	a, err := os.ReadFile(filepath.Join(first, "config.yaml"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second, "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestProcessTemplateMissingSource(t *testing.T) {
	log := testutil.NewTestLogger()
	engine := New(log)

	err := engine.ProcessTemplate(filepath.Join(t.TempDir(), "missing"), t.TempDir(), Variables{}, Options{})
	require.Error(t, err)

	var templateErr *TemplateError
	require.True(t, errors.As(err, &templateErr))
	require.NotEmpty(t, templateErr.Hints)
}

func TestProcessTemplateDangerousContentSkipsEntry(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "out")

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"good.yaml": "safe: true\n",
		"bad.yaml":  "cmd: $(rm -rf /)\n",
	})

	engine := New(log)
	err := engine.ProcessTemplate(templateDir, destDir, Variables{}, Options{CreateDirs: true})
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(destDir, "good.yaml"))
	require.NoFileExists(t, filepath.Join(destDir, "bad.yaml"))
}

func TestProcessFile(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := t.TempDir()

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"agent.template.yaml": "name: {{agentName}}\n",
	})

	engine := New(log)
	destFile := filepath.Join(destDir, "billing-agent.yaml")

	err := engine.ProcessFile(filepath.Join(templateDir, "agent.template.yaml"), destFile, Variables{"agentName": "billing"}, Options{})
	require.NoError(t, err)

	content, err := os.ReadFile(destFile)
	require.NoError(t, err)
	require.Equal(t, "name: billing\n", string(content))
}

func TestProcessFileSkipIfExists(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()
	destDir := t.TempDir()

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"agent.template.yaml": "name: {{agentName}}\n",
	})

	destFile := filepath.Join(destDir, "billing-agent.yaml")
	require.NoError(t, os.WriteFile(destFile, []byte("existing content\n"), 0600))

	engine := New(log)
	err := engine.ProcessFile(filepath.Join(templateDir, "agent.template.yaml"), destFile, Variables{"agentName": "billing"}, Options{SkipIfExists: true})
	require.NoError(t, err)

	content, err := os.ReadFile(destFile)
	require.NoError(t, err)
	require.Equal(t, "existing content\n", string(content))
}

func TestProcessFileMissingSource(t *testing.T) {
	log := testutil.NewTestLogger()
	engine := New(log)

	err := engine.ProcessFile(filepath.Join(t.TempDir(), "missing.yaml"), filepath.Join(t.TempDir(), "out.yaml"), Variables{}, Options{})

	var templateErr *TemplateError
	require.True(t, errors.As(err, &templateErr))
}

func TestProcessFileDangerousContentIsFatal(t *testing.T) {
	log := testutil.NewTestLogger()
	templateDir := t.TempDir()

	testutil.WriteTemplateTree(t, templateDir, map[string]string{
		"bad.yaml": "cmd: $(whoami)\n",
	})

	engine := New(log)
	err := engine.ProcessFile(filepath.Join(templateDir, "bad.yaml"), filepath.Join(t.TempDir(), "bad.yaml"), Variables{}, Options{})
	require.Error(t, err)
}
