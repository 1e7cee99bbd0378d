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

func newConnectorRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTemplateTree(t, filepath.Join(root, "connector"), map[string]string{
		"connector.yaml": "name: {{connectorName}}\nservice: {{service}}\nnamespace: {{namespace}}\nid: {{connectorId}}\n",
		"README.md":      "# {{connectorName}} connector\n",
	})
	return root
}

func TestConnectorGenerate(t *testing.T) {
	root := newConnectorRoot(t)
	destDir := t.TempDir()

	log := testutil.NewTestLogger()
	gen := NewConnector(Deps{
		Log:        log,
		Locator:    templates.NewLocatorWithRoots(log, root),
		Engine:     scaffold.New(log),
		VCS:        &stubVCS{},
		CLIVersion: "0.2.0",
	})

	connectorDir, err := gen.Generate(ConnectorConfig{
		Name:    "payments",
		Service: "stripe",
	}, destDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(destDir, "payments-connector"), connectorDir)

	content, err := os.ReadFile(filepath.Join(connectorDir, "connector.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(content), "name: payments\n")
	require.Contains(t, string(content), "service: stripe\n")
	require.Contains(t, string(content), "namespace: default\n")
	require.NotContains(t, string(content), "{{connectorId}}")

	require.FileExists(t, filepath.Join(connectorDir, "README.md"))
}

func TestConnectorGenerateRequiresService(t *testing.T) {
	root := newConnectorRoot(t)
	log := testutil.NewTestLogger()
	gen := NewConnector(Deps{
		Log:     log,
		Locator: templates.NewLocatorWithRoots(log, root),
		Engine:  scaffold.New(log),
		VCS:     &stubVCS{},
	})

	_, err := gen.Generate(ConnectorConfig{Name: "payments"}, t.TempDir())
	require.Error(t, err)
}

func TestConnectorGenerateMissingTemplate(t *testing.T) {
	log := testutil.NewTestLogger()
	gen := NewConnector(Deps{
		Log:     log,
		Locator: templates.NewLocatorWithRoots(log, t.TempDir()),
		Engine:  scaffold.New(log),
		VCS:     &stubVCS{},
	})

	_, err := gen.Generate(ConnectorConfig{Name: "payments", Service: "stripe"}, t.TempDir())
	require.Error(t, err)
}
