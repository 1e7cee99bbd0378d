package generator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshstack-ai/mesh-cli/internal/testutil"
)

func TestDiscoverProviders(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTemplateTree(t, dir, map[string]string{
		"openai.yaml":    "name: openai\napiKey: ${OPENAI_API_KEY}\norg: ${OPENAI_ORG_ID}\n",
		"anthropic.yaml": "name: anthropic\napiKey: ${ANTHROPIC_API_KEY}\n",
		"notes.txt":      "ignored, not a descriptor\n",
	})

	providers, err := DiscoverProviders(dir)
	require.NoError(t, err)
	require.Len(t, providers, 2)

	// Sorted by name for stable prompt ordering.
	require.Equal(t, "anthropic", providers[0].Name)
	require.Equal(t, []string{"ANTHROPIC_API_KEY"}, providers[0].EnvVars)

	require.Equal(t, "openai", providers[1].Name)
	require.Equal(t, []string{"OPENAI_API_KEY", "OPENAI_ORG_ID"}, providers[1].EnvVars)
}

func TestDiscoverProvidersMissingDirectory(t *testing.T) {
	providers, err := DiscoverProviders(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Nil(t, providers)
}

func TestExtractEnvPlaceholders(t *testing.T) {
	content := "a: ${FIRST_VAR}\nb: ${SECOND_VAR}\nc: ${FIRST_VAR}\nd: ${lowercase}\ne: $NOT_BRACED\n"
	vars := extractEnvPlaceholders(content)
	// Duplicates collapse, non-matching forms are ignored.
	require.Equal(t, []string{"FIRST_VAR", "SECOND_VAR"}, vars)
}

func TestSelectionItems(t *testing.T) {
	providers := []Provider{{Name: "anthropic"}, {Name: "openai"}}
	items := SelectionItems(providers)
	require.Equal(t, []string{"anthropic", "openai", SelectAllProviders, SkipProviderSetup}, items)
}

func TestResolveSelection(t *testing.T) {
	providers := []Provider{{Name: "anthropic"}, {Name: "openai"}}

	require.Equal(t, providers, ResolveSelection(SelectAllProviders, providers))
	require.Nil(t, ResolveSelection(SkipProviderSetup, providers))
	require.Equal(t, []Provider{{Name: "openai"}}, ResolveSelection("openai", providers))
	require.Nil(t, ResolveSelection("unknown", providers))
}
