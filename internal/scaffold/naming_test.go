package scaffold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveFileNameKindRules(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Variables
		expected string
	}{
		{
			"agent rule",
			"agent.template.yaml",
			Variables{"agentName": "billing"},
			"billing-agent.yaml",
		},
		{
			"team rule",
			"team.template.yaml",
			Variables{"teamName": "research"},
			"research-team.yaml",
		},
		{
			"query rule",
			"query.template.yaml",
			Variables{"queryName": "daily-report"},
			"daily-report-query.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DeriveFileName(tt.template, tt.vars))
		})
	}
}

func TestDeriveFileNameIsDeterministic(t *testing.T) {
	vars := Variables{"agentName": "billing"}
	first := DeriveFileName("agent.template.yaml", vars)
	second := DeriveFileName("agent.template.yaml", vars)
	require.Equal(t, "billing-agent.yaml", first)
	require.Equal(t, first, second)
}

func TestDeriveFileNameUnrecognizedBaseFallsBack(t *testing.T) {
	// Unknown artifact bases keep <base>.<ext> with plain substitution.
	require.Equal(t, "pipeline.yaml", DeriveFileName("pipeline.template.yaml", Variables{}))
	require.Equal(t, "demo.yaml", DeriveFileName("{{projectName}}.template.yaml", Variables{"projectName": "demo"}))
}

func TestDeriveFileNameMissingVariableFallsBack(t *testing.T) {
	// A kind template without its name variable degrades to the plain base.
	require.Equal(t, "agent.yaml", DeriveFileName("agent.template.yaml", Variables{}))
}

func TestDeriveFileNamePlainNames(t *testing.T) {
	vars := Variables{"projectName": "demo"}
	require.Equal(t, "README.md", DeriveFileName("README.md", vars))
	require.Equal(t, "demo.cfg", DeriveFileName("{{projectName}}.cfg", vars))
}

func TestArtifactKindNameVariable(t *testing.T) {
	require.Equal(t, "agentName", KindAgent.NameVariable())
	require.Equal(t, "teamName", KindTeam.NameVariable())
	require.Equal(t, "queryName", KindQuery.NameVariable())
}

func TestArtifactKindString(t *testing.T) {
	require.Equal(t, "agent", KindAgent.String())
	require.Equal(t, "team", KindTeam.String())
	require.Equal(t, "query", KindQuery.String())
}
