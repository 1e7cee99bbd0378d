package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
)

// ArtifactKind is the closed set of leaf-resource kinds with a dedicated
// filename-derivation rule. Adding a kind means adding a variant here plus
// its naming rule below.
type ArtifactKind int

const (
	KindAgent ArtifactKind = iota
	KindTeam
	KindQuery
)

func (k ArtifactKind) String() string {
	switch k {
	case KindAgent:
		return "agent"
	case KindTeam:
		return "team"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// namingRule binds an artifact kind to the variable holding the artifact
// name and the suffix appended to it: <variable>-<suffix>.<ext>.
type namingRule struct {
	variable string
	suffix   string
}

var namingRules = map[ArtifactKind]namingRule{
	KindAgent: {variable: "agentName", suffix: "agent"},
	KindTeam:  {variable: "teamName", suffix: "team"},
	KindQuery: {variable: "queryName", suffix: "query"},
}

// kindByTemplateBase maps the base of a reserved-suffix template file name
// (e.g. "agent" from agent.template.yaml) to its artifact kind.
var kindByTemplateBase = map[string]ArtifactKind{
	"agent": KindAgent,
	"team":  KindTeam,
	"query": KindQuery,
}

// NameVariable returns the variable a kind's naming rule reads, e.g.
// "agentName" for KindAgent.
func (k ArtifactKind) NameVariable() string {
	return namingRules[k].variable
}

// DeriveFileName computes the destination name for a template file. A name
// carrying the reserved double suffix (<base>.template.<ext>) has the
// suffix stripped and, when <base> names a known artifact kind, is renamed
// to <variable value>-<kind>.<ext>. Unrecognized bases fall back to
// <base>.<ext>. All other names undergo plain token substitution.
func DeriveFileName(templateName string, vars Variables) string {
	ext := filepath.Ext(templateName)
	stem := strings.TrimSuffix(templateName, ext)

	if !strings.HasSuffix(stem, constants.TemplateFileSuffix) {
		return Substitute(templateName, vars)
	}

	base := strings.TrimSuffix(stem, constants.TemplateFileSuffix)

	if kind, ok := kindByTemplateBase[base]; ok {
		rule := namingRules[kind]
		if value := vars.StringValue(rule.variable); value != "" {
			return value + "-" + rule.suffix + ext
		}
	}

	return Substitute(base, vars) + ext
}
