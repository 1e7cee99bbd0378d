package generator

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
)

const connectorTemplateName = "connector"

// ConnectorConfig drives generation of a service-connector definition.
type ConnectorConfig struct {
	Name      string
	Service   string // the upstream service this connector talks to
	Namespace string
	Overwrite bool
}

// ConnectorGenerator materializes a connector directory under
// <destDir>/<name>-connector from the connector template tree.
type ConnectorGenerator struct {
	Deps
}

func NewConnector(deps Deps) *ConnectorGenerator {
	return &ConnectorGenerator{Deps: deps}
}

// Generate writes the connector tree and returns its directory path.
func (g *ConnectorGenerator) Generate(cfg ConnectorConfig, destDir string) (string, error) {
	if err := validation.IsValidResourceName(cfg.Name); err != nil {
		return "", err
	}
	if cfg.Service == "" {
		return "", fmt.Errorf("connector service can't be an empty string")
	}

	cfg.Namespace = validation.NormalizeNamespace(cfg.Namespace)
	if cfg.Namespace == "" {
		cfg.Namespace = constants.DefaultNamespace
	}

	if !g.Locator.Exists(connectorTemplateName) {
		return "", fmt.Errorf("connector template not found at %s", g.Locator.Resolve(connectorTemplateName))
	}

	vars := scaffold.Variables{
		"connectorName": cfg.Name,
		"service":       cfg.Service,
		"namespace":     cfg.Namespace,
		"connectorId":   uuid.NewString(),
	}

	connectorDir := filepath.Join(destDir, cfg.Name+"-connector")

	err := g.Engine.ProcessTemplate(g.Locator.Resolve(connectorTemplateName), connectorDir, vars, scaffold.Options{
		CreateDirs:   true,
		SkipIfExists: !cfg.Overwrite,
		Exclude:      []string{constants.TemplateMetadataFileName},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate connector: %w", err)
	}

	return connectorDir, nil
}
