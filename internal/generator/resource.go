package generator

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
)

// ResourceConfig drives generation of a single leaf resource (agent, team
// or query manifest).
type ResourceConfig struct {
	Name      string
	Kind      scaffold.ArtifactKind
	Namespace string

	// Overwrite replaces an existing manifest instead of skipping it.
	Overwrite bool
}

// ResourceGenerator materializes one manifest file per invocation, named
// by the kind's derivation rule (billing + KindAgent -> billing-agent.yaml).
type ResourceGenerator struct {
	Deps
}

func NewResource(deps Deps) *ResourceGenerator {
	return &ResourceGenerator{Deps: deps}
}

// Generate writes the manifest into destDir and returns its path.
func (g *ResourceGenerator) Generate(cfg ResourceConfig, destDir string) (string, error) {
	if err := validation.IsValidResourceName(cfg.Name); err != nil {
		return "", err
	}

	cfg.Namespace = validation.NormalizeNamespace(cfg.Namespace)
	if cfg.Namespace == "" {
		cfg.Namespace = constants.DefaultNamespace
	}
	if err := validation.IsValidNamespace(cfg.Namespace); err != nil {
		return "", err
	}

	kind := cfg.Kind.String()
	templateFile := filepath.Join(g.Locator.Resolve(kind), kind+constants.TemplateFileSuffix+".yaml")

	vars := scaffold.Variables{
		cfg.Kind.NameVariable(): cfg.Name,
		"namespace":             cfg.Namespace,
		"resourceId":            uuid.NewString(),
	}

	destName := scaffold.DeriveFileName(filepath.Base(templateFile), vars)
	destPath := filepath.Join(destDir, destName)

	err := g.Engine.ProcessFile(templateFile, destPath, vars, scaffold.Options{
		CreateDirs:   true,
		SkipIfExists: !cfg.Overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate %s manifest: %w", kind, err)
	}

	return destPath, nil
}
