package generator

import (
	"fmt"
	"path/filepath"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
)

// ComponentConfig drives generation from an arbitrary component template:
// any template directory that is neither a project nor a leaf resource.
type ComponentConfig struct {
	Template  string
	Name      string
	Overwrite bool

	// Extra variables merged over the standard set, later keys winning.
	Vars scaffold.Variables
}

// ComponentGenerator is the generic escape hatch: it materializes any
// component-type template into <destDir>/<name>.
type ComponentGenerator struct {
	Deps
}

func NewComponent(deps Deps) *ComponentGenerator {
	return &ComponentGenerator{Deps: deps}
}

// Generate writes the component tree and returns its directory path.
func (g *ComponentGenerator) Generate(cfg ComponentConfig, destDir string) (string, error) {
	if err := validation.IsValidResourceName(cfg.Name); err != nil {
		return "", err
	}

	if !g.Locator.Exists(cfg.Template) {
		return "", fmt.Errorf("template %q not found, run `mesh templates list` to see what is available", cfg.Template)
	}

	meta, err := g.templateMetadata(cfg.Template)
	if err != nil {
		return "", err
	}

	vars := scaffold.Variables{
		"componentName": cfg.Name,
	}.Merge(cfg.Vars)

	componentDir := filepath.Join(destDir, cfg.Name)

	err = g.Engine.ProcessTemplate(g.Locator.Resolve(cfg.Template), componentDir, vars, scaffold.Options{
		CreateDirs:   true,
		SkipIfExists: !cfg.Overwrite,
		Exclude:      append([]string{constants.TemplateMetadataFileName}, meta.Exclude...),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate component: %w", err)
	}

	return componentDir, nil
}
