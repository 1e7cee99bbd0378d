package generator

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
)

const repositoryTemplateName = "repository"

// RepositoryConfig drives generation of a marketplace repository skeleton.
type RepositoryConfig struct {
	Name        string
	Description string
	Force       bool
	SkipVCS     bool
}

// RepositoryGenerator materializes the registry layout a marketplace
// repository needs: index manifest, publishing metadata and placeholder
// directories for listed artifacts.
type RepositoryGenerator struct {
	Deps
}

func NewRepository(deps Deps) *RepositoryGenerator {
	return &RepositoryGenerator{Deps: deps}
}

// Generate writes the repository tree and returns its directory path.
func (g *RepositoryGenerator) Generate(cfg RepositoryConfig, destRoot string) (string, error) {
	if err := validation.IsValidResourceName(cfg.Name); err != nil {
		return "", err
	}

	if !g.Locator.Exists(repositoryTemplateName) {
		return "", fmt.Errorf("repository template not found at %s", g.Locator.Resolve(repositoryTemplateName))
	}

	repoDir := filepath.Join(destRoot, cfg.Name)

	vars := scaffold.Variables{
		"repositoryName": cfg.Name,
		"description":    cfg.Description,
		"repositoryId":   uuid.NewString(),
	}

	err := g.Engine.ProcessTemplate(g.Locator.Resolve(repositoryTemplateName), repoDir, vars, scaffold.Options{
		CreateDirs:   true,
		SkipIfExists: !cfg.Force,
		Exclude:      []string{constants.TemplateMetadataFileName},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate repository: %w", err)
	}

	if err := RemoveRedundantKeepFiles(g.Log, repoDir); err != nil {
		return "", fmt.Errorf("failed to clean up placeholder files: %w", err)
	}

	if !cfg.SkipVCS {
		g.bootstrapVCS(repoDir)
	}

	return repoDir, nil
}

func (g *RepositoryGenerator) bootstrapVCS(repoDir string) {
	if !g.VCS.Available() {
		g.Log.Warn().Msg("git not found on PATH, skipping repository initialization")
		return
	}
	if err := g.VCS.InitRepository(repoDir); err != nil {
		g.Log.Warn().Err(err).Msg("Failed to initialize git repository, continuing without version control")
		return
	}
	if err := g.VCS.CommitAll(repoDir, "Initial repository scaffold"); err != nil {
		g.Log.Warn().Err(err).Msg("Failed to create initial commit, continuing")
	}
}
