package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/prompt"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/templates"
	"github.com/meshstack-ai/mesh-cli/internal/ui"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
)

const projectTemplateName = "project"

// ProjectConfig drives one project generation run.
type ProjectConfig struct {
	Name        string
	Namespace   string
	ProjectType string // constants.ProjectTypeFull or constants.ProjectTypeMinimal

	// Providers preselects model providers, bypassing the interactive
	// choice. Ignored for minimal projects.
	Providers []string

	// Force removes an existing destination without asking.
	Force bool

	// SkipVCS leaves the generated project without a git history.
	SkipVCS bool
}

// ProjectGenerator materializes a full project tree: base template,
// optional samples, provider descriptors, env file and git bootstrap.
type ProjectGenerator struct {
	Deps
}

func NewProject(deps Deps) *ProjectGenerator {
	return &ProjectGenerator{Deps: deps}
}

// Generate runs the project pipeline. Stages execute in a fixed order and
// the first failing stage aborts the run; only the version-control stage
// is allowed to fail without aborting.
func (g *ProjectGenerator) Generate(cfg ProjectConfig, destRoot string) error {
	meta, err := g.checkPrerequisites()
	if err != nil {
		return err
	}

	cfg, projectDir, err := g.collectConfiguration(cfg, destRoot)
	if err != nil {
		return err
	}

	var discovered, selected []Provider
	if cfg.ProjectType != constants.ProjectTypeMinimal {
		discovered, selected, err = g.configureProviders(cfg)
		if err != nil {
			return err
		}
	}

	err = ui.WithSpinner("Scaffolding project files", func() error {
		return g.materialize(cfg, meta, projectDir, discovered, selected)
	})
	if err != nil {
		return err
	}

	g.finalize(cfg, projectDir)

	ui.Success(fmt.Sprintf("Project %s created at %s", cfg.Name, projectDir))
	return nil
}

// checkPrerequisites verifies the project template is installed and
// compatible with the running CLI version.
func (g *ProjectGenerator) checkPrerequisites() (templates.Metadata, error) {
	if !g.Locator.Exists(projectTemplateName) {
		return templates.Metadata{}, fmt.Errorf("project template not found at %s (reinstall the CLI or run from a development checkout)", g.Locator.Resolve(projectTemplateName))
	}

	return g.templateMetadata(projectTemplateName)
}

// collectConfiguration normalizes and validates the run configuration and
// resolves the destination directory, confirming removal when it already
// holds content. Nothing is written before this stage returns.
func (g *ProjectGenerator) collectConfiguration(cfg ProjectConfig, destRoot string) (ProjectConfig, string, error) {
	cfg.Name = strings.TrimSpace(cfg.Name)
	if cfg.Name == "" {
		cfg.Name = constants.DefaultProjectName
	}
	if err := validation.IsValidProjectName(cfg.Name); err != nil {
		return cfg, "", err
	}

	cfg.Namespace = validation.NormalizeNamespace(cfg.Namespace)
	if cfg.Namespace == "" {
		cfg.Namespace = constants.DefaultNamespace
	}
	if err := validation.IsValidNamespace(cfg.Namespace); err != nil {
		return cfg, "", err
	}

	if cfg.ProjectType == "" {
		cfg.ProjectType = constants.ProjectTypeFull
	}
	if cfg.ProjectType != constants.ProjectTypeFull && cfg.ProjectType != constants.ProjectTypeMinimal {
		return cfg, "", fmt.Errorf("unknown project type %q, expected %q or %q", cfg.ProjectType, constants.ProjectTypeFull, constants.ProjectTypeMinimal)
	}

	projectDir := filepath.Join(destRoot, cfg.Name)
	if err := g.confirmDestination(projectDir, cfg.Force); err != nil {
		return cfg, "", err
	}

	return cfg, projectDir, nil
}

// confirmDestination aborts on an occupied destination unless the operator
// confirms removal (or forced it). The existing directory stays untouched
// on abort.
func (g *ProjectGenerator) confirmDestination(projectDir string, force bool) error {
	entries, err := os.ReadDir(projectDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to inspect destination %s: %w", projectDir, err)
	}
	if len(entries) == 0 {
		return nil
	}

	if !force {
		remove, err := prompt.YesNoPrompt(g.Stdin, fmt.Sprintf("Directory %s already exists and is not empty. Remove it and regenerate?", projectDir))
		if err != nil {
			return err
		}
		if !remove {
			return fmt.Errorf("destination %s already exists, aborting without changes", projectDir)
		}
	}

	if err := os.RemoveAll(projectDir); err != nil {
		return fmt.Errorf("failed to remove existing directory %s: %w", projectDir, err)
	}
	return nil
}

// configureProviders discovers provider descriptors and resolves the
// selection, either from preselected names or interactively.
func (g *ProjectGenerator) configureProviders(cfg ProjectConfig) (discovered, selected []Provider, err error) {
	providersDir := filepath.Join(filepath.Dir(g.Locator.Resolve(projectTemplateName)), constants.ProvidersDirName)

	discovered, err = DiscoverProviders(providersDir)
	if err != nil {
		return nil, nil, err
	}
	if len(discovered) == 0 {
		g.Log.Debug().Msgf("No provider descriptors found under %s", providersDir)
		return nil, nil, nil
	}

	if len(cfg.Providers) > 0 {
		for _, name := range cfg.Providers {
			matched := ResolveSelection(name, discovered)
			if matched == nil && name != SkipProviderSetup {
				return nil, nil, fmt.Errorf("unknown provider %q, available: %s", name, strings.Join(SelectionItems(discovered), ", "))
			}
			selected = append(selected, matched...)
		}
		return discovered, selected, nil
	}

	err = prompt.SelectPrompt(g.Stdin, "Which model provider do you want to configure?", SelectionItems(discovered), func(choice string) error {
		selected = ResolveSelection(choice, discovered)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("provider selection aborted: %w", err)
	}
	return discovered, selected, nil
}

// materialize writes the project tree: base template pass, samples pass
// for full projects, provider descriptor pass, placeholder cleanup and
// env-file synthesis.
func (g *ProjectGenerator) materialize(cfg ProjectConfig, meta templates.Metadata, projectDir string, discovered, selected []Provider) error {
	vars := scaffold.Variables{
		"projectName": cfg.Name,
		"namespace":   cfg.Namespace,
		"projectType": cfg.ProjectType,
	}

	exclude := append([]string{constants.TemplateMetadataFileName}, meta.Exclude...)

	err := g.Engine.ProcessTemplate(g.Locator.Resolve(projectTemplateName), projectDir, vars, scaffold.Options{
		CreateDirs: true,
		Exclude:    exclude,
	})
	if err != nil {
		return err
	}

	if cfg.ProjectType == constants.ProjectTypeFull && g.Locator.Exists(constants.SamplesDirName) {
		err := g.Engine.ProcessTemplate(g.Locator.Resolve(constants.SamplesDirName), filepath.Join(projectDir, constants.SamplesDirName), vars, scaffold.Options{
			CreateDirs:   true,
			SkipIfExists: true,
		})
		if err != nil {
			return err
		}
	}

	if err := g.writeProviderFiles(projectDir, vars, selected); err != nil {
		return err
	}

	if err := RemoveRedundantKeepFiles(g.Log, projectDir); err != nil {
		return fmt.Errorf("failed to clean up placeholder files: %w", err)
	}

	return WriteEnvFile(projectDir, discovered, selected, nil)
}

// writeProviderFiles copies each selected provider descriptor into the
// project's providers directory, substituting project variables.
func (g *ProjectGenerator) writeProviderFiles(projectDir string, vars scaffold.Variables, selected []Provider) error {
	if len(selected) == 0 {
		return nil
	}

	providersDir := filepath.Join(filepath.Dir(g.Locator.Resolve(projectTemplateName)), constants.ProvidersDirName)
	destDir := filepath.Join(projectDir, constants.ProvidersDirName)

	for _, p := range selected {
		src := filepath.Join(providersDir, p.Name+providerFileSuffix)
		dest := filepath.Join(destDir, p.Name+providerFileSuffix)

		err := g.Engine.ProcessFile(src, dest, vars, scaffold.Options{CreateDirs: true, SkipIfExists: true})
		if err != nil {
			return err
		}
	}
	return nil
}

// finalize bootstraps version control. Any failure here downgrades to a
// warning: the scaffolded project is already valid without a git history.
func (g *ProjectGenerator) finalize(cfg ProjectConfig, projectDir string) {
	if cfg.SkipVCS {
		return
	}
	if !g.VCS.Available() {
		g.Log.Warn().Msg("git not found on PATH, skipping repository initialization")
		return
	}

	if err := g.VCS.InitRepository(projectDir); err != nil {
		g.Log.Warn().Err(err).Msg("Failed to initialize git repository, continuing without version control")
		return
	}
	if err := g.VCS.CommitAll(projectDir, "Initial project scaffold"); err != nil {
		g.Log.Warn().Err(err).Msg("Failed to create initial commit, continuing")
	}
}
