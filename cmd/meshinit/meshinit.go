package meshinit

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshstack-ai/mesh-cli/cmd/version"
	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/generator"
	"github.com/meshstack-ai/mesh-cli/internal/runtime"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/templates"
	"github.com/meshstack-ai/mesh-cli/internal/ui"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
	"github.com/meshstack-ai/mesh-cli/internal/vcs"
)

type Inputs struct {
	ProjectName string `validate:"omitempty,project_name" cli:"project-name"`
	Namespace   string `validate:"omitempty,max=63" cli:"namespace"`
	ProjectType string `validate:"omitempty,oneof=full minimal" cli:"type"`
	Providers   []string
	Force       bool
	SkipVCS     bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var initCmd = &cobra.Command{
		Use:     "init",
		Aliases: []string{"new"},
		Short:   "Initialize a new mesh project (recommended starting point)",
		Long: `Initialize a new MeshStack agent project.

This sets up the project structure, configuration, provider credentials
placeholders and starter files so you can build and run agents quickly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := newHandler(runtimeContext, cmd.InOrStdin())

			inputs, err := handler.ResolveInputs(runtimeContext.Viper)
			if err != nil {
				return err
			}
			err = handler.ValidateInputs(inputs)
			if err != nil {
				return err
			}
			return handler.Execute(inputs)
		},
	}

	initCmd.Flags().StringP("project-name", "p", "", "Name for the new project")
	initCmd.Flags().StringP("namespace", "n", "", "Namespace the project's resources belong to")
	initCmd.Flags().StringP("type", "t", "", fmt.Sprintf("Project type: %q or %q", constants.ProjectTypeFull, constants.ProjectTypeMinimal))
	initCmd.Flags().StringSlice("provider", nil, "Model provider(s) to configure (bypasses the interactive choice)")
	initCmd.Flags().BoolP("force", "f", false, "Remove an existing destination directory without asking")
	initCmd.Flags().Bool("no-vcs", false, "Skip git repository initialization")

	return initCmd
}

type handler struct {
	log       *zerolog.Logger
	stdin     io.Reader
	validated bool
}

func newHandler(ctx *runtime.Context, stdin io.Reader) *handler {
	return &handler{
		log:       ctx.Logger,
		stdin:     stdin,
		validated: false,
	}
}

func (h *handler) ResolveInputs(v *viper.Viper) (Inputs, error) {
	return Inputs{
		ProjectName: v.GetString("project-name"),
		Namespace:   v.GetString("namespace"),
		ProjectType: v.GetString("type"),
		Providers:   v.GetStringSlice("provider"),
		Force:       v.GetBool("force"),
		SkipVCS:     v.GetBool("no-vcs"),
	}, nil
}

func (h *handler) ValidateInputs(inputs Inputs) error {
	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validator.Struct(inputs); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	h.validated = true
	return nil
}

func (h *handler) Execute(inputs Inputs) error {
	if !h.validated {
		return fmt.Errorf("handler inputs not validated")
	}

	if inputs.ProjectName == "" {
		var err error
		inputs, err = h.collectInteractive(inputs)
		if err != nil {
			return err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("unable to get working directory: %w", err)
	}

	deps := generator.Deps{
		Log:        h.log,
		Locator:    templates.NewLocator(h.log),
		Engine:     scaffold.New(h.log),
		VCS:        vcs.NewGit(h.log),
		Stdin:      h.stdin,
		CLIVersion: version.Version,
	}

	cfg := generator.ProjectConfig{
		Name:        inputs.ProjectName,
		Namespace:   inputs.Namespace,
		ProjectType: inputs.ProjectType,
		Providers:   inputs.Providers,
		Force:       inputs.Force,
		SkipVCS:     inputs.SkipVCS,
	}

	if err := generator.NewProject(deps).Generate(cfg, cwd); err != nil {
		return err
	}

	h.printNextSteps(cfg)
	return nil
}

func (h *handler) printNextSteps(cfg generator.ProjectConfig) {
	name := cfg.Name
	if name == "" {
		name = constants.DefaultProjectName
	}

	ui.Line()
	ui.Print("Next steps:")
	ui.Print("   1. Navigate to your project directory:")
	ui.Command(fmt.Sprintf("      cd %s", name))
	ui.Line()
	ui.Print(fmt.Sprintf("   2. Fill in your provider credentials in %s", constants.DefaultEnvFileName))
	ui.Line()
	ui.Print("   3. Define your first agent:")
	ui.Command("      mesh add agent <name>")
	ui.Line()
}
