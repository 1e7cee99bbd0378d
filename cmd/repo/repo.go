package repo

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshstack-ai/mesh-cli/cmd/version"
	"github.com/meshstack-ai/mesh-cli/internal/generator"
	"github.com/meshstack-ai/mesh-cli/internal/runtime"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/templates"
	"github.com/meshstack-ai/mesh-cli/internal/ui"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
	"github.com/meshstack-ai/mesh-cli/internal/vcs"
)

type Inputs struct {
	Name        string `validate:"required,resource_name" cli:"name"`
	Description string `validate:"omitempty,max=200" cli:"description"`
	Force       bool
	SkipVCS     bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	repoCmd := &cobra.Command{
		Use:   "repo <name>",
		Short: "Scaffold a marketplace repository",
		Long: `Scaffold a marketplace repository skeleton.

The generated layout holds the registry index and publishing metadata a
repository needs before agents and teams can be listed in it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := newHandler(runtimeContext, cmd.InOrStdin())

			inputs, err := handler.ResolveInputs(runtimeContext.Viper, args[0])
			if err != nil {
				return err
			}
			if err := handler.ValidateInputs(inputs); err != nil {
				return err
			}
			return handler.Execute(inputs)
		},
	}

	repoCmd.Flags().StringP("description", "d", "", "One-line description of the repository")
	repoCmd.Flags().BoolP("force", "f", false, "Overwrite existing files in the destination")
	repoCmd.Flags().Bool("no-vcs", false, "Skip git repository initialization")

	return repoCmd
}

type handler struct {
	log       *zerolog.Logger
	stdin     io.Reader
	validated bool
}

func newHandler(ctx *runtime.Context, stdin io.Reader) *handler {
	return &handler{
		log:   ctx.Logger,
		stdin: stdin,
	}
}

func (h *handler) ResolveInputs(v *viper.Viper, name string) (Inputs, error) {
	return Inputs{
		Name:        name,
		Description: v.GetString("description"),
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

	cfg := generator.RepositoryConfig{
		Name:        inputs.Name,
		Description: inputs.Description,
		Force:       inputs.Force,
		SkipVCS:     inputs.SkipVCS,
	}

	repoDir, err := generator.NewRepository(deps).Generate(cfg, cwd)
	if err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Created marketplace repository at %s", repoDir))
	return nil
}
