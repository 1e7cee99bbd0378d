// Package add holds the `mesh add` command family: one subcommand per leaf
// resource kind, all backed by the same resource generator.
package add

import (
	"fmt"
	"io"

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
	Name      string `validate:"required,resource_name" cli:"name"`
	Namespace string `validate:"omitempty,max=63" cli:"namespace"`
	Overwrite bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a resource to the current project",
		Long: `Add a platform resource manifest to the current project.

Each subcommand scaffolds one manifest file named <name>-<kind>.yaml in the
project's resource directory.`,
	}

	addCmd.AddCommand(
		newResourceCommand(runtimeContext, scaffold.KindAgent, "Add an agent manifest"),
		newResourceCommand(runtimeContext, scaffold.KindTeam, "Add a team manifest"),
		newResourceCommand(runtimeContext, scaffold.KindQuery, "Add a query manifest"),
	)

	return addCmd
}

func newResourceCommand(runtimeContext *runtime.Context, kind scaffold.ArtifactKind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <name>", kind),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := newHandler(runtimeContext, cmd.InOrStdin(), kind)

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

	cmd.Flags().StringP("namespace", "n", "", "Namespace for the resource")
	cmd.Flags().Bool("overwrite", false, "Replace an existing manifest instead of skipping it")

	return cmd
}

type handler struct {
	log       *zerolog.Logger
	ctx       *runtime.Context
	stdin     io.Reader
	kind      scaffold.ArtifactKind
	validated bool
}

func newHandler(ctx *runtime.Context, stdin io.Reader, kind scaffold.ArtifactKind) *handler {
	return &handler{
		log:   ctx.Logger,
		ctx:   ctx,
		stdin: stdin,
		kind:  kind,
	}
}

func (h *handler) ResolveInputs(v *viper.Viper, name string) (Inputs, error) {
	return Inputs{
		Name:      name,
		Namespace: v.GetString("namespace"),
		Overwrite: v.GetBool("overwrite"),
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

	deps := generator.Deps{
		Log:        h.log,
		Locator:    templates.NewLocator(h.log),
		Engine:     scaffold.New(h.log),
		VCS:        vcs.NewGit(h.log),
		Stdin:      h.stdin,
		CLIVersion: version.Version,
	}

	cfg := generator.ResourceConfig{
		Name:      inputs.Name,
		Kind:      h.kind,
		Namespace: inputs.Namespace,
		Overwrite: inputs.Overwrite,
	}

	destDir := "."
	if h.ctx.Settings != nil && h.ctx.Settings.ProjectRoot != "" {
		destDir = h.ctx.Settings.ProjectRoot
	}

	manifestPath, err := generator.NewResource(deps).Generate(cfg, destDir)
	if err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Created %s manifest at %s", h.kind, manifestPath))
	return nil
}
