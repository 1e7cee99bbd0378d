package connector

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
	Service   string `validate:"required" cli:"service"`
	Namespace string `validate:"omitempty,max=63" cli:"namespace"`
	Overwrite bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	connectorCmd := &cobra.Command{
		Use:   "connector <name>",
		Short: "Scaffold a service connector",
		Long: `Scaffold a service-connector definition in the current project.

A connector describes how agents reach an upstream service: its endpoint
configuration, credential references and request defaults.`,
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

	connectorCmd.Flags().StringP("service", "s", "", "Name of the upstream service this connector talks to")
	connectorCmd.Flags().StringP("namespace", "n", "", "Namespace for the connector")
	connectorCmd.Flags().Bool("overwrite", false, "Replace existing connector files instead of skipping them")

	return connectorCmd
}

type handler struct {
	log       *zerolog.Logger
	ctx       *runtime.Context
	stdin     io.Reader
	validated bool
}

func newHandler(ctx *runtime.Context, stdin io.Reader) *handler {
	return &handler{
		log:   ctx.Logger,
		ctx:   ctx,
		stdin: stdin,
	}
}

func (h *handler) ResolveInputs(v *viper.Viper, name string) (Inputs, error) {
	return Inputs{
		Name:      name,
		Service:   v.GetString("service"),
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

	cfg := generator.ConnectorConfig{
		Name:      inputs.Name,
		Service:   inputs.Service,
		Namespace: inputs.Namespace,
		Overwrite: inputs.Overwrite,
	}

	destDir := "."
	if h.ctx.Settings != nil && h.ctx.Settings.ProjectRoot != "" {
		destDir = h.ctx.Settings.ProjectRoot
	}

	connectorDir, err := generator.NewConnector(deps).Generate(cfg, destDir)
	if err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Created connector at %s", connectorDir))
	return nil
}
