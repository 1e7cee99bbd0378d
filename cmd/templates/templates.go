package templates

import (
	"github.com/spf13/cobra"

	"github.com/meshstack-ai/mesh-cli/cmd/templates/list"
	"github.com/meshstack-ai/mesh-cli/internal/runtime"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect the installed scaffolding templates",
		Long: `Inspect the scaffolding templates installed with this CLI.

mesh init and the other generators resolve templates from the directory
shipped next to the binary, falling back to a development checkout.

To scaffold a new project from a template, use: mesh init`,
	}

	templatesCmd.AddCommand(list.New(runtimeContext))

	return templatesCmd
}
