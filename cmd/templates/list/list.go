package list

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meshstack-ai/mesh-cli/internal/runtime"
	"github.com/meshstack-ai/mesh-cli/internal/templates"
	"github.com/meshstack-ai/mesh-cli/internal/ui"
)

type handler struct {
	log *zerolog.Logger
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists installed templates",
		Long:  `Displays every template the locator can resolve, with its type and description.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &handler{log: runtimeContext.Logger}
			return h.Execute()
		},
	}

	return cmd
}

func (h *handler) Execute() error {
	locator := templates.NewLocator(h.log)
	infos := locator.List()

	if len(infos) == 0 {
		ui.Line()
		ui.Warning("No templates found")
		ui.Dim("Reinstall the CLI or run from a development checkout with a templates directory")
		ui.Line()
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Type", "Description"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, info.Type, info.Description})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	ui.Line()
	ui.Dim("Scaffold a project with:")
	ui.Command("  mesh init")
	ui.Line()

	return nil
}
