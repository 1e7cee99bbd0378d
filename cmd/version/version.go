package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshstack-ai/mesh-cli/internal/runtime"
)

// Default placeholder value, overridden at build time via ldflags.
var Version = "development"

func New(runtimeContext *runtime.Context) *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the mesh version",
		Long:  "This command prints the current version of the mesh CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("mesh", Version)
			return nil
		},
	}

	return versionCmd
}
