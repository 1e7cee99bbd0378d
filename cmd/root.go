package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/meshstack-ai/mesh-cli/cmd/add"
	"github.com/meshstack-ai/mesh-cli/cmd/connector"
	"github.com/meshstack-ai/mesh-cli/cmd/meshinit"
	"github.com/meshstack-ai/mesh-cli/cmd/repo"
	"github.com/meshstack-ai/mesh-cli/cmd/templates"
	"github.com/meshstack-ai/mesh-cli/cmd/version"
	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/logger"
	meshruntime "github.com/meshstack-ai/mesh-cli/internal/runtime"
	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/settings"
	"github.com/meshstack-ai/mesh-cli/internal/ui"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCommand()

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		renderRemediation(os.Stderr, err)
		os.Exit(1)
	}
}

// renderRemediation prints the hint block a template error carries beneath
// cobra's error line, so the operator sees what to do next.
func renderRemediation(w io.Writer, err error) {
	var tmplErr *scaffold.TemplateError
	if !errors.As(err, &tmplErr) {
		return
	}

	remediation := tmplErr.Remediation()
	if remediation == "" {
		return
	}

	fmt.Fprintln(w, ui.StepStyle.Render("Try the following:"))
	fmt.Fprint(w, ui.DimStyle.Render(remediation))
	fmt.Fprintln(w)
}

func newRootCommand() *cobra.Command {
	rootLogger := createLogger()
	rootViper := createViper()
	runtimeContext := meshruntime.NewContext(rootLogger, rootViper)

	// By defining a Run func, we force PersistentPreRunE to execute even
	// when 'mesh', 'add', etc is called with no subcommand.
	helpRunE := func(cmd *cobra.Command, args []string) error {
		err := cmd.Help()
		if err != nil {
			return fmt.Errorf("fail to show help: %w", err)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:               "mesh",
		Short:             "MeshStack CLI tool",
		Long:              `A command line tool for scaffolding and managing MeshStack agent projects, teams, queries and connectors.`,
		DisableAutoGenTag: true,
		RunE:              helpRunE,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := runtimeContext.Logger
			v := runtimeContext.Viper

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if verbose := v.GetBool(settings.Flags.Verbose.Name); verbose {
				newLogger := log.Level(zerolog.DebugLevel)
				runtimeContext.Logger = &newLogger
			}

			if isLoadEnvAndSettings(cmd) {
				err := runtimeContext.AttachSettings()
				if err != nil {
					return fmt.Errorf("%w", err)
				}
			}

			return nil
		},
	}

	cobra.AddTemplateFunc("wrappedFlagUsages", func(fs *pflag.FlagSet) string {
		// 100 = wrap width
		return strings.TrimRight(fs.FlagUsagesWrapped(100), "\n")
	})

	rootCmd.SetHelpTemplate(`
{{- with (or .Long .Short)}}{{.}}{{end}}

Usage:
{{- if .Runnable}}
  {{.UseLine}}
{{- end}}
{{- if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]
{{- end}}

{{- if .HasAvailableSubCommands}}

Available Commands:
{{- range .Commands}}
  {{- if (and (not .Hidden) (.IsAvailableCommand))}}
  {{rpad .Name .NamePadding}}  {{.Short}}
  {{- end}}
{{- end}}
{{- end}}

{{- if .HasExample}}

Examples:
{{.Example}}
{{- end}}

{{- $local := (.LocalFlags.FlagUsagesWrapped 100 | trimTrailingWhitespaces) -}}
{{- if $local }}

Flags:
{{$local}}
{{- end }}

{{- $inherited := (.InheritedFlags.FlagUsagesWrapped 100 | trimTrailingWhitespaces) -}}
{{- if $inherited }}

Global Flags:
{{$inherited}}
{{- end }}

{{- if .HasAvailableSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{- end }}

💡 Tip: New here? Run:
  $ mesh init
    to create your first MeshStack project, then:
  $ mesh add agent <name>
    to define your first agent.

📘 Need more help?
  Visit https://docs.meshstack.ai
`)

	// Definition of global flags:
	// env file flag is present for every subcommand
	rootCmd.PersistentFlags().StringP(
		settings.Flags.CliEnvFile.Name,
		settings.Flags.CliEnvFile.Short,
		constants.DefaultEnvFileName,
		fmt.Sprintf("Path to %s file which contains sensitive info", constants.DefaultEnvFileName),
	)

	// project root path flag is present for every subcommand
	rootCmd.PersistentFlags().StringP(
		settings.Flags.ProjectRoot.Name,
		settings.Flags.ProjectRoot.Short,
		"",
		"Path to the project root",
	)

	// verbose flag is present in every subcommand
	rootCmd.PersistentFlags().BoolP(
		settings.Flags.Verbose.Name,
		settings.Flags.Verbose.Short,
		false,
		"Run command in VERBOSE mode",
	)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	initCmd := meshinit.New(runtimeContext)
	addCmd := add.New(runtimeContext)
	connectorCmd := connector.New(runtimeContext)
	repoCmd := repo.New(runtimeContext)
	templatesCmd := templates.New(runtimeContext)
	versionCmd := version.New(runtimeContext)

	addCmd.RunE = helpRunE
	templatesCmd.RunE = helpRunE

	rootCmd.AddCommand(
		initCmd,
		addCmd,
		connectorCmd,
		repoCmd,
		templatesCmd,
		versionCmd,
	)

	return rootCmd
}

func isLoadEnvAndSettings(cmd *cobra.Command) bool {
	// These commands run outside a project; the .env and settings are not expected
	var excludedCommands = map[string]struct{}{
		"version":    {},
		"init":       {},
		"repo":       {},
		"templates":  {},
		"list":       {},
		"bash":       {},
		"fish":       {},
		"powershell": {},
		"zsh":        {},
		"help":       {},
		"mesh":       {},
		"add":        {},
	}

	_, exists := excludedCommands[cmd.Name()]
	return !exists
}

func createLogger() *zerolog.Logger {
	return logger.NewConsoleLogger()
}

func createViper() *viper.Viper {
	return viper.New() //nolint:forbidigo
}
