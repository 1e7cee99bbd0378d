package meshinit

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/prompt"
	"github.com/meshstack-ai/mesh-cli/internal/ui"
	"github.com/meshstack-ai/mesh-cli/internal/validation"
)

// collectInteractive fills the missing inputs. On a real terminal it runs
// the full-screen wizard; with piped stdin it falls back to line prompts so
// scripted runs stay possible.
func (h *handler) collectInteractive(inputs Inputs) (Inputs, error) {
	if h.isTerminal() {
		return h.runWizard(inputs)
	}
	return h.runLinePrompts(inputs)
}

func (h *handler) isTerminal() bool {
	f, ok := h.stdin.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (h *handler) runWizard(inputs Inputs) (Inputs, error) {
	ui.Title("Create a new MeshStack project")
	ui.Line()

	name, err := ui.Input("Project name",
		ui.WithPlaceholder(constants.DefaultProjectName),
		ui.WithValidate(func(in string) error {
			if strings.TrimSpace(in) == "" {
				return nil // empty falls back to the default
			}
			return validation.IsValidProjectName(strings.TrimSpace(in))
		}),
	)
	if err != nil {
		return inputs, fmt.Errorf("project name input aborted: %w", err)
	}
	inputs.ProjectName = strings.TrimSpace(name)
	if inputs.ProjectName == "" {
		inputs.ProjectName = constants.DefaultProjectName
	}

	if inputs.ProjectType == "" {
		projectType, err := ui.Select("What kind of project do you want?", []ui.SelectOption[string]{
			{Label: "Full: starter agents, samples and provider setup", Value: constants.ProjectTypeFull},
			{Label: "Minimal: bare project structure only", Value: constants.ProjectTypeMinimal},
		})
		if err != nil {
			return inputs, fmt.Errorf("project type selection aborted: %w", err)
		}
		inputs.ProjectType = projectType
	}

	if inputs.Namespace == "" {
		namespace, err := ui.Input("Namespace",
			ui.WithPlaceholder(constants.DefaultNamespace),
			ui.WithInputDescription("Groups this project's resources on the platform"),
		)
		if err != nil {
			return inputs, fmt.Errorf("namespace input aborted: %w", err)
		}
		inputs.Namespace = strings.TrimSpace(namespace)
	}

	if !inputs.SkipVCS {
		initGit, err := ui.Confirm("Initialize a git repository?",
			ui.WithLabels("Yes", "No"),
		)
		if err != nil {
			return inputs, fmt.Errorf("version control confirmation aborted: %w", err)
		}
		inputs.SkipVCS = !initGit
	}

	return inputs, nil
}

func (h *handler) runLinePrompts(inputs Inputs) (Inputs, error) {
	if err := prompt.SimplePrompt(h.stdin, fmt.Sprintf("Project name? [%s]", constants.DefaultProjectName), func(in string) error {
		trimmed := strings.TrimSpace(in)
		if trimmed == "" {
			trimmed = constants.DefaultProjectName
			fmt.Printf("Using default project name: %s\n", trimmed)
		}
		if err := validation.IsValidProjectName(trimmed); err != nil {
			return err
		}
		inputs.ProjectName = trimmed
		return nil
	}); err != nil {
		return inputs, err
	}

	if inputs.ProjectType == "" {
		if err := prompt.SelectPrompt(h.stdin, "What kind of project do you want?", []string{constants.ProjectTypeFull, constants.ProjectTypeMinimal}, func(choice string) error {
			inputs.ProjectType = choice
			return nil
		}); err != nil {
			return inputs, fmt.Errorf("project type selection aborted: %w", err)
		}
	}

	return inputs, nil
}
