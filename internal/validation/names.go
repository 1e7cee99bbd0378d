package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	maxProjectNameLength  = 64
	maxResourceNameLength = 64
	maxNamespaceLength    = 63
)

var (
	// ValidProjectNameRegex allows mixed-case names for project directories.
	ValidProjectNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

	// ValidResourceNameRegex is stricter: resource names end up in derived
	// filenames (<name>-agent.yaml) and platform identifiers.
	ValidResourceNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// ValidNamespaceRegex matches a normalized kebab-case namespace.
	ValidNamespaceRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

	// ValidTemplateNameRegex matches logical template directory names.
	ValidTemplateNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	separatorRunRegex = regexp.MustCompile(`[\s_.]+`)
	hyphenRunRegex    = regexp.MustCompile(`-{2,}`)
)

func isProjectName(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}
	return IsValidProjectName(field.String()) == nil
}

func isResourceName(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}
	return IsValidResourceName(field.String()) == nil
}

func isNamespace(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}
	return IsValidNamespace(field.String()) == nil
}

func isTemplateName(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}
	return ValidTemplateNameRegex.MatchString(field.String())
}

func IsValidProjectName(projectName string) error {
	if projectName == "" {
		return fmt.Errorf("project name can't be an empty string")
	}

	if len(projectName) > maxProjectNameLength {
		return fmt.Errorf("project name is too long, limit is %d characters", maxProjectNameLength)
	}

	if !ValidProjectNameRegex.MatchString(projectName) {
		return fmt.Errorf("project name must start with a letter and can only contain letters (a-z, A-Z), numbers (0-9), dashes (-), and underscores (_)")
	}

	return nil
}

func IsValidResourceName(resourceName string) error {
	if resourceName == "" {
		return fmt.Errorf("resource name can't be an empty string")
	}

	if len(resourceName) > maxResourceNameLength {
		return fmt.Errorf("resource name is too long, limit is %d characters", maxResourceNameLength)
	}

	if !ValidResourceNameRegex.MatchString(resourceName) {
		return fmt.Errorf("resource name must start with a lowercase letter and can only contain lowercase letters (a-z), numbers (0-9) and dashes (-)")
	}

	return nil
}

func IsValidNamespace(namespace string) error {
	if namespace == "" {
		return fmt.Errorf("namespace can't be an empty string")
	}

	if len(namespace) > maxNamespaceLength {
		return fmt.Errorf("namespace is too long, limit is %d characters", maxNamespaceLength)
	}

	if !ValidNamespaceRegex.MatchString(namespace) {
		return fmt.Errorf("namespace must be a lowercase kebab-case identifier")
	}

	return nil
}

// NormalizeNamespace lowers the input and converts separator runs to single
// hyphens so "My Team_Space" becomes "my-team-space". Validation of the
// result is still the caller's job.
func NormalizeNamespace(namespace string) string {
	s := strings.ToLower(strings.TrimSpace(namespace))
	s = separatorRunRegex.ReplaceAllString(s, "-")
	s = hyphenRunRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
