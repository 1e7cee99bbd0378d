package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
)

// Metadata is the optional template.yaml manifest a template may carry.
type Metadata struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	MinCliVersion string   `yaml:"minCliVersion"`
	Exclude       []string `yaml:"exclude"`
}

// LoadMetadata reads the manifest from a template directory. A missing
// manifest is not an error; the zero Metadata is returned.
func LoadMetadata(dir string) (Metadata, error) {
	var meta Metadata

	content, err := os.ReadFile(filepath.Join(dir, constants.TemplateMetadataFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return meta, nil
		}
		return meta, fmt.Errorf("failed to read template manifest: %w", err)
	}

	if err := yaml.Unmarshal(content, &meta); err != nil {
		return meta, fmt.Errorf("failed to parse template manifest: %w", err)
	}
	return meta, nil
}

// CheckCompatibility verifies the running CLI version satisfies the
// template's minCliVersion constraint. Templates without a constraint, and
// development builds with a non-semver version string, always pass.
func (m Metadata) CheckCompatibility(cliVersion string) error {
	if m.MinCliVersion == "" {
		return nil
	}

	current, err := semver.NewVersion(strings.TrimPrefix(cliVersion, "v"))
	if err != nil {
		return nil
	}

	minimum, err := semver.NewVersion(strings.TrimPrefix(m.MinCliVersion, "v"))
	if err != nil {
		return fmt.Errorf("template manifest carries invalid minCliVersion %q: %w", m.MinCliVersion, err)
	}

	if current.LessThan(minimum) {
		return fmt.Errorf("template requires CLI version %s or newer, current version is %s (upgrade the CLI to use this template)", m.MinCliVersion, cliVersion)
	}
	return nil
}
