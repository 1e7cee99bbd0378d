package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Provider is a model-provider descriptor discovered in the template
// repository. EnvVars lists the environment variables its descriptor file
// references via ${VAR} placeholders.
type Provider struct {
	Name    string
	EnvVars []string
}

// Selection sentinels offered alongside the discovered provider names.
const (
	SelectAllProviders = "all"
	SkipProviderSetup  = "skip"
)

const providerFileSuffix = ".yaml"

var envPlaceholderRegex = regexp.MustCompile(`\$\{([A-Z][A-Z0-9_]*)\}`)

// DiscoverProviders scans a providers directory for descriptor files and
// extracts the environment variables each one needs. The result is sorted
// by name so prompt ordering is stable across runs.
func DiscoverProviders(dir string) ([]Provider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read providers directory %s: %w", dir, err)
	}

	var providers []Provider
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), providerFileSuffix) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read provider descriptor %s: %w", entry.Name(), err)
		}

		providers = append(providers, Provider{
			Name:    strings.TrimSuffix(entry.Name(), providerFileSuffix),
			EnvVars: extractEnvPlaceholders(string(content)),
		})
	}

	sort.Slice(providers, func(i, j int) bool { return providers[i].Name < providers[j].Name })
	return providers, nil
}

// extractEnvPlaceholders pulls the distinct ${VAR} references out of a
// descriptor, preserving first-seen order.
func extractEnvPlaceholders(content string) []string {
	seen := map[string]struct{}{}
	var vars []string

	for _, match := range envPlaceholderRegex.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, name)
	}
	return vars
}

// SelectionItems builds the choice list for the provider prompt: every
// discovered provider plus the all/skip sentinels.
func SelectionItems(providers []Provider) []string {
	items := make([]string, 0, len(providers)+2)
	for _, p := range providers {
		items = append(items, p.Name)
	}
	items = append(items, SelectAllProviders, SkipProviderSetup)
	return items
}

// ResolveSelection maps a prompt choice back to the providers it covers.
func ResolveSelection(choice string, providers []Provider) []Provider {
	switch choice {
	case SelectAllProviders:
		return providers
	case SkipProviderSetup:
		return nil
	}

	for _, p := range providers {
		if p.Name == choice {
			return []Provider{p}
		}
	}
	return nil
}
