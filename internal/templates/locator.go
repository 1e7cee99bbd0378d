// Package templates resolves logical template names to on-disk template
// directories and classifies their contents.
package templates

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
)

// Template types derived from marker files.
const (
	TypeProject   = "project"
	TypeTool      = "tool"
	TypeComponent = "component"
)

// Info describes one locatable template.
type Info struct {
	Name        string
	Type        string
	Description string
}

// Locator resolves template names against two roots: the packaged-install
// location next to the running binary, then the development tree.
type Locator struct {
	log   *zerolog.Logger
	roots []string
}

func NewLocator(log *zerolog.Logger) *Locator {
	var roots []string

	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Join(filepath.Dir(exe), constants.TemplatesDirName))
	}
	if devRoot := findDevRoot(); devRoot != "" {
		roots = append(roots, devRoot)
	}

	return &Locator{log: log, roots: roots}
}

// NewLocatorWithRoots builds a locator over explicit roots (for testing).
func NewLocatorWithRoots(log *zerolog.Logger, roots ...string) *Locator {
	return &Locator{log: log, roots: roots}
}

// findDevRoot walks up from the working directory looking for a templates
// directory sitting next to a go.mod, i.e. a development checkout.
func findDevRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, constants.TemplatesDirName)
		goMod := filepath.Join(dir, "go.mod")
		if dirExists(candidate) && fileExists(goMod) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Resolve maps a template name to its directory path. It always returns a
// path string even if no root holds the template; existence failure is
// deferred to the caller.
func (l *Locator) Resolve(name string) string {
	for _, root := range l.roots {
		candidate := filepath.Join(root, name)
		if dirExists(candidate) {
			return candidate
		}
	}

	if len(l.roots) > 0 {
		return filepath.Join(l.roots[0], name)
	}
	return filepath.Join(constants.TemplatesDirName, name)
}

// Exists reports whether any root holds the named template.
func (l *Locator) Exists(name string) bool {
	for _, root := range l.roots {
		if dirExists(filepath.Join(root, name)) {
			return true
		}
	}
	return false
}

// Describe classifies a template directory and extracts its one-line
// description, tolerating missing readmes and manifests.
func (l *Locator) Describe(name string) Info {
	dir := l.Resolve(name)

	info := Info{
		Name: name,
		Type: classify(dir),
	}

	info.Description = readmeFirstLine(filepath.Join(dir, constants.DefaultReadmeFileName))
	if info.Description == "" {
		info.Description = packagingDescription(filepath.Join(dir, constants.ProjectMarkerFileName))
	}

	return info
}

// List enumerates the templates available across all roots, first root
// winning on name collisions.
func (l *Locator) List() []Info {
	seen := map[string]struct{}{}
	var infos []Info

	for _, root := range l.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if entry.Name() == constants.ProvidersDirName {
				continue
			}
			if _, ok := seen[entry.Name()]; ok {
				continue
			}
			seen[entry.Name()] = struct{}{}
			infos = append(infos, l.Describe(entry.Name()))
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// classify inspects marker files: a packaging manifest implies a project
// template, a dependency manifest implies a tool, anything else is a
// component.
func classify(dir string) string {
	if fileExists(filepath.Join(dir, constants.ProjectMarkerFileName)) {
		return TypeProject
	}
	if fileExists(filepath.Join(dir, constants.ToolMarkerFileName)) {
		return TypeTool
	}
	return TypeComponent
}

func readmeFirstLine(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "# "))
	}
	return ""
}

// packagingDescription reads the [project] description out of a
// pyproject-style packaging manifest.
func packagingDescription(path string) string {
	var manifest struct {
		Project struct {
			Name        string `toml:"name"`
			Description string `toml:"description"`
		} `toml:"project"`
	}

	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return ""
	}
	return manifest.Project.Description
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
