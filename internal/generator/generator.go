// Package generator holds the per-artifact orchestrators: each one gathers
// a configuration, resolves its template through the locator, threads a
// variable map into the substitution engine and runs post-processing.
package generator

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/meshstack-ai/mesh-cli/internal/scaffold"
	"github.com/meshstack-ai/mesh-cli/internal/templates"
	"github.com/meshstack-ai/mesh-cli/internal/vcs"
)

// Deps bundles the collaborators every generator needs. Stdin is injected
// so confirmation prompts are scriptable in tests.
type Deps struct {
	Log        *zerolog.Logger
	Locator    *templates.Locator
	Engine     *scaffold.Engine
	VCS        vcs.Bootstrapper
	Stdin      io.Reader
	CLIVersion string
}

// templateMetadata loads a template's manifest and gates it against the
// running CLI version.
func (d Deps) templateMetadata(name string) (templates.Metadata, error) {
	meta, err := templates.LoadMetadata(d.Locator.Resolve(name))
	if err != nil {
		return meta, err
	}
	if err := meta.CheckCompatibility(d.CLIVersion); err != nil {
		return meta, err
	}
	return meta, nil
}
