package generator

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/meshstack-ai/mesh-cli/internal/constants"
	"github.com/meshstack-ai/mesh-cli/internal/pathguard"
)

const envFileHeader = `# Environment configuration for this MeshStack project.
# Fill in the values below before running your agents.
# Keep this file out of version control; it may hold credentials.
`

// shellMetaRegex matches characters that would let a value break out of a
// shell assignment when the file is sourced.
var shellMetaRegex = regexp.MustCompile("[`$\\\\\"'|&;<>(){}\\[\\]*?!~\n\r]")

// sanitizeEnvValue strips shell metacharacters from a user-supplied value.
func sanitizeEnvValue(value string) string {
	return strings.TrimSpace(shellMetaRegex.ReplaceAllString(value, ""))
}

// WriteEnvFile synthesizes the project .env file: one active line per
// variable of each selected provider, commented guidance lines for the
// rest, and the fixed header. Values come from the optional values map and
// are sanitized before writing.
func WriteEnvFile(projectRoot string, discovered, selected []Provider, values map[string]string) error {
	active := map[string]struct{}{}
	for _, p := range selected {
		active[p.Name] = struct{}{}
	}

	var b strings.Builder
	b.WriteString(envFileHeader)

	for _, p := range discovered {
		b.WriteString("\n# Provider: " + p.Name + "\n")

		_, isActive := active[p.Name]
		for _, envVar := range p.EnvVars {
			value := sanitizeEnvValue(values[envVar])
			if isActive {
				b.WriteString(envVar + "=" + value + "\n")
			} else {
				b.WriteString("# " + envVar + "=\n")
			}
		}
	}

	envPath := filepath.Join(projectRoot, constants.DefaultEnvFileName)
	return pathguard.WriteFileSafe(envPath, projectRoot, []byte(b.String()))
}
