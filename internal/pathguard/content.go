package pathguard

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// scanExemptExtensions lists file types that legitimately contain
// execution syntax: shell and build scripts, programming-language source
// and markup. The scan would be all noise there. This exemption list is a
// known gap in the heuristic, not a guarantee.
var scanExemptExtensions = map[string]struct{}{
	".sh": {}, ".bash": {}, ".zsh": {}, ".ps1": {}, ".bat": {}, ".cmd": {},
	".py": {}, ".js": {}, ".ts": {}, ".jsx": {}, ".tsx": {}, ".go": {}, ".rb": {},
	".mk": {}, ".make": {},
	".md": {}, ".rst": {}, ".txt": {}, ".adoc": {}, ".html": {},
}

var scanExemptBasenames = map[string]struct{}{
	"makefile":   {},
	"dockerfile": {},
	"justfile":   {},
}

type contentPattern struct {
	name string
	re   *regexp.Regexp
}

// Patterns indicating command substitution, embedded execution calls or
// dynamic-import syntax inside files that should be plain data.
var dangerousContentPatterns = []contentPattern{
	{"shell command substitution", regexp.MustCompile(`\$\([^)]*\)`)},
	{"backtick command substitution", regexp.MustCompile("`[^`\n]+`")},
	{"eval/exec call", regexp.MustCompile(`\b(?:eval|exec)\s*\(`)},
	{"os.system call", regexp.MustCompile(`\bos\.system\s*\(`)},
	{"subprocess invocation", regexp.MustCompile(`\bsubprocess\.(?:run|call|check_call|check_output|Popen)\b`)},
	{"dynamic import", regexp.MustCompile(`\b__import__\s*\(|\bimportlib\.import_module\s*\(`)},
	{"child_process require", regexp.MustCompile(`\brequire\s*\(\s*['"]child_process['"]`)},
}

// ValidateTemplateContent scans textual template content for
// code-injection patterns before it is written. This is a best-effort
// linter gate against a compromised template, not a sandbox.
func ValidateTemplateContent(content, path string) error {
	base := strings.ToLower(filepath.Base(path))
	if _, ok := scanExemptBasenames[base]; ok {
		return nil
	}
	if _, ok := scanExemptExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return nil
	}

	for _, p := range dangerousContentPatterns {
		if p.re.MatchString(content) {
			return fmt.Errorf("%w: %s detected in %s", ErrDangerousContent, p.name, path)
		}
	}
	return nil
}
