package scaffold

import (
	"path/filepath"
	"strings"
)

// textExtensions lists file types subject to variable substitution.
// Anything else is treated as opaque and copied byte-for-byte.
var textExtensions = map[string]struct{}{
	".txt": {}, ".md": {}, ".rst": {}, ".adoc": {},
	".yaml": {}, ".yml": {}, ".json": {}, ".toml": {}, ".ini": {}, ".cfg": {},
	".env": {}, ".tpl": {},
	".py": {}, ".js": {}, ".ts": {}, ".go": {}, ".rb": {}, ".sh": {}, ".bash": {},
	".html": {}, ".css": {}, ".xml": {}, ".sql": {},
}

// textBasenames lists well-known extensionless text files.
var textBasenames = map[string]struct{}{
	".gitignore":     {},
	".gitattributes": {},
	".gitkeep":       {},
	".dockerignore":  {},
	".editorconfig":  {},
	".env":           {},
	".env.example":   {},
	"makefile":       {},
	"dockerfile":     {},
	"justfile":       {},
	"license":        {},
	"readme":         {},
	"procfile":       {},
}

// IsTextFile reports whether a template file should be substituted rather
// than copied verbatim.
func IsTextFile(name string) bool {
	if _, ok := textBasenames[strings.ToLower(name)]; ok {
		return true
	}
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		_, ok := textExtensions[ext]
		return ok
	}
	return false
}
