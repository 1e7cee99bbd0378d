// Package pathguard validates and sanitizes every path and file name the
// scaffolding engine touches. All write operations go through it; the
// containment check (ValidateOutputPath) is the single invariant that keeps
// a generation from escaping its destination tree.
package pathguard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathContext describes where a path comes from. Template sources are
// trusted by construction (they ship with the CLI or live in the checked
// development tree), so the system-directory deny-list does not apply.
type PathContext int

const (
	ContextUserPath PathContext = iota
	ContextTemplatePath
)

// systemDirDenyList covers absolute prefixes a user-supplied path must not
// fall under.
var systemDirDenyList = []string{
	"/etc", "/usr", "/bin", "/sbin", "/boot", "/dev", "/proc", "/sys",
}

// ValidatePath rejects empty paths, traversal and home-directory tokens,
// NUL bytes and (for user paths) absolute paths under system directories.
func ValidatePath(p string, pathCtx PathContext) error {
	if p == "" {
		return fmt.Errorf("%w: path is empty", ErrUnsafePath)
	}
	if strings.ContainsRune(p, '\x00') {
		return fmt.Errorf("%w: path contains a NUL byte", ErrUnsafePath)
	}

	if pathCtx == ContextTemplatePath {
		return nil
	}

	for _, segment := range strings.Split(filepath.ToSlash(p), "/") {
		if segment == ".." {
			return fmt.Errorf("%w: path %q contains a parent-directory reference", ErrUnsafePath, p)
		}
		if strings.HasPrefix(segment, "~") {
			return fmt.Errorf("%w: path %q contains a home-directory reference", ErrUnsafePath, p)
		}
	}

	if filepath.IsAbs(p) {
		cleaned := filepath.Clean(p)
		for _, denied := range systemDirDenyList {
			if cleaned == denied || strings.HasPrefix(cleaned, denied+string(filepath.Separator)) {
				return fmt.Errorf("%w: path %q is under system directory %s", ErrUnsafePath, p, denied)
			}
		}
	}

	return nil
}

// ValidateOutputPath resolves out and base to absolute form and fails
// unless out is a descendant of base. It must be checked before every
// directory creation and every file write, not just once per run.
func ValidateOutputPath(out, base string) (string, error) {
	absOut, err := filepath.Abs(out)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %q: %v", ErrOutsideBase, out, err)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve base %q: %v", ErrOutsideBase, base, err)
	}

	rel, err := filepath.Rel(absBase, absOut)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not relative to %q", ErrOutsideBase, absOut, absBase)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes destination %q", ErrOutsideBase, absOut, absBase)
	}

	return absOut, nil
}

// CreateDirSafe creates dir (and any missing parents) after checking the
// containment invariant against base.
func CreateDirSafe(dir, base string) error {
	absDir, err := ValidateOutputPath(dir, base)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", absDir, err)
	}
	return nil
}

// WriteFileSafe writes textual template output. The requested file name
// must survive sanitization unchanged, the content must pass the injection
// scan and the resolved path must be a descendant of base. Files are
// written with non-executable permission bits.
func WriteFileSafe(path, base string, content []byte) error {
	absPath, err := ValidateOutputPath(path, base)
	if err != nil {
		return err
	}

	name := filepath.Base(absPath)
	sanitized, err := SanitizeFileName(name)
	if err != nil {
		return err
	}
	if sanitized != name {
		return fmt.Errorf("%w: %q does not match its sanitized form %q", ErrInvalidFileName, name, sanitized)
	}

	if err := ValidateTemplateContent(string(content), absPath); err != nil {
		return err
	}

	if err := os.WriteFile(absPath, content, 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", absPath, err)
	}
	return nil
}

// WriteRawFileSafe writes opaque (binary) content byte-for-byte. The
// containment and file-name checks still apply; the content scan does not,
// because opaque files are copied verbatim and never substituted.
func WriteRawFileSafe(path, base string, content []byte) error {
	absPath, err := ValidateOutputPath(path, base)
	if err != nil {
		return err
	}

	name := filepath.Base(absPath)
	sanitized, err := SanitizeFileName(name)
	if err != nil {
		return err
	}
	if sanitized != name {
		return fmt.Errorf("%w: %q does not match its sanitized form %q", ErrInvalidFileName, name, sanitized)
	}

	if err := os.WriteFile(absPath, content, 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", absPath, err)
	}
	return nil
}
