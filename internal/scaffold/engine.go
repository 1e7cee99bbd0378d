// Package scaffold is the tree-transformation core of the generators: it
// walks a template directory, derives output names, substitutes variables
// into text files, copies opaque files byte-for-byte and writes everything
// through the path guard.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/meshstack-ai/mesh-cli/internal/pathguard"
)

// Options controls a single tree-copy or file-copy operation.
type Options struct {
	// SkipIfExists leaves existing output files untouched.
	SkipIfExists bool

	// CreateDirs creates the destination root if it is absent.
	CreateDirs bool

	// Exclude lists literal names or single-wildcard glob patterns to
	// skip. Exclusion is checked before inclusion.
	Exclude []string

	// Include, when non-empty, restricts the copy to entries matching at
	// least one pattern.
	Include []string
}

// Engine materializes template trees. It holds no variable state: the
// variable map is threaded through each call so two generations can never
// leak values into each other.
type Engine struct {
	log *zerolog.Logger
}

func New(log *zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// ProcessTemplate copies the tree rooted at templatePath into destPath,
// substituting vars into text files. destPath is also the containment base:
// every write is checked to stay beneath it.
func (e *Engine) ProcessTemplate(templatePath, destPath string, vars Variables, opts Options) error {
	if err := pathguard.ValidatePath(templatePath, pathguard.ContextTemplatePath); err != nil {
		return err
	}
	if err := pathguard.ValidatePath(destPath, pathguard.ContextUserPath); err != nil {
		return err
	}

	info, err := os.Stat(templatePath)
	if err != nil {
		return newTemplateError("template directory not found at", templatePath, err,
			"Check that the template name is spelled correctly (mesh templates list shows what is available)",
			"Reinstall the CLI if the packaged templates directory is missing",
		)
	}
	if !info.IsDir() {
		return newTemplateError("template path is not a directory:", templatePath, nil,
			"Use ProcessFile for single-file templates",
		)
	}

	if opts.CreateDirs {
		if err := pathguard.CreateDirSafe(destPath, destPath); err != nil {
			return err
		}
	}

	return e.walkDir(templatePath, destPath, destPath, vars, opts)
}

// walkDir processes one directory level. Children are handled
// sequentially so directory creation happens before any write beneath it
// and a partial failure leaves a deterministic tree.
func (e *Engine) walkDir(srcDir, destDir, base string, vars Variables, opts Options) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return newTemplateError("failed to read template directory", srcDir, err)
	}

	for _, entry := range entries {
		if skip, reason := filtered(entry.Name(), opts); skip {
			e.log.Debug().Msgf("Skipping %s (%s)", entry.Name(), reason)
			continue
		}

		srcPath := filepath.Join(srcDir, entry.Name())

		if entry.IsDir() {
			destName := Substitute(entry.Name(), vars)
			destPath := filepath.Join(destDir, destName)
			if err := pathguard.CreateDirSafe(destPath, base); err != nil {
				return err
			}
			if err := e.walkDir(srcPath, destPath, base, vars, opts); err != nil {
				return err
			}
			continue
		}

		destName := DeriveFileName(entry.Name(), vars)
		sanitized, err := pathguard.SanitizeFileName(destName)
		if err != nil || sanitized != destName {
			// A bad name aborts this entry only; the rest of the tree is
			// still valid. Never write under a silently renamed file.
			e.log.Warn().Msgf("Skipping template entry %s: derived name %q fails sanitization", entry.Name(), destName)
			continue
		}

		destPath := filepath.Join(destDir, destName)
		if err := e.writeEntry(srcPath, destPath, base, vars, opts); err != nil {
			if isSafetyViolation(err) {
				e.log.Warn().Err(err).Msgf("Skipping template entry %s", entry.Name())
				continue
			}
			return err
		}
	}

	return nil
}

// ProcessFile applies the same substitution and validation logic to a
// single template file, without tree recursion. Safety violations are
// fatal here, unlike during a tree walk.
func (e *Engine) ProcessFile(templateFile, destFile string, vars Variables, opts Options) error {
	if err := pathguard.ValidatePath(templateFile, pathguard.ContextTemplatePath); err != nil {
		return err
	}
	if err := pathguard.ValidatePath(destFile, pathguard.ContextUserPath); err != nil {
		return err
	}

	if _, err := os.Stat(templateFile); err != nil {
		return newTemplateError("template file not found at", templateFile, err,
			"Check that the template name is spelled correctly",
			"Run mesh templates list to see the available templates",
		)
	}

	if opts.SkipIfExists {
		if _, err := os.Stat(destFile); err == nil {
			e.log.Info().Msgf("File %s already exists, skipping", destFile)
			return nil
		}
	}

	if opts.CreateDirs {
		destDir := filepath.Dir(destFile)
		if err := pathguard.CreateDirSafe(destDir, destDir); err != nil {
			return err
		}
	}

	name := filepath.Base(destFile)
	sanitized, err := pathguard.SanitizeFileName(name)
	if err != nil {
		return err
	}
	if sanitized != name {
		return fmt.Errorf("%w: %q does not match its sanitized form %q", pathguard.ErrInvalidFileName, name, sanitized)
	}

	return e.writeEntry(templateFile, destFile, filepath.Dir(destFile), vars, opts)
}

// writeEntry reads one template file and writes its destination
// counterpart, substituting variables when the file is textual.
func (e *Engine) writeEntry(srcPath, destPath, base string, vars Variables, opts Options) error {
	if opts.SkipIfExists {
		if _, err := os.Stat(destPath); err == nil {
			e.log.Debug().Msgf("File %s already exists, skipping", destPath)
			return nil
		}
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return newTemplateError("failed to read template file", srcPath, err)
	}

	if IsTextFile(filepath.Base(srcPath)) {
		final := Substitute(string(content), vars)
		if err := pathguard.WriteFileSafe(destPath, base, []byte(final)); err != nil {
			return err
		}
	} else {
		if err := pathguard.WriteRawFileSafe(destPath, base, content); err != nil {
			return err
		}
	}

	e.log.Debug().Msgf("Wrote %s", destPath)
	return nil
}

// filtered applies exclude-then-include matching. With a non-empty include
// list, an entry matching no include pattern is skipped regardless of its
// exclusion status.
func filtered(name string, opts Options) (bool, string) {
	for _, pattern := range opts.Exclude {
		if matchPattern(pattern, name) {
			return true, "excluded by " + pattern
		}
	}

	if len(opts.Include) > 0 {
		for _, pattern := range opts.Include {
			if matchPattern(pattern, name) {
				return false, ""
			}
		}
		return true, "not in include list"
	}

	return false, ""
}

func matchPattern(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}

func isSafetyViolation(err error) bool {
	return errors.Is(err, pathguard.ErrInvalidFileName) ||
		errors.Is(err, pathguard.ErrDangerousContent)
}
