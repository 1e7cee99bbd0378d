// Package vcs bootstraps version control for generated projects. Every
// failure here is advisory: a project without a git history is still a
// valid project, so callers warn and continue.
package vcs

import (
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Bootstrapper initializes a repository in a generated project directory.
// The interface stays narrow so generators never depend on git specifics.
type Bootstrapper interface {
	Available() bool
	InitRepository(dir string) error
	CommitAll(dir, message string) error
}

// Git shells out to the git binary on PATH.
type Git struct {
	log *zerolog.Logger
}

func NewGit(log *zerolog.Logger) *Git {
	return &Git{log: log}
}

// Available reports whether a git binary can be found on PATH.
func (g *Git) Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// InitRepository runs git init in dir. Re-running inside an existing
// repository is harmless; git reinitializes without losing history.
func (g *Git) InitRepository(dir string) error {
	return g.runCommand(dir, "git", "init")
}

// CommitAll stages everything under dir and records a commit. When no
// identity is configured the commit falls back to a local placeholder so
// first-run users are not blocked on git config.
func (g *Git) CommitAll(dir, message string) error {
	if err := g.runCommand(dir, "git", "add", "."); err != nil {
		return err
	}

	args := []string{"commit", "-m", message}
	if !g.hasIdentity(dir) {
		args = append([]string{"-c", "user.name=MeshStack CLI", "-c", "user.email=cli@meshstack.local"}, args...)
	}

	return g.runCommand(dir, "git", args...)
}

// hasIdentity checks whether git resolves a committer identity in dir.
func (g *Git) hasIdentity(dir string) bool {
	name, errName := g.runCommandCaptureOutput(dir, "git", "config", "user.name")
	email, errEmail := g.runCommandCaptureOutput(dir, "git", "config", "user.email")
	return errName == nil && errEmail == nil &&
		strings.TrimSpace(string(name)) != "" && strings.TrimSpace(string(email)) != ""
}

func (g *Git) runCommand(dir, command string, args ...string) error {
	g.log.Debug().Msgf("Running command: %s %v in directory: %s", command, args, dir)

	cmd := exec.Command(command, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		g.log.Debug().Err(err).Msgf("Command failed: %s %v\nOutput:\n%s", command, args, output)
		return err
	}

	g.log.Debug().Msgf("Command succeeded: %s %v", command, args)
	return nil
}

func (g *Git) runCommandCaptureOutput(dir, command string, args ...string) ([]byte, error) {
	// #nosec G204 -- args are internal and validated
	cmd := exec.Command(command, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, err
	}
	return output, nil
}
