// Package gitops keeps a DRE project directory under git.
package gitops

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoGit is returned when the git binary is not on PATH.
var ErrNoGit = errors.New("git not found on PATH")

// Author identifies the committer of project changes.
type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Available reports whether git can be run.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	if !Available() {
		return ErrNoGit
	}
	if _, err := run(dir, "init", "--quiet"); err != nil {
		return err
	}
	return nil
}

// Commit stages paths (all changes when none are given) and commits them.
// It returns the short commit hash, or "" when there was nothing to commit.
func Commit(dir, message string, author Author, paths ...string) (string, error) {
	add := []string{"add", "-A"}
	if len(paths) > 0 {
		add = append(add, "--")
		add = append(add, paths...)
	}
	if _, err := run(dir, add...); err != nil {
		return "", err
	}

	if _, err := run(dir, "diff", "--cached", "--quiet"); err == nil {
		return "", nil
	}

	if _, err := run(dir, "commit", "--quiet", "-m", message, "--author", author.String()); err != nil {
		return "", err
	}
	out, err := run(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	// Commits made with --author still need a committer identity.
	cmd.Env = append(os.Environ(),
		"GIT_COMMITTER_NAME=dre",
		"GIT_COMMITTER_EMAIL=dre@localhost",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}
