package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func execGit(path string, cmd ...string) ([]byte, error) {
	args := []string{}
	args = append(args, "-C", path)
	args = append(args, cmd...)
	gitCmd := exec.Command("git", args...)
	out, err := gitCmd.CombinedOutput()
	if err != nil {
		return out, errors.Wrapf(err, "git %s: %s", strings.Join(cmd, " "), strings.TrimSpace(string(out)))
	}
	return out, nil
}

func IsRepo(path string) bool {
	_, err := execGit(path, "status")
	return err == nil
}

// Clone fetches a single-branch shallow copy of url into dir, creating
// dir first when absent.
func Clone(ctx context.Context, url, branch, dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dir)

	cloneCmd := exec.CommandContext(ctx, "git", args...)
	out, err := cloneCmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "clone %s: %s", url, strings.TrimSpace(string(out)))
	}
	return nil
}

// Reinit throws away the template's history and starts a fresh one with
// a single initial commit.
func Reinit(path string) error {
	if err := os.RemoveAll(filepath.Join(path, ".git")); err != nil {
		return err
	}
	if _, err := execGit(path, "init"); err != nil {
		return err
	}
	if _, err := execGit(path, "add", "-A"); err != nil {
		return err
	}
	_, err := execGit(path, "commit", "-m", "Initial commit")
	return err
}
