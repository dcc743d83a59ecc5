package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/timrosenblatt/org/pkg/config"
)

// Git runs git commands against a single working tree.
type Git struct {
	dir    string
	logger *slog.Logger
}

func NewGit(dir string, logger *slog.Logger) *Git {
	if logger == nil {
		logger = slog.Default()
	}
	return &Git{dir: dir, logger: logger}
}

func (g *Git) run(ctx context.Context, args ...string) ([]byte, error) {
	g.logger.Debug("running git", "args", args, "dir", g.dir)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return out, nil
}

func (g *Git) IsRepo(ctx context.Context) bool {
	_, err := g.run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// Move relocates a tracked file with `git mv` so the file's history follows
// it. The destination directory is created first; git mv does not.
func (g *Git) Move(ctx context.Context, from, to string) error {
	if err := os.MkdirAll(filepath.Dir(filepath.Join(g.dir, to)), 0o755); err != nil {
		return err
	}
	_, err := g.run(ctx, "mv", from, to)
	return err
}

// Add stages the given paths.
func (g *Git) Add(ctx context.Context, paths ...string) error {
	_, err := g.run(ctx, append([]string{"add", "--"}, paths...)...)
	return err
}

// Commit records everything staged in one commit. The message is passed to
// git through a temporary file rather than -m.
func (g *Git) Commit(ctx context.Context, message string) error {
	f, err := os.CreateTemp("", "blogctl-commit-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(message); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, err = g.run(ctx,
		"-c", "user.name="+config.GitUserName,
		"-c", "user.email="+config.GitUserEmail,
		"commit", "-F", f.Name(),
	)
	return err
}

// DirtyFiles returns the set of paths `git status --porcelain` reports as
// modified, staged or untracked, keyed by slash-separated repo-relative path.
func (g *Git) DirtyFiles(ctx context.Context) (map[string]bool, error) {
	out, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	dirty := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 4 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		path = strings.Trim(path, "\"")
		dirty[path] = true
	}
	return dirty, nil
}
