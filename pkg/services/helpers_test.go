package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timrosenblatt/org/pkg/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gitRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

// initRepo builds an empty blog working tree inside a fresh git repo.
func initRepo(t *testing.T) config.Layout {
	t.Helper()
	root := t.TempDir()
	gitRun(t, root, "init", "-q")
	gitRun(t, root, "config", "user.name", "tester")
	gitRun(t, root, "config", "user.email", "tester@example.com")

	layout := config.Layout{
		Root:            root,
		DraftsDir:       "drafts",
		ArticlesDir:     "articles",
		DraftsMetaDir:   "meta/drafts",
		ArticlesMetaDir: "meta/articles",
		MetaExt:         "yml",
	}
	for _, dir := range []string{layout.DraftsDir, layout.ArticlesDir, layout.DraftsMetaDir, layout.ArticlesMetaDir} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	return layout
}

// seedDraft writes and commits both artifacts of a draft.
func seedDraft(t *testing.T, layout config.Layout, slug, title string) {
	t.Helper()
	meta := fmt.Sprintf("title: %s\ndate: 2026-08-30T00:00:00Z\n", title)
	require.NoError(t, os.WriteFile(filepath.Join(layout.Root, layout.DraftMeta().File(slug)), []byte(meta), 0o644))
	body := "# " + title + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(layout.Root, layout.DraftContent().File(slug)), []byte(body), 0o644))
	gitRun(t, layout.Root, "add", "-A")
	gitRun(t, layout.Root, "commit", "-q", "-m", "add draft "+slug)
}

func commitCount(t *testing.T, dir string) int {
	t.Helper()
	out := strings.TrimSpace(gitRun(t, dir, "rev-list", "--count", "HEAD"))
	n, err := strconv.Atoi(out)
	require.NoError(t, err)
	return n
}

func headSubject(t *testing.T, dir string) string {
	t.Helper()
	return strings.TrimSpace(gitRun(t, dir, "log", "-1", "--pretty=%s"))
}
