package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func gitRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

// setupRepo creates a blog working tree and resets command state that
// persists between Execute calls.
func setupRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	gitRun(t, root, "init", "-q")
	gitRun(t, root, "config", "user.name", "tester")
	gitRun(t, root, "config", "user.email", "tester@example.com")
	for _, dir := range []string{"drafts", "articles", "meta/drafts", "meta/articles"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	for _, key := range []string{
		"BLOG_ROOT", "DRAFTS_DIR", "ARTICLES_DIR",
		"DRAFTS_META_DIR", "ARTICLES_META_DIR", "META_EXT",
	} {
		t.Setenv(key, "")
	}

	// Reset flags that persist between test runs
	blogRoot = ""
	verbose = false
	quiet = false
	newTitle = ""
	newTags = nil

	return root
}

func seedDraft(t *testing.T, root, slug, title string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, "meta", "drafts", slug+".yml"), []byte("title: "+title+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "drafts", slug+".md"), []byte("# "+title+"\n"), 0o644))
	gitRun(t, root, "add", "-A")
	gitRun(t, root, "commit", "-q", "-m", "add draft "+slug)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
