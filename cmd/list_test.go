package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_ShowsDraftsAndArticles(t *testing.T) {
	root := setupRepo(t)
	seedDraft(t, root, "wip", "Work In Progress")
	seedDraft(t, root, "live", "Live")

	_, err := execute(t, "publish", "live", "--root", root)
	require.NoError(t, err)

	out, err := execute(t, "list", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "wip")
	assert.Contains(t, out, "live")
	assert.Contains(t, out, "Drafts")
	assert.Contains(t, out, "Articles")
}

func TestListCmd_EmptyTree(t *testing.T) {
	root := setupRepo(t)

	out, err := execute(t, "list", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "(none)")
}
