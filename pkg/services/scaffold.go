package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/timrosenblatt/org/pkg/config"
	"github.com/timrosenblatt/org/pkg/models"
)

// CreateDraft scaffolds a new draft: a markdown body and a metadata
// descriptor, both keyed by slug and staged in git so a later publish can
// relocate them with git mv.
func CreateDraft(ctx context.Context, layout config.Layout, git *Git, slug, title string, tags []string) error {
	if err := ValidateSlug(slug); err != nil {
		return err
	}

	// A slug lives in at most one collection per artifact kind.
	existing := []models.Collection{
		layout.DraftMeta(),
		layout.DraftContent(),
		layout.PublishedMeta(),
		layout.PublishedContent(),
	}
	for _, c := range existing {
		if _, err := os.Stat(filepath.Join(layout.Root, c.File(slug))); err == nil {
			return fmt.Errorf("slug %q already exists in %s", slug, c.Name)
		}
	}

	if title == "" {
		title = slug
	}
	meta := models.Metadata{
		Title: title,
		Date:  time.Now().Format(time.RFC3339),
		Tags:  tags,
	}
	encoded, err := EncodeMetadata(meta, layout.MetaExt)
	if err != nil {
		return err
	}

	metaPath := layout.DraftMeta().File(slug)
	contentPath := layout.DraftContent().File(slug)
	for _, p := range []string{metaPath, contentPath} {
		if err := os.MkdirAll(filepath.Dir(filepath.Join(layout.Root, p)), 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(filepath.Join(layout.Root, metaPath), encoded, 0o644); err != nil {
		return err
	}
	body := fmt.Sprintf("# %s\n", title)
	if err := os.WriteFile(filepath.Join(layout.Root, contentPath), []byte(body), 0o644); err != nil {
		return err
	}

	if err := git.Add(ctx, metaPath, contentPath); err != nil {
		return &StorageError{Step: "staging " + slug, Err: err}
	}
	return nil
}
