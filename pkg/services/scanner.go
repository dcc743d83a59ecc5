package services

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/timrosenblatt/org/pkg/config"
	"github.com/timrosenblatt/org/pkg/models"
)

// ListEntries scans the draft and published content collections and returns
// one entry per document, with the title pulled from its metadata descriptor
// and a dirty flag from git status.
func ListEntries(ctx context.Context, layout config.Layout, git *Git) ([]models.Entry, error) {
	dirty, _ := git.DirtyFiles(ctx)

	collect := func(content, meta models.Collection, published bool) ([]models.Entry, error) {
		files, err := os.ReadDir(filepath.Join(layout.Root, content.Folder))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}

		var entries []models.Entry
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
				continue
			}
			slug := strings.TrimSuffix(f.Name(), ".md")

			title := slug
			if m, err := LoadMetadata(layout.Root, meta, slug); err == nil && m.Title != "" {
				title = m.Title
			}

			isDirty := dirty[filepath.ToSlash(content.File(slug))] ||
				dirty[filepath.ToSlash(meta.File(slug))]

			entries = append(entries, models.Entry{
				Slug:      slug,
				Title:     title,
				Published: published,
				IsDirty:   isDirty,
			})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
		return entries, nil
	}

	drafts, err := collect(layout.DraftContent(), layout.DraftMeta(), false)
	if err != nil {
		return nil, err
	}
	published, err := collect(layout.PublishedContent(), layout.PublishedMeta(), true)
	if err != nil {
		return nil, err
	}
	return append(drafts, published...), nil
}
