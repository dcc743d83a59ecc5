package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/timrosenblatt/org/pkg/models"
)

// ArtifactStore locates and relocates slug-keyed files across collections in
// a git working tree. The same store handles both artifact kinds; only the
// collection differs.
type ArtifactStore struct {
	root string
	git  *Git
}

func NewArtifactStore(root string, git *Git) *ArtifactStore {
	return &ArtifactStore{root: root, git: git}
}

// ValidateSlug rejects slugs that could escape a collection folder. Slugs
// become path segments, so separators and ".." are never allowed.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("empty slug")
	}
	if strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return fmt.Errorf("invalid slug %q", slug)
	}
	if filepath.Clean(slug) != slug {
		return fmt.Errorf("invalid slug %q", slug)
	}
	return nil
}

// Find looks a slug up in one collection. A missing artifact is reported as
// an error satisfying errors.Is(err, fs.ErrNotExist).
func (s *ArtifactStore) Find(slug string, c models.Collection) (models.Artifact, error) {
	rel := c.File(slug)
	if _, err := os.Stat(filepath.Join(s.root, rel)); err != nil {
		if os.IsNotExist(err) {
			return models.Artifact{}, fmt.Errorf("%s has no artifact for %q: %w", c.Name, slug, fs.ErrNotExist)
		}
		return models.Artifact{}, &StorageError{Step: "stat " + rel, Err: err}
	}
	return models.Artifact{Slug: slug, Path: rel}, nil
}

// Relocate moves a slug's artifact between two collections via git mv.
func (s *ArtifactStore) Relocate(ctx context.Context, slug string, from, to models.Collection) error {
	if err := s.git.Move(ctx, from.File(slug), to.File(slug)); err != nil {
		return &StorageError{
			Step: fmt.Sprintf("relocating %q from %s to %s", slug, from.Name, to.Name),
			Err:  err,
		}
	}
	return nil
}
