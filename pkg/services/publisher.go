package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/timrosenblatt/org/pkg/config"
)

// Publisher moves a draft's two artifacts into the published collections and
// records the transition as a single commit.
type Publisher struct {
	layout config.Layout
	store  *ArtifactStore
	git    *Git
	logger *slog.Logger
}

func NewPublisher(layout config.Layout, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	git := NewGit(layout.Root, logger)
	return &Publisher{
		layout: layout,
		store:  NewArtifactStore(layout.Root, git),
		git:    git,
		logger: logger,
	}
}

// Publish transitions a draft to a published article: both of its artifacts
// are verified, then relocated, then committed as `Publishing '<slug>'`.
//
// NotFoundError means nothing was touched. Past the first relocation there is
// no rollback; a StorageError can leave the working tree partially migrated
// for the operator to resolve by hand.
func (p *Publisher) Publish(ctx context.Context, slug string) error {
	if err := ValidateSlug(slug); err != nil {
		return err
	}

	meta, err := p.store.Find(slug, p.layout.DraftMeta())
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Slug: slug}
	}
	if err != nil {
		return err
	}

	content, err := p.store.Find(slug, p.layout.DraftContent())
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Slug: slug, ContentPath: p.layout.DraftContent().File(slug)}
	}
	if err != nil {
		return err
	}

	if !p.git.IsRepo(ctx) {
		return &StorageError{
			Step: "checking repository",
			Err:  fmt.Errorf("not a git working tree: %s", p.layout.Root),
		}
	}

	p.logger.Debug("publishing draft", "slug", slug, "metadata", meta.Path, "content", content.Path)

	if err := p.store.Relocate(ctx, slug, p.layout.DraftMeta(), p.layout.PublishedMeta()); err != nil {
		return err
	}
	if err := p.store.Relocate(ctx, slug, p.layout.DraftContent(), p.layout.PublishedContent()); err != nil {
		return err
	}

	if err := p.git.Commit(ctx, fmt.Sprintf("Publishing '%s'", slug)); err != nil {
		return &StorageError{Step: "committing " + slug, Err: err}
	}
	return nil
}
