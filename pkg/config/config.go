package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/timrosenblatt/org/pkg/models"
)

var (
	BlogRoot = "."

	// Collection folders, relative to BlogRoot.
	DraftsDir       = "drafts"
	ArticlesDir     = "articles"
	DraftsMetaDir   = "meta/drafts"
	ArticlesMetaDir = "meta/articles"

	// Extension of metadata descriptor files (yml, yaml, toml or json).
	MetaExt = "yml"

	// Git settings
	GitUserName  = "blogctl"
	GitUserEmail = "blogctl@localhost"
)

func Init() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	BlogRoot = getEnv("BLOG_ROOT", ".")

	DraftsDir = getEnv("DRAFTS_DIR", "drafts")
	ArticlesDir = getEnv("ARTICLES_DIR", "articles")
	DraftsMetaDir = getEnv("DRAFTS_META_DIR", "meta/drafts")
	ArticlesMetaDir = getEnv("ARTICLES_META_DIR", "meta/articles")
	MetaExt = getEnv("META_EXT", "yml")

	GitUserName = getEnv("GIT_USER_NAME", "blogctl")
	GitUserEmail = getEnv("GIT_USER_EMAIL", "blogctl@localhost")
}

// Layout describes where a blog keeps its four collections. Services take a
// Layout value explicitly instead of reading the package globals so tests can
// point them at a temporary tree.
type Layout struct {
	Root            string
	DraftsDir       string
	ArticlesDir     string
	DraftsMetaDir   string
	ArticlesMetaDir string
	MetaExt         string
}

// CurrentLayout snapshots the loaded configuration into a Layout.
func CurrentLayout() Layout {
	return Layout{
		Root:            BlogRoot,
		DraftsDir:       DraftsDir,
		ArticlesDir:     ArticlesDir,
		DraftsMetaDir:   DraftsMetaDir,
		ArticlesMetaDir: ArticlesMetaDir,
		MetaExt:         MetaExt,
	}
}

func (l Layout) DraftContent() models.Collection {
	return models.Collection{Name: "drafts", Folder: l.DraftsDir, Extension: "md"}
}

func (l Layout) PublishedContent() models.Collection {
	return models.Collection{Name: "articles", Folder: l.ArticlesDir, Extension: "md"}
}

func (l Layout) DraftMeta() models.Collection {
	return models.Collection{Name: "drafts metadata", Folder: l.DraftsMetaDir, Extension: l.MetaExt}
}

func (l Layout) PublishedMeta() models.Collection {
	return models.Collection{Name: "articles metadata", Folder: l.ArticlesMetaDir, Extension: l.MetaExt}
}
