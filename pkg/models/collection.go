package models

import "path/filepath"

// Collection is a storage location for one artifact kind: a folder relative
// to the blog root plus the file extension its artifacts carry.
type Collection struct {
	Name      string
	Folder    string
	Extension string
}

// File returns the collection-relative filename for a slug.
func (c Collection) File(slug string) string {
	return filepath.Join(c.Folder, slug+"."+c.Extension)
}

// Artifact is one of a document's two files, addressed relative to the blog
// root.
type Artifact struct {
	Slug string `json:"slug"`
	Path string `json:"path"`
}
