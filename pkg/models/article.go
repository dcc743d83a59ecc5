package models

// Metadata is the structured descriptor stored alongside an article's
// markdown body, keyed by the same slug.
type Metadata struct {
	Title string   `yaml:"title" toml:"title" json:"title"`
	Date  string   `yaml:"date" toml:"date" json:"date"`
	Tags  []string `yaml:"tags,omitempty" toml:"tags,omitempty" json:"tags,omitempty"`
}

// Entry is a single document as shown by `blogctl list`: a slug, the title
// from its metadata descriptor, and whether git considers any of its files
// modified.
type Entry struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
	IsDirty   bool   `json:"is_dirty"`
}
