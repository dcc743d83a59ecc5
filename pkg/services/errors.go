package services

import "fmt"

// NotFoundError reports a slug with no complete draft. The bare form is the
// operator-facing "No such draft" condition; ContentPath is set when the
// metadata descriptor exists but the content file is gone.
type NotFoundError struct {
	Slug        string
	ContentPath string
}

func (e *NotFoundError) Error() string {
	if e.ContentPath != "" {
		return fmt.Sprintf("No such draft: %s (content file %s is missing)", e.Slug, e.ContentPath)
	}
	return fmt.Sprintf("No such draft: %s", e.Slug)
}

// StorageError wraps a filesystem or git failure with the step that hit it.
// There is no rollback: a StorageError raised mid-publish can leave the
// working tree partially migrated.
type StorageError struct {
	Step string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
