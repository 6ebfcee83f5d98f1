package generator

import "fmt"

// ReservedTagError indicates a board tag colliding with the generated
// package name.
type ReservedTagError struct {
	// Tag is the rejected tag
	Tag string
}

func (e *ReservedTagError) Error() string {
	return fmt.Sprintf("invalid tag name %q: name is reserved", e.Tag)
}

// DuplicateTagError indicates two layout files normalizing to the same
// board tag.
type DuplicateTagError struct {
	// Tag is the normalized tag declared twice
	Tag string

	// First is the layout file that declared the tag first
	First string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("duplicate tag name %q: already declared in %q", e.Tag, e.First)
}

// NotDirectoryError indicates a configured path that exists but is not
// a directory.
type NotDirectoryError struct {
	// Path is the offending path
	Path string

	// Kind names the directory's purpose ("layout" or "boards")
	Kind string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("%s directory %q is not a directory", e.Kind, e.Path)
}

// NoLayoutsError indicates that the layout directory contains no
// layout files.
type NoLayoutsError struct {
	// Dir is the directory that was searched
	Dir string

	// Extension is the file extension searched for
	Extension string
}

func (e *NoLayoutsError) Error() string {
	return fmt.Sprintf("no layouts found in %q", e.Dir)
}
