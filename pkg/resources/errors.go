package resources

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound is matched by errors.Is for every missing base
// resource, structured or plain.
var ErrResourceNotFound = errors.New("resource not found")

// ErrListingUnsupported is returned by directory-based helpers when the
// configured FileSystem cannot list directories.
var ErrListingUnsupported = errors.New("file system does not support directory listing")

// NotFoundError reports a missing base resource file.
type NotFoundError struct {
	// Path is the resolved path relative to the resource root.
	Path string
}

// Error returns the message shown to callers, e.g.
// "Resource 'foo/bar.yml' not found.".
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Resource '%s' not found.", e.Path)
}

// Is reports whether target is ErrResourceNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}
