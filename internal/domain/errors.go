package domain

import "fmt"

// InvalidNameError reports a resource name that cannot be turned into
// identifier variants: empty after trimming, or containing a path separator.
type InvalidNameError struct {
	Raw    string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid resource name %q: %s", e.Raw, e.Reason)
}

// InvalidPathError reports a resource path that cannot be planned: empty
// input, a trailing separator, or an empty intermediate segment.
type InvalidPathError struct {
	Raw    string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid resource path %q: %s", e.Raw, e.Reason)
}

// FilesystemError wraps an OS-level failure during directory creation or
// file writing. The generation run aborts on the first one; files already
// written stay on disk.
type FilesystemError struct {
	Op   string // "mkdir" or "write"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
