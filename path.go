package kudu

import (
	"fmt"
	"strings"
)

// Path is a canonical VFS path: exactly one leading slash, no doubled slash
// at either end, and a trailing slash iff the path addresses a folder.
// Values are produced only by [FilePath] and [FolderPath], so code holding a
// Path never needs to re-derive whether it names a file or a folder.
type Path struct {
	s      string
	folder bool
}

// InvalidPathError reports a raw path that cannot address a remote file.
type InvalidPathError struct {
	Raw string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("kudu: invalid path %q: a file path cannot be empty", e.Raw)
}

// FilePath normalizes raw into a canonical file path. All leading and
// trailing slashes are stripped before the single leading slash is applied;
// a path that trims to nothing fails with *InvalidPathError. Embedded doubled
// slashes are a caller error and pass through unchanged.
func FilePath(raw string) (Path, error) {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return Path{}, &InvalidPathError{Raw: raw}
	}
	return Path{s: "/" + trimmed}, nil
}

// FolderPath normalizes raw into a canonical folder path. The empty (or
// all-slash) path is the VFS root "/". Embedded doubled slashes are a caller
// error and pass through unchanged.
func FolderPath(raw string) Path {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return Path{s: "/", folder: true}
	}
	return Path{s: "/" + trimmed + "/", folder: true}
}

// String returns the canonical path text.
func (p Path) String() string { return p.s }

// IsFolder reports whether the path addresses a folder.
func (p Path) IsFolder() bool { return p.folder }

// IsRoot reports whether the path is the VFS root folder.
func (p Path) IsRoot() bool { return p.folder && p.s == "/" }

// IsZero reports whether p is the zero value rather than a constructed path.
func (p Path) IsZero() bool { return p.s == "" }

// Base returns the last segment of the path, or "/" for the root folder.
func (p Path) Base() string {
	if p.IsZero() || p.IsRoot() {
		return "/"
	}
	s := strings.TrimSuffix(p.s, "/")
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}
