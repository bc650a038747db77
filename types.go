package kudu

import "time"

// DirMime is the mime type the VFS reports for folder entries.
const DirMime = "inode/directory"

// Entry is one element of a VFS folder listing.
type Entry struct {
	Name   string    `json:"name"`
	Size   int64     `json:"size"`
	Mtime  time.Time `json:"mtime"`  // Last Modified at
	Crtime time.Time `json:"crtime"` // Created at
	Mime   string    `json:"mime"`
	Href   string    `json:"href"` // Absolute VFS API URL of the entry
	// Path is the entry's location on the remote host's native filesystem,
	// not a VFS path.
	Path string `json:"path"`
}

// IsDir reports whether the entry is a folder.
func (e Entry) IsDir() bool { return e.Mime == DirMime }

// ExecResult is the captured outcome of a remote command execution.
type ExecResult struct {
	Output   string `json:"Output"`
	Error    string `json:"Error"`
	ExitCode int    `json:"ExitCode"`
}

// Environment describes the SCM host.
type Environment struct {
	Version string `json:"version"`
}
