// Package kudu is a client for the SCM ("Kudu") management API that Azure
// App Service exposes for every site at https://<site>.scm.azurewebsites.net/.
//
// The client covers the VFS surface of that API (read, write, delete, list
// and archive files and folders addressed by POSIX-style paths) plus the
// environment and remote-command endpoints. A trailing slash marks a folder;
// [FilePath] and [FolderPath] are the only way paths enter the client, so
// every request is built from a canonical path. Each operation issues exactly
// one HTTP request and surfaces failures unchanged; there are no retries and
// no interpretation of status codes.
package kudu

// The wire contract is deliberately fixed: every request carries the same
// header set, and If-Match: * unconditionally bypasses entity-tag checks on
// the remote side.
const (
	// HostSuffix is appended to the site name to form the SCM hostname.
	// It is not configurable.
	HostSuffix = ".scm.azurewebsites.net"

	apiRoot     = "/api/"
	userAgent   = "kudu-go/0.4"
	contentType = "application/json"
)
