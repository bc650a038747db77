package kudu

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// The VFS API also documents rename and copy endpoints. They do not behave
// reliably upstream and are intentionally not exposed here.

// vfsEndpoint maps a canonical path onto the VFS route. The path's leading
// slash supplies the separator.
func vfsEndpoint(p Path) string { return "vfs" + p.String() }

// GetFile reads the remote file at path and returns its raw content.
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, error) {
	p, err := FilePath(path)
	if err != nil {
		return nil, err
	}
	return c.invokeBytes(ctx, request{method: http.MethodGet, endpoint: vfsEndpoint(p)})
}

// DownloadFile streams the remote file at path into the local file, creating
// or truncating it. The content is never buffered whole.
func (c *Client) DownloadFile(ctx context.Context, path, local string) error {
	p, err := FilePath(path)
	if err != nil {
		return err
	}
	return c.invokeToFile(ctx, request{method: http.MethodGet, endpoint: vfsEndpoint(p)}, local)
}

// PutFile writes data as the remote file at path, creating it if needed.
func (c *Client) PutFile(ctx context.Context, path string, data []byte) error {
	p, err := FilePath(path)
	if err != nil {
		return err
	}
	return c.invokeDiscard(ctx, request{
		method:   http.MethodPut,
		endpoint: vfsEndpoint(p),
		payload:  rawPayload(data),
	})
}

// UploadFile streams the local file to the remote file at path. The content
// is never buffered whole.
func (c *Client) UploadFile(ctx context.Context, local, path string) error {
	if strings.TrimSpace(local) == "" {
		return fmt.Errorf("kudu: local path is required")
	}
	p, err := FilePath(path)
	if err != nil {
		return err
	}
	return c.invokeDiscard(ctx, request{
		method:   http.MethodPut,
		endpoint: vfsEndpoint(p),
		payload:  filePayload{path: local},
	})
}

// DeleteFile removes the remote file at path.
func (c *Client) DeleteFile(ctx context.Context, path string) error {
	p, err := FilePath(path)
	if err != nil {
		return err
	}
	return c.invokeDiscard(ctx, request{method: http.MethodDelete, endpoint: vfsEndpoint(p)})
}

// ReadDir lists the folder at path. The empty path lists the VFS root.
func (c *Client) ReadDir(ctx context.Context, path string) ([]Entry, error) {
	p := FolderPath(path)
	var entries []Entry
	if err := c.invokeJSON(ctx, request{method: http.MethodGet, endpoint: vfsEndpoint(p)}, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MkDir creates the folder at path. Missing parents are created by the
// remote side.
func (c *Client) MkDir(ctx context.Context, path string) error {
	p := FolderPath(path)
	return c.invokeDiscard(ctx, request{method: http.MethodPut, endpoint: vfsEndpoint(p)})
}

// RmDir removes the folder at path.
func (c *Client) RmDir(ctx context.Context, path string) error {
	p := FolderPath(path)
	return c.invokeDiscard(ctx, request{method: http.MethodDelete, endpoint: vfsEndpoint(p)})
}
