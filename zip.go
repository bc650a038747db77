package kudu

import (
	"context"
	"net/http"
)

// DownloadZip fetches the folder at path as a zip archive streamed into the
// local file. A local destination is required; the archive is never held in
// memory.
func (c *Client) DownloadZip(ctx context.Context, path, local string) error {
	p := FolderPath(path)
	return c.invokeToFile(ctx, request{method: http.MethodGet, endpoint: "zip" + p.String()}, local)
}
