package kudu

import (
	"context"
	"net/http"
)

// execRequest is the wire payload for the command endpoint: exactly these
// two fields. Dir is a working directory on the remote host's native
// filesystem, not a VFS path.
type execRequest struct {
	Command string `json:"command"`
	Dir     string `json:"dir"`
}

// Exec runs a shell command on the remote host and returns its captured
// output. dir is the remote working directory, e.g. `D:\home\site\wwwroot`;
// empty means the host's default.
func (c *Client) Exec(ctx context.Context, command, dir string) (*ExecResult, error) {
	var res ExecResult
	req := request{
		method:   http.MethodPost,
		endpoint: "command",
		payload:  jsonPayload{v: execRequest{Command: command, Dir: dir}},
	}
	if err := c.invokeJSON(ctx, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Environment reports the SCM host's version. It doubles as the cheapest
// connectivity and credential check.
func (c *Client) Environment(ctx context.Context) (*Environment, error) {
	var env Environment
	if err := c.invokeJSON(ctx, request{method: http.MethodGet, endpoint: "environment"}, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
