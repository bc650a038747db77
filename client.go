package kudu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Doer issues a single HTTP request. *http.Client satisfies it; tests swap
// in mocks. Implementations must be safe for concurrent use.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one site's SCM API. All fields are fixed at construction,
// so a Client is safe for concurrent use; each operation issues exactly one
// request and blocks until it completes or fails. Timeouts and cancellation
// belong to the supplied HTTP client and the per-call context, never to the
// Client itself.
type Client struct {
	site    string
	token   string
	baseURL string
	http    Doer
	fs      afero.Fs
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP transport used for every dispatch.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// WithLogger attaches a logger for per-dispatch debug records. The default
// logger discards everything, so embedding programs stay quiet unless they
// opt in.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithFs overrides the local filesystem used to stream uploads and
// downloads. Tests use an in-memory fs.
func WithFs(fs afero.Fs) Option {
	return func(c *Client) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// New creates a Client for https://<site><HostSuffix>/ using a pre-built
// auth token (see [BasicToken]).
func New(site, token string, opts ...Option) (*Client, error) {
	site = strings.TrimSpace(site)
	if site == "" {
		return nil, fmt.Errorf("kudu: site name is required")
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("kudu: auth token is required")
	}
	c := &Client{
		site:    site,
		token:   token,
		baseURL: "https://" + site + HostSuffix,
		http:    &http.Client{},
		fs:      afero.NewOsFs(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewWithCredentials creates a Client from the site's deployment
// credentials.
func NewWithCredentials(site, username, password string, opts ...Option) (*Client, error) {
	return New(site, BasicToken(username, password), opts...)
}

// Environment variables honored by NewFromEnv.
const (
	EnvSite     = "KUDU_SITE"
	EnvUsername = "KUDU_USERNAME"
	EnvPassword = "KUDU_PASSWORD"
	EnvToken    = "KUDU_TOKEN"
)

// NewFromEnv creates a Client from the KUDU_* environment variables.
// KUDU_TOKEN wins over the username/password pair.
func NewFromEnv(opts ...Option) (*Client, error) {
	site := strings.TrimSpace(os.Getenv(EnvSite))
	if site == "" {
		return nil, fmt.Errorf("kudu: %s is required", EnvSite)
	}
	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		return New(site, token, opts...)
	}
	user := os.Getenv(EnvUsername)
	if user == "" {
		return nil, fmt.Errorf("kudu: %s or %s is required", EnvToken, EnvUsername)
	}
	return NewWithCredentials(site, user, os.Getenv(EnvPassword), opts...)
}

// Site returns the site name the client was built for.
func (c *Client) Site() string { return c.site }

// BaseURL returns the root URL of the site's SCM host.
func (c *Client) BaseURL() string { return c.baseURL + "/" }

// invoke performs one dispatch and returns the raw response; the caller owns
// resp.Body. A non-2xx response is drained into an *HTTPError. There is
// exactly one outbound request per call.
func (c *Client) invoke(ctx context.Context, req request) (*http.Response, error) {
	if req.endpoint == "" {
		return nil, fmt.Errorf("kudu: empty endpoint")
	}
	url := c.baseURL + apiRoot + req.endpoint

	var (
		body   io.ReadCloser
		length int64
	)
	if req.payload != nil {
		var err error
		body, length, err = req.payload.open(c.fs)
		if err != nil {
			return nil, err
		}
		if length == 0 {
			body.Close()
			body = http.NoBody
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, url, body)
	if err != nil {
		if body != nil {
			body.Close()
		}
		return nil, fmt.Errorf("kudu: build request: %w", err)
	}
	if body != nil {
		httpReq.ContentLength = length
	}
	httpReq.Header.Set("Authorization", "Basic "+c.token)
	httpReq.Header.Set("If-Match", "*")
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("User-Agent", userAgent)

	reqID := uuid.NewString()
	start := time.Now()
	c.log.Debug().
		Str("req_id", reqID).
		Str("method", req.method).
		Str("endpoint", req.endpoint).
		Msg("dispatching request")

	// The transport closes the request body on every path, including errors.
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("kudu: %s %s: %w", req.method, url, err)
	}

	c.log.Debug().
		Str("req_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(req.method, url, resp)
	}
	return resp, nil
}

func newHTTPError(method, url string, resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Method:     method,
		URL:        url,
		Body:       body,
	}
}

// invokeBytes dispatches and returns the whole response body.
func (c *Client) invokeBytes(ctx context.Context, req request) ([]byte, error) {
	resp, err := c.invoke(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("kudu: read response body: %w", err)
	}
	return data, nil
}

// invokeJSON dispatches and decodes the JSON response into out.
func (c *Client) invokeJSON(ctx context.Context, req request, out any) error {
	data, err := c.invokeBytes(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("kudu: decode %s response: %w", req.endpoint, err)
	}
	return nil
}

// invokeToFile dispatches and streams the response body into the local file,
// creating or truncating it. Both the response body and the local handle are
// released on every path.
func (c *Client) invokeToFile(ctx context.Context, req request, local string) error {
	if strings.TrimSpace(local) == "" {
		return fmt.Errorf("kudu: local path is required")
	}
	resp, err := c.invoke(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	f, err := c.fs.Create(local)
	if err != nil {
		return fmt.Errorf("kudu: create %s: %w", local, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("kudu: write %s: %w", local, err)
	}
	return f.Close()
}

// invokeDiscard dispatches for the side effect only and drains the response
// so the transport's connection can be reused.
func (c *Client) invokeDiscard(ctx context.Context, req request) error {
	resp, err := c.invoke(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
